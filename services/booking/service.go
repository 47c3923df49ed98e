package booking

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"time"

	"portfolio/config"
	bookingRepo "portfolio/database/repository/booking"
	"portfolio/models"
	"portfolio/services/calendar"
	"portfolio/services/notification"
	"portfolio/services/scheduling"
	"portfolio/utils"

	"go.uber.org/zap"
)

// sideEffectTimeout bounds the calendar call so a slow remote cannot hang the
// response indefinitely; a timeout is treated like any other sync failure.
const sideEffectTimeout = 10 * time.Second

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultBookingService is the production reservation engine.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Calendar calendar.CalendarSyncer
	Mailer   notification.Mailer

	Window     config.SchedulingWindow
	MeetingURL string
}

// Availability computes the free slots for a date: the full generated grid
// minus the times already held by confirmed bookings.
func (s *DefaultBookingService) Availability(ctx context.Context, date string) (*models.AvailabilityResponse, error) {
	all := scheduling.GenerateSlots(date, s.Window)

	booked, err := s.Repo.BookedTimes(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings for %s: %w", date, err)
	}

	free := scheduling.AvailableSlots(all, booked)
	if free == nil {
		free = []string{}
	}

	return &models.AvailabilityResponse{
		Date:        date,
		Timezone:    s.Window.Timezone,
		SlotMinutes: s.Window.SlotMinutes,
		StartHour:   s.Window.StartHour,
		EndHour:     s.Window.EndHour,
		Available:   free,
	}, nil
}

// Reserve runs the validation sequence, then performs the atomic
// check-and-create at the store. Once the insert commits the slot is held:
// calendar sync and emails run afterwards and cannot fail the reservation.
func (s *DefaultBookingService) Reserve(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if req.Email == "" || req.Date == "" || req.Time == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if !slices.Contains(scheduling.GenerateSlots(req.Date, s.Window), req.Time) {
		return nil, ErrInvalidSlot
	}

	b := &models.Booking{
		ID:              req.Date + "-" + req.Time,
		Name:            req.Name,
		Email:           req.Email,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: s.Window.SlotMinutes,
		Timezone:        s.Window.Timezone,
		Status:          models.BookingStatusConfirmed,
		CreatedAt:       time.Now().UTC(),
		MeetingLink:     s.MeetingURL,
	}

	if err := s.Repo.Create(ctx, b); err != nil {
		if err == bookingRepo.ErrDuplicateSlot {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.syncCalendar(b)
	go s.sendEmails(*b)

	return b, nil
}

// syncCalendar mirrors the booking into the external calendar and swaps in
// the provisioned meeting link. Runs after the insert commits, under its own
// deadline, and only logs on failure.
func (s *DefaultBookingService) syncCalendar(b *models.Booking) {
	if s.Calendar == nil || !s.Calendar.Available() {
		return
	}
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	res, err := s.Calendar.CreateEvent(ctx, b)
	if err != nil {
		logger.Warn("calendar sync failed, keeping fallback meeting link",
			zap.String("bookingID", b.ID), zap.Error(err))
		return
	}

	b.ExternalEventID = res.EventID
	if res.MeetingLink != "" {
		b.MeetingLink = res.MeetingLink
	}

	if err := s.Repo.SetCalendarFields(ctx, b.ID, b.ExternalEventID, b.MeetingLink); err != nil {
		logger.Warn("failed to record calendar fields on booking",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// sendEmails dispatches the operator notice and the attendee confirmation.
// The two are independent; each failure is logged on its own.
func (s *DefaultBookingService) sendEmails(b models.Booking) {
	if s.Mailer == nil || !s.Mailer.Available() {
		return
	}
	logger := utils.GetLogger()

	if err := s.Mailer.SendBookingNotice(&b, b.MeetingLink); err != nil {
		logger.Warn("booking notice email failed", zap.String("bookingID", b.ID), zap.Error(err))
	}
	if err := s.Mailer.SendBookingConfirmation(&b, b.MeetingLink); err != nil {
		logger.Warn("booking confirmation email failed", zap.String("bookingID", b.ID), zap.Error(err))
	}
}
