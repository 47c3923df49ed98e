package bookingRepo

import (
	"context"
	"errors"

	"portfolio/models"
)

// ErrDuplicateSlot is returned by Create when a confirmed booking already
// holds the same (date, time) key. The uniqueness check and the insert are a
// single atomic operation at the store.
var ErrDuplicateSlot = errors.New("booking already exists for this slot")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record, failing with ErrDuplicateSlot if
	// the (date, time) key is already taken by a confirmed booking.
	Create(ctx context.Context, b *models.Booking) error
	// BookedTimes returns the slot start times of confirmed bookings on a date.
	BookedTimes(ctx context.Context, date string) ([]string, error)
	// SetCalendarFields records the external event id and meeting link after a
	// successful calendar sync.
	SetCalendarFields(ctx context.Context, id, eventID, meetingLink string) error
}
