package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio/config"
	"portfolio/models"
	"portfolio/utils"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarSyncer implements CalendarSyncer against the Google Calendar
// API. A zero value (nil service) is a valid "unconfigured" syncer.
type GoogleCalendarSyncer struct {
	svc        *gcal.Service
	calendarID string
	timezone   string
}

// NewGoogleCalendarSyncer builds a syncer from config. Missing credentials or
// calendar id is a normal state, not an error: the returned syncer simply
// reports unavailable.
func NewGoogleCalendarSyncer(cfg config.Config) CalendarSyncer {
	logger := utils.GetLogger()

	if !cfg.CalendarConfigured() {
		logger.Info("Google Calendar not configured, calendar sync disabled")
		return &GoogleCalendarSyncer{}
	}

	svc, err := gcal.NewService(context.Background(),
		option.WithCredentialsFile(cfg.GoogleCredentialsFile),
		option.WithScopes(gcal.CalendarEventsScope),
	)
	if err != nil {
		logger.Warn("Failed to initialize Google Calendar client, calendar sync disabled", zap.Error(err))
		return &GoogleCalendarSyncer{}
	}

	return &GoogleCalendarSyncer{
		svc:        svc,
		calendarID: cfg.GCalCalendarID,
		timezone:   cfg.Timezone,
	}
}

// Available reports whether the client was configured at startup.
func (g *GoogleCalendarSyncer) Available() bool {
	return g.svc != nil
}

// CreateEvent inserts a "Discovery Call" event with a Meet conference request
// and invites the attendee.
func (g *GoogleCalendarSyncer) CreateEvent(ctx context.Context, b *models.Booking) (*EventResult, error) {
	start, err := bookingStart(b)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(b.DurationMinutes) * time.Minute)

	who := b.Name
	if who == "" {
		who = b.Email
	}

	event := &gcal.Event{
		Summary:     "Discovery Call",
		Description: fmt.Sprintf("Discovery call with %s", who),
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: g.timezone},
		End:         &gcal.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: g.timezone},
		Attendees:   []*gcal.EventAttendee{{Email: b.Email}},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId:             conferenceRequestID(b),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert calendar event: %w", err)
	}

	return &EventResult{
		EventID:     created.Id,
		MeetingLink: videoEntryPoint(created),
	}, nil
}

// bookingStart resolves the booking's wall-clock start in its timezone.
func bookingStart(b *models.Booking) (time.Time, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking date/time %q %q: %w", b.Date, b.Time, err)
	}
	return start, nil
}

// conferenceRequestID derives a stable alphanumeric request id so a repeated
// insert for the same booking does not provision a second conference.
func conferenceRequestID(b *models.Booking) string {
	raw := b.Date + b.Time + b.Email
	var sb strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// videoEntryPoint extracts the Meet join link from the created event.
func videoEntryPoint(e *gcal.Event) string {
	if e.ConferenceData == nil {
		return ""
	}
	for _, ep := range e.ConferenceData.EntryPoints {
		if ep.EntryPointType == "video" {
			return ep.Uri
		}
	}
	return ""
}
