package calendar

import (
	"context"

	"portfolio/models"
)

// EventResult carries what the engine needs back from a calendar sync.
type EventResult struct {
	EventID     string
	MeetingLink string
}

// CalendarSyncer mirrors a reservation into an external calendar and yields a
// meeting link. Implementations must be safe to call after the reservation
// has been persisted; failures here never unwind a booking.
type CalendarSyncer interface {
	// Available reports whether the integration is configured. When false,
	// CreateEvent must not be called; the caller falls back silently.
	Available() bool
	// CreateEvent inserts a calendar event for the booking and returns the
	// external event id plus the conference join link, if one was provisioned.
	CreateEvent(ctx context.Context, b *models.Booking) (*EventResult, error)
}
