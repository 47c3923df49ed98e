package booking

import (
	"context"

	"portfolio/models"
)

// BookingService defines the discovery-call reservation surface.
type BookingService interface {
	// Availability returns the free slots for a calendar date.
	Availability(ctx context.Context, date string) (*models.AvailabilityResponse, error)
	// Reserve validates the request and atomically reserves the slot,
	// then triggers calendar sync and confirmation emails as best-effort
	// side effects.
	Reserve(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
}
