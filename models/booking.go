package models

import "time"

// BookingStatusConfirmed is the only status a booking reaches in normal
// operation; cancellation and reschedule are not supported.
const BookingStatusConfirmed = "confirmed"

// Booking represents a confirmed discovery-call reservation. The ID is
// content-derived ("<date>-<time>"), so the identifier itself encodes the
// one-booking-per-slot rule.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name,omitempty" json:"name,omitempty"`
	Email           string    `bson:"email" json:"email"`
	Date            string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time            string    `bson:"time" json:"time"` // Slot start, "HH:MM" 24-hour
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	Timezone        string    `bson:"timezone" json:"timezone"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	ExternalEventID string    `bson:"external_event_id,omitempty" json:"externalEventId,omitempty"`
	MeetingLink     string    `bson:"meeting_link,omitempty" json:"meetingLink,omitempty"`
}

// BookingRequest is the payload accepted by the book endpoint.
type BookingRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// BookingResponse is returned after a successful reservation.
type BookingResponse struct {
	Success bool    `json:"success"`
	Booking Booking `json:"booking"`
}

// AvailabilityResponse lists the free slots for a date.
type AvailabilityResponse struct {
	Date        string   `json:"date"`
	Timezone    string   `json:"timezone"`
	SlotMinutes int      `json:"slotMinutes"`
	StartHour   int      `json:"startHour"`
	EndHour     int      `json:"endHour"`
	Available   []string `json:"available"`
}
