package booking

import "errors"

var (
	// ErrMissingFields means email, date, or time was absent from the request.
	ErrMissingFields = errors.New("email, date, and time are required")
	// ErrInvalidEmail means the attendee email failed syntax validation.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidSlot means the requested time is not a generated slot for the date.
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrSlotTaken means a confirmed booking already holds the slot.
	ErrSlotTaken = errors.New("slot already booked")
)
