package notification

import "portfolio/models"

// Mailer defines the outbound email surface. Every send is best-effort: the
// caller logs failures and moves on, nothing retries and nothing rolls back.
type Mailer interface {
	// Available reports whether the SMTP relay is configured. When false,
	// sends are silent no-ops from the caller's point of view.
	Available() bool
	// SendBookingConfirmation emails the attendee their confirmation with a
	// calendar invite attached.
	SendBookingConfirmation(b *models.Booking, meetingLink string) error
	// SendBookingNotice emails the operator about a new booking.
	SendBookingNotice(b *models.Booking, meetingLink string) error
	// SendContactNotice forwards a contact-form message to the operator.
	SendContactNotice(m *models.ContactMessage) error
}
