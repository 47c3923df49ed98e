package contactRepo

import (
	"context"

	"portfolio/models"
)

// ContactRepository defines methods for contact-message data access.
type ContactRepository interface {
	// Create inserts a new contact message.
	Create(ctx context.Context, m *models.ContactMessage) error
}
