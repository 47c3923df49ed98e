package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	contactRepo "portfolio/database/repository/contact"
	"portfolio/models"
	"portfolio/services/notification"
	"portfolio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingFields means email or message was absent from the request.
var ErrMissingFields = errors.New("email and message are required")

// ContactService accepts contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, req models.ContactRequest, ip string) error
}

// DefaultContactService persists messages and forwards them by email.
type DefaultContactService struct {
	Repo   contactRepo.ContactRepository
	Mailer notification.Mailer
}

// Submit stores the message, then emails the operator best-effort. The
// persisted copy is the source of truth; a failed email is only logged.
func (s *DefaultContactService) Submit(ctx context.Context, req models.ContactRequest, ip string) error {
	if req.Email == "" || req.Message == "" {
		return ErrMissingFields
	}

	msg := &models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		IP:        ip,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to persist contact message: %w", err)
	}

	if s.Mailer != nil && s.Mailer.Available() {
		go func(m models.ContactMessage) {
			if err := s.Mailer.SendContactNotice(&m); err != nil {
				utils.GetLogger().Warn("contact notice email failed",
					zap.String("messageID", m.ID), zap.Error(err))
			}
		}(*msg)
	}

	return nil
}
