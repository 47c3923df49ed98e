package notification

import (
	"fmt"
	"io"
	"strings"

	"portfolio/config"
	"portfolio/models"
	"portfolio/utils"

	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer implements Mailer over a plain SMTP relay.
type SMTPMailer struct {
	dialer    *gomail.Dialer
	fromEmail string
	toEmail   string
}

// NewSMTPMailer builds a mailer from config. Missing SMTP settings produce an
// unavailable mailer, which is a normal state, not an error.
func NewSMTPMailer(cfg config.Config) Mailer {
	if !cfg.SMTPConfigured() {
		utils.GetLogger().Info("SMTP not configured, email notifications disabled")
		return &SMTPMailer{}
	}

	from := cfg.FromEmail
	if from == "" {
		from = cfg.SMTPUser
	}

	return &SMTPMailer{
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		fromEmail: from,
		toEmail:   cfg.ToEmail,
	}
}

// Available reports whether the relay was configured at startup.
func (m *SMTPMailer) Available() bool {
	return m.dialer != nil
}

// SendBookingConfirmation emails the attendee with the invite attached.
func (m *SMTPMailer) SendBookingConfirmation(b *models.Booking, meetingLink string) error {
	ics := BuildInvite(b, meetingLink)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.fromEmail)
	msg.SetHeader("To", b.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Discovery Call — %s %s", b.Date, b.Time))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Thanks for booking!\n\nDetails:\nDate: %s\nTime: %s\nJoin: %s\n",
		b.Date, b.Time, meetingLink,
	))
	msg.Attach("invite.ics",
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, strings.NewReader(ics))
			return err
		}),
		gomail.SetHeader(map[string][]string{
			"Content-Type": {"text/calendar; method=REQUEST; charset=UTF-8"},
		}),
	)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send booking confirmation to %s: %w", b.Email, err)
	}
	return nil
}

// SendBookingNotice emails the operator about a new booking. Without a
// configured operator address this is a no-op.
func (m *SMTPMailer) SendBookingNotice(b *models.Booking, meetingLink string) error {
	if m.toEmail == "" {
		return nil
	}

	who := b.Name
	if who == "" {
		who = b.Email
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.fromEmail)
	msg.SetHeader("To", m.toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New booking: %s %s", b.Date, b.Time))
	msg.SetBody("text/plain", fmt.Sprintf(
		"New discovery call booked.\n\nWho: %s <%s>\nDate: %s\nTime: %s\nJoin: %s\n",
		who, b.Email, b.Date, b.Time, meetingLink,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send booking notice: %w", err)
	}
	return nil
}

// SendContactNotice forwards a contact-form message to the operator.
func (m *SMTPMailer) SendContactNotice(c *models.ContactMessage) error {
	if m.toEmail == "" {
		return nil
	}

	who := c.Name
	if who == "" {
		who = c.Email
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.fromEmail, "Portfolio Contact"))
	msg.SetHeader("To", m.toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New contact from %s", who))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nMessage:\n%s\n",
		valueOrDash(c.Name), c.Email, c.Message,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send contact notice: %w", err)
	}
	return nil
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
