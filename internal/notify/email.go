package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"acnescan/config"
)

// EmailSender is the outbound email boundary. Implementations can be swapped
// without touching the callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

func NewSendGridSender(cfg config.EmailConfig, logger *zap.Logger) *SendGridSender {
	if cfg.SendGridAPIKey == "" {
		return nil
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	if s.client == nil {
		return fmt.Errorf("sendgrid client not configured")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}

	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status",
			zap.Int("status", response.StatusCode),
			zap.String("to", msg.To))
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	s.logger.Info("email sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("status", response.StatusCode))

	return nil
}

// StubSender logs instead of sending. Used when no API key is configured, so
// booking flows behave identically in environments without outbound email.
type StubSender struct {
	logger *zap.Logger
}

func NewStubSender(logger *zap.Logger) *StubSender {
	return &StubSender{logger: logger}
}

func (s *StubSender) Send(ctx context.Context, msg EmailMessage) error {
	s.logger.Info("email sending disabled, skipping message",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}
