package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"acnescan/internal/domain"
	"acnescan/internal/notify"
	"acnescan/internal/repository"
)

type NotificationServiceImpl struct {
	userRepo repository.UserRepository
	dermRepo repository.DermatologistRepository
	sender   notify.EmailSender
	logger   *zap.Logger
}

func NewNotificationService(
	userRepo repository.UserRepository,
	dermRepo repository.DermatologistRepository,
	sender notify.EmailSender,
	logger *zap.Logger,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		userRepo: userRepo,
		dermRepo: dermRepo,
		sender:   sender,
		logger:   logger,
	}
}

// SendAppointmentConfirmation resolves the patient and dermatologist behind
// an email job, renders the confirmation message and hands it to the sender.
// Both lookups must succeed before anything is sent; a half-resolved email
// is worse than no email.
func (s *NotificationServiceImpl) SendAppointmentConfirmation(ctx context.Context, job domain.EmailJob) error {
	if s.sender == nil {
		s.logger.Debug("email sender not configured, skipping confirmation",
			zap.Int64("appointmentID", job.AppointmentID))
		return nil
	}

	var (
		user *domain.User
		derm *domain.Dermatologist
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.userRepo.GetByID(gctx, job.UserID)
		if err != nil {
			return fmt.Errorf("resolve patient %d: %w", job.UserID, err)
		}
		user = u
		return nil
	})
	g.Go(func() error {
		d, err := s.dermRepo.GetByID(gctx, job.DermatologistID)
		if err != nil {
			return fmt.Errorf("resolve dermatologist %d: %w", job.DermatologistID, err)
		}
		derm = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	patientName := user.Name
	if patientName == "" {
		patientName = "Valued Patient"
	}

	specialty := derm.Specialty
	if specialty == "" {
		specialty = domain.DefaultSpecialty
	}

	location := derm.Location
	if location == "" {
		location = "Telehealth"
	}

	msg := notify.EmailMessage{
		To:      user.Email,
		ToName:  user.Name,
		Subject: fmt.Sprintf("Appointment Confirmation - %s", derm.Name),
		Text: fmt.Sprintf(
			"Dear %s, your appointment #%d with %s (%s) is confirmed for %s at %s. Location: %s. Reason: %s.",
			patientName,
			job.AppointmentID,
			derm.Name,
			specialty,
			job.ScheduledAt.Format("Monday, January 2, 2006"),
			job.ScheduledAt.Format("3:04 PM"),
			location,
			job.Reason,
		),
		HTML: confirmationBody(
			job.AppointmentID,
			patientName,
			derm.Name,
			specialty,
			location,
			job.ScheduledAt.Format("Monday, January 2, 2006"),
			job.ScheduledAt.Format("3:04 PM"),
			job.Reason,
		),
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation for appointment %d: %w", job.AppointmentID, err)
	}

	s.logger.Info("appointment confirmation sent",
		zap.Int64("appointmentID", job.AppointmentID),
		zap.String("to", user.Email))

	return nil
}

func confirmationBody(appointmentID int64, patientName, dermName, specialty, location, date, timeOfDay, reason string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #2c7a7b;">Your Appointment is Confirmed</h2>
  <p>Dear %s,</p>
  <p>Your appointment has been scheduled. Here are the details:</p>
  <table style="width: 100%%; border-collapse: collapse;">
    <tr><td style="padding: 8px 0; font-weight: bold;">Appointment ID</td><td>#%d</td></tr>
    <tr><td style="padding: 8px 0; font-weight: bold;">Dermatologist</td><td>%s</td></tr>
    <tr><td style="padding: 8px 0; font-weight: bold;">Specialty</td><td>%s</td></tr>
    <tr><td style="padding: 8px 0; font-weight: bold;">Location</td><td>%s</td></tr>
    <tr><td style="padding: 8px 0; font-weight: bold;">Date</td><td>%s</td></tr>
    <tr><td style="padding: 8px 0; font-weight: bold;">Time</td><td>%s</td></tr>
    <tr><td style="padding: 8px 0; font-weight: bold;">Reason</td><td>%s</td></tr>
  </table>
  <p>If you need to reschedule or cancel, please do so at least 24 hours in advance.</p>
  <p style="color: #718096; font-size: 12px;">This is an automated message, please do not reply.</p>
</body>
</html>`, patientName, appointmentID, dermName, specialty, location, date, timeOfDay, reason)
}
