package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"acnescan/internal/domain"
	"acnescan/internal/notify"
)

type recordingSender struct {
	messages []notify.EmailMessage
	err      error
}

func (r *recordingSender) Send(ctx context.Context, msg notify.EmailMessage) error {
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, msg)
	return nil
}

func notificationFixture(sender notify.EmailSender) *NotificationServiceImpl {
	userRepo := &fakeUserRepo{users: map[int64]*domain.User{
		7: {ID: 7, Name: "Jane Doe", Email: "jane@example.com"},
		8: {ID: 8, Name: "", Email: "anon@example.com"},
	}}
	dermRepo := &fakeDermRepo{dermatologists: map[int64]*domain.Dermatologist{
		3: {ID: 3, Name: "Dr. Sarah Johnson", Specialty: "Dermatology", Location: "Boston, MA"},
		4: {ID: 4, Name: "Dr. Priya Patel", Specialty: "", Location: ""},
	}}
	return NewNotificationService(userRepo, dermRepo, sender, zap.NewNop())
}

func confirmationJob(userID, dermID int64) domain.EmailJob {
	scheduledAt := time.Date(2026, time.September, 15, 14, 30, 0, 0, time.UTC)
	return domain.EmailJob{
		AppointmentID:   1,
		UserID:          userID,
		DermatologistID: dermID,
		ScheduledAt:     scheduledAt,
		Reason:          "Follow-up on recent scan",
	}
}

func TestSendAppointmentConfirmation_RendersDetails(t *testing.T) {
	sender := &recordingSender{}
	svc := notificationFixture(sender)

	job := confirmationJob(7, 3)
	job.AppointmentID = 424242

	err := svc.SendAppointmentConfirmation(context.Background(), job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.messages))
	}

	msg := sender.messages[0]
	if msg.To != "jane@example.com" {
		t.Errorf("unexpected recipient: %s", msg.To)
	}
	if msg.Subject != "Appointment Confirmation - Dr. Sarah Johnson" {
		t.Errorf("unexpected subject: %s", msg.Subject)
	}

	for _, want := range []string{
		"#424242",
		"Jane Doe",
		"Dr. Sarah Johnson",
		"Dermatology",
		"Boston, MA",
		"Tuesday, September 15, 2026",
		"2:30 PM",
		"Follow-up on recent scan",
	} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("body is missing %q", want)
		}
	}

	if msg.Text == "" {
		t.Error("expected a plain-text alternative body")
	}
	for _, want := range []string{"#424242", "Dr. Sarah Johnson", "Tuesday, September 15, 2026"} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("plain-text body is missing %q", want)
		}
	}
}

func TestSendAppointmentConfirmation_Fallbacks(t *testing.T) {
	sender := &recordingSender{}
	svc := notificationFixture(sender)

	err := svc.SendAppointmentConfirmation(context.Background(), confirmationJob(8, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := sender.messages[0]
	for _, want := range []string{"Valued Patient", "Dermatology", "Telehealth"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("body is missing fallback %q", want)
		}
	}
}

func TestSendAppointmentConfirmation_LookupFailureAbortsSend(t *testing.T) {
	sender := &recordingSender{}
	svc := notificationFixture(sender)

	if err := svc.SendAppointmentConfirmation(context.Background(), confirmationJob(999, 3)); err == nil {
		t.Error("expected error for unknown user")
	}
	if err := svc.SendAppointmentConfirmation(context.Background(), confirmationJob(7, 999)); err == nil {
		t.Error("expected error for unknown dermatologist")
	}

	if len(sender.messages) != 0 {
		t.Errorf("nothing should be sent when a lookup fails, got %d messages", len(sender.messages))
	}
}

func TestSendAppointmentConfirmation_NilSenderIsNoop(t *testing.T) {
	svc := notificationFixture(nil)

	if err := svc.SendAppointmentConfirmation(context.Background(), confirmationJob(7, 3)); err != nil {
		t.Errorf("nil sender should be a no-op, got: %v", err)
	}
}
