package notify

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"acnescan/config"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(config.EmailConfig{
		SendGridAPIKey: "",
		FromEmail:      "noreply@acnescan.com",
	}, zap.NewNop())

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_WithAPIKey(t *testing.T) {
	sender := NewSendGridSender(config.EmailConfig{
		SendGridAPIKey: "test-key",
		FromEmail:      "noreply@acnescan.com",
		FromName:       "AcneScan",
	}, zap.NewNop())

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromEmail != "noreply@acnescan.com" {
		t.Errorf("unexpected from email: %s", sender.fromEmail)
	}
	if sender.fromName != "AcneScan" {
		t.Errorf("unexpected from name: %s", sender.fromName)
	}
}

func TestSendGridSender_Send_NilClient(t *testing.T) {
	sender := &SendGridSender{
		client: nil,
		logger: zap.NewNop(),
	}

	err := sender.Send(context.Background(), EmailMessage{
		To:      "recipient@example.com",
		Subject: "Test",
		HTML:    "<p>Test body</p>",
	})

	if err == nil {
		t.Error("expected error when client is nil")
	}
}

func TestStubSender_Send(t *testing.T) {
	sender := NewStubSender(zap.NewNop())

	err := sender.Send(context.Background(), EmailMessage{
		To:      "recipient@example.com",
		ToName:  "Jane Doe",
		Subject: "Test Subject",
		HTML:    "<p>Test body</p>",
	})

	if err != nil {
		t.Errorf("stub sender should not return error, got: %v", err)
	}
}
