package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"acnescan/config"
	"acnescan/internal/domain"
)

func newTestAuthService() (*AuthServiceImpl, *fakeUserRepo) {
	userRepo := &fakeUserRepo{users: map[int64]*domain.User{
		7: {ID: 7, Name: "Jane Doe", Email: "jane@example.com", IsActive: true},
	}}
	svc := NewAuthService(nil, userRepo, config.JWTConfig{SigningKey: "test-key"}, zap.NewNop())
	return svc, userRepo
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		dto  domain.RegisterRequest
	}{
		{"malformed email", domain.RegisterRequest{Name: "John Smith", Email: "john@invalid", Password: "secret1"}},
		{"short password", domain.RegisterRequest{Name: "John Smith", Email: "john@example.com", Password: "abc"}},
		{"numeric name", domain.RegisterRequest{Name: "John123", Email: "john@example.com", Password: "secret1"}},
		{"one-letter name", domain.RegisterRequest{Name: "J", Email: "john@example.com", Password: "secret1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo := newTestAuthService()

			before := len(userRepo.users)
			_, err := svc.Register(context.Background(), tt.dto)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected invalid input error, got: %v", err)
			}
			if len(userRepo.users) != before {
				t.Error("no user should be created for invalid input")
			}
		})
	}
}

func TestRegister_FormatsName(t *testing.T) {
	svc, userRepo := newTestAuthService()

	id, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "john smith",
		Email:    "john@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, ok := userRepo.users[id]
	if !ok {
		t.Fatal("user was not persisted")
	}
	if created.Name != "John Smith" {
		t.Errorf("expected formatted name, got %q", created.Name)
	}
	if created.Role != domain.UserRolePatient {
		t.Errorf("expected patient role, got %q", created.Role)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret1",
	})
	if err == nil {
		t.Fatal("expected error for an already registered email")
	}
}
