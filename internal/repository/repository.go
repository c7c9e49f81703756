package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"acnescan/internal/domain"
)

type Repositories struct {
	User          UserRepository
	Auth          AuthRepository
	Dermatologist DermatologistRepository
	Scan          ScanRepository
	Appointment   AppointmentRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		Auth:          NewAuthRepository(db),
		Dermatologist: NewDermatologistRepository(db),
		Scan:          NewScanRepository(db),
		Appointment:   NewAppointmentRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

type DermatologistRepository interface {
	Create(ctx context.Context, dermatologist domain.Dermatologist) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Dermatologist, error)
	List(ctx context.Context) ([]domain.Dermatologist, error)
}

type ScanRepository interface {
	Create(ctx context.Context, userID int64, scan domain.CreateScanDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Scan, error)
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Scan, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, userID int64, dermatologistID int64, scanID *int64, scheduledAt time.Time, reason string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, appointment domain.UpdateAppointmentDTO) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)
}
