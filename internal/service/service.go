package service

import (
	"context"

	"go.uber.org/zap"

	"acnescan/config"
	"acnescan/internal/classifier"
	"acnescan/internal/domain"
	"acnescan/internal/notify"
	"acnescan/internal/repository"
	"acnescan/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	Classifier  *classifier.Client
	EmailSender notify.EmailSender
}

type Services struct {
	User          UserService
	Auth          AuthService
	Dermatologist DermatologistService
	Scan          ScanService
	Suggestion    SuggestionService
	Appointment   AppointmentService
	Notification  NotificationService
}

func NewServices(deps Deps) *Services {
	notification := NewNotificationService(deps.Repos.User, deps.Repos.Dermatologist, deps.EmailSender, deps.Logger)

	return &Services{
		User:          NewUserService(deps.Repos.User, deps.Logger),
		Auth:          NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Dermatologist: NewDermatologistService(deps.Repos.Dermatologist, deps.Logger),
		Scan:          NewScanService(deps.Repos.Scan, deps.FileStorage, deps.Classifier, deps.Logger),
		Suggestion:    NewSuggestionService(),
		Appointment:   NewAppointmentService(deps.Repos.Appointment, deps.Repos.Dermatologist, deps.Repos.User, deps.Repos.Scan, notification, deps.Config.Email.SendTimeout, deps.Logger),
		Notification:  notification,
	}
}

type UserService interface {
	Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

type DermatologistService interface {
	GetByID(ctx context.Context, id int64) (*domain.Dermatologist, error)
	List(ctx context.Context, filter domain.DirectoryFilter) ([]domain.Dermatologist, int, error)
}

type ScanService interface {
	Analyze(ctx context.Context, userID int64, image []byte, filename string) (*domain.Scan, error)
	GetByID(ctx context.Context, id int64) (*domain.Scan, error)
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Scan, error)
}

type SuggestionService interface {
	GetByAcneType(acneType string) []domain.TreatmentSuggestion
}

type AppointmentService interface {
	Create(ctx context.Context, userID int64, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
	Cancel(ctx context.Context, id int64) error
}

type NotificationService interface {
	SendAppointmentConfirmation(ctx context.Context, job domain.EmailJob) error
}
