package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"acnescan/internal/domain"
	"acnescan/internal/repository"
)

type AppointmentServiceImpl struct {
	repo         repository.AppointmentRepository
	dermRepo     repository.DermatologistRepository
	userRepo     repository.UserRepository
	scanRepo     repository.ScanRepository
	notification NotificationService
	emailTimeout time.Duration
	logger       *zap.Logger

	// emailDone is signalled after each confirmation dispatch attempt.
	// Tests use it to wait for the detached send without sleeping.
	emailDone chan struct{}
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	dermRepo repository.DermatologistRepository,
	userRepo repository.UserRepository,
	scanRepo repository.ScanRepository,
	notification NotificationService,
	emailTimeout time.Duration,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:         repo,
		dermRepo:     dermRepo,
		userRepo:     userRepo,
		scanRepo:     scanRepo,
		notification: notification,
		emailTimeout: emailTimeout,
		logger:       logger,
		emailDone:    make(chan struct{}, 1),
	}
}

// CombineDateTime anchors a separately collected calendar date and wall
// time to an absolute instant. The timezone is the IANA zone submitted with
// the booking draft; an empty zone means UTC.
func CombineDateTime(date, wallTime, timezone string) (time.Time, error) {
	loc := time.UTC
	if timezone != "" {
		parsed, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("unknown timezone %q: %w", timezone, domain.ErrInvalidInput)
		}
		loc = parsed
	}

	combined, err := time.ParseInLocation("2006-01-02 15:04", date+" "+wallTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date or time: %w", domain.ErrInvalidInput)
	}

	return combined, nil
}

// Create runs the booking workflow: validate the draft, combine date and
// time, persist a pending appointment, then dispatch the confirmation email
// without waiting for it. Only the persistence step decides the outcome.
func (s *AppointmentServiceImpl) Create(ctx context.Context, userID int64, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	if dto.DermatologistID <= 0 {
		// The booking form cannot be reached without a selection, so this
		// is an invariant violation rather than ordinary user input.
		return nil, fmt.Errorf("no dermatologist selected: %w", domain.ErrInvalidInput)
	}

	if strings.TrimSpace(dto.Reason) == "" {
		return nil, fmt.Errorf("reason is required: %w", domain.ErrInvalidInput)
	}

	scheduledAt, err := CombineDateTime(dto.Date, dto.Time, dto.Timezone)
	if err != nil {
		return nil, err
	}

	if scheduledAt.Before(time.Now()) {
		return nil, fmt.Errorf("appointment date must not be in the past: %w", domain.ErrInvalidInput)
	}

	_, err = s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("user not found while booking", zap.Int64("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}

	_, err = s.dermRepo.GetByID(ctx, dto.DermatologistID)
	if err != nil {
		s.logger.Error("dermatologist not found while booking", zap.Int64("dermatologistID", dto.DermatologistID), zap.Error(err))
		return nil, fmt.Errorf("dermatologist: %w", domain.ErrNotFound)
	}

	if dto.ScanID != nil {
		scan, err := s.scanRepo.GetByID(ctx, *dto.ScanID)
		if err != nil || scan.UserID != userID {
			s.logger.Warn("ignoring unknown or foreign scan reference",
				zap.Int64("scanID", *dto.ScanID), zap.Int64("userID", userID))
			dto.ScanID = nil
		}
	}

	id, err := s.repo.Create(ctx, userID, dto.DermatologistID, dto.ScanID, scheduledAt, dto.Reason)
	if err != nil {
		s.logger.Error("failed to create appointment", zap.Error(err))
		return nil, errors.New("failed to book appointment")
	}

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load created appointment", zap.Int64("id", id), zap.Error(err))
		appointment = &domain.Appointment{
			ID:              id,
			UserID:          userID,
			DermatologistID: dto.DermatologistID,
			ScanID:          dto.ScanID,
			ScheduledAt:     scheduledAt,
			Reason:          dto.Reason,
			Status:          domain.AppointmentStatusPending,
		}
	}

	job := domain.EmailJob{
		AppointmentID:   id,
		UserID:          userID,
		DermatologistID: dto.DermatologistID,
		ScheduledAt:     scheduledAt,
		Reason:          dto.Reason,
	}
	s.dispatchConfirmation(job)

	return appointment, nil
}

// dispatchConfirmation spawns the confirmation send on a detached context.
// The booking has already succeeded at this point, so any failure here is
// logged and dropped.
func (s *AppointmentServiceImpl) dispatchConfirmation(job domain.EmailJob) {
	go func() {
		defer func() {
			select {
			case s.emailDone <- struct{}{}:
			default:
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.emailTimeout)
		defer cancel()

		if err := s.notification.SendAppointmentConfirmation(ctx, job); err != nil {
			s.logger.Warn("failed to send appointment confirmation",
				zap.Int64("appointmentID", job.AppointmentID),
				zap.Error(err))
		}
	}()
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get appointment", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("appointment: %w", domain.ErrNotFound)
	}

	return appointment, nil
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list appointments", zap.Error(err))
		return nil, 0, errors.New("failed to list appointments")
	}

	count, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("failed to count appointments", zap.Error(err))
		return appointments, len(appointments), nil
	}

	return appointments, count, nil
}

func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id int64) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("appointment to cancel not found", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("appointment: %w", domain.ErrNotFound)
	}

	status := domain.AppointmentStatusCancelled
	err = s.repo.Update(ctx, id, domain.UpdateAppointmentDTO{Status: &status})
	if err != nil {
		s.logger.Error("failed to cancel appointment", zap.Int64("id", id), zap.Error(err))
		return errors.New("failed to cancel appointment")
	}

	return nil
}
