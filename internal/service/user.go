package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"acnescan/internal/domain"
	"acnescan/internal/repository"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserServiceImpl) Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error) {
	existingUser, err := s.repo.GetByEmail(ctx, dto.Email)
	if err == nil && existingUser != nil {
		return 0, fmt.Errorf("user with this email already exists: %w", domain.ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return 0, errors.New("failed to create user")
	}

	dto.Password = string(hashedPassword)

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return 0, errors.New("failed to create user")
	}

	return id, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get user by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}

	return user, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("user to update not found", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("user: %w", domain.ErrNotFound)
	}

	if dto.Email != nil {
		existingUser, err := s.repo.GetByEmail(ctx, *dto.Email)
		if err == nil && existingUser != nil && existingUser.ID != id {
			return fmt.Errorf("user with this email already exists: %w", domain.ErrInvalidInput)
		}
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("failed to update user", zap.Int64("id", id), zap.Error(err))
		return errors.New("failed to update user")
	}

	return nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("user not found", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("user: %w", domain.ErrNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.OldPassword))
	if err != nil {
		return fmt.Errorf("current password is incorrect: %w", domain.ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return errors.New("failed to update password")
	}

	err = s.repo.UpdatePassword(ctx, id, string(hashedPassword))
	if err != nil {
		s.logger.Error("failed to update password", zap.Int64("id", id), zap.Error(err))
		return errors.New("failed to update password")
	}

	return nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("user to delete not found", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("user: %w", domain.ErrNotFound)
	}

	err = s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete user", zap.Int64("id", id), zap.Error(err))
		return errors.New("failed to delete user")
	}

	return nil
}

func (s *UserServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, errors.New("failed to list users")
	}

	return users, nil
}
