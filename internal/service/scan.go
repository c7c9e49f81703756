package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"acnescan/internal/classifier"
	"acnescan/internal/domain"
	"acnescan/internal/repository"
	"acnescan/internal/storage"
)

var causesByType = map[string][]string{
	"blackheads": {"Excess sebum production", "Clogged pores", "Hormonal changes"},
	"whiteheads": {"Clogged pores", "Excess sebum production", "Cosmetic product buildup"},
	"papules":    {"Bacterial inflammation", "Hormonal changes", "Stress-related"},
	"pustules":   {"Bacterial inflammation", "Clogged pores", "Dietary factors"},
	"nodular":    {"Deep bacterial infection", "Hormonal changes", "Genetic predisposition"},
	"cystic":     {"Hormonal changes", "Genetic predisposition", "Stress-related"},
}

var defaultCauses = []string{"Hormonal changes", "Dietary factors", "Stress-related"}

type ScanServiceImpl struct {
	repo       repository.ScanRepository
	storage    storage.FileStorage
	classifier *classifier.Client
	logger     *zap.Logger
}

func NewScanService(repo repository.ScanRepository, fileStorage storage.FileStorage, classifierClient *classifier.Client, logger *zap.Logger) *ScanServiceImpl {
	return &ScanServiceImpl{
		repo:       repo,
		storage:    fileStorage,
		classifier: classifierClient,
		logger:     logger,
	}
}

// Analyze uploads the image, submits it to the inference service and
// persists the resulting scan record. The scan is only created when both
// the upload and the classification succeeded.
func (s *ScanServiceImpl) Analyze(ctx context.Context, userID int64, image []byte, filename string) (*domain.Scan, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("empty image: %w", domain.ErrInvalidInput)
	}

	if s.storage == nil {
		return nil, errors.New("file storage is not configured")
	}

	imageURL, err := s.storage.UploadFile(ctx, image, filename)
	if err != nil {
		s.logger.Error("failed to upload scan image", zap.Error(err))
		return nil, errors.New("failed to upload scan image")
	}

	classification, err := s.classifier.Classify(ctx, image, filename)
	if err != nil {
		s.logger.Error("classification failed", zap.Error(err))
		if delErr := s.storage.DeleteFile(ctx, imageURL); delErr != nil {
			s.logger.Warn("failed to remove orphaned scan image", zap.String("url", imageURL), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to analyze image: %w", domain.ErrDependency)
	}

	dto := domain.CreateScanDTO{
		ImageURL:   imageURL,
		AcneType:   classification.Prediction,
		Causes:     possibleCauses(classification.Prediction),
		Confidence: classification.Confidence,
	}

	id, err := s.repo.Create(ctx, userID, dto)
	if err != nil {
		s.logger.Error("failed to store scan", zap.Error(err))
		return nil, errors.New("failed to store scan")
	}

	scan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load created scan", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("failed to store scan")
	}
	scan.Severity = classification.Severity()

	return scan, nil
}

func (s *ScanServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Scan, error) {
	scan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get scan", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("scan: %w", domain.ErrNotFound)
	}
	scan.Severity = domain.Classification{Prediction: scan.AcneType}.Severity()

	return scan, nil
}

func (s *ScanServiceImpl) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Scan, error) {
	scans, err := s.repo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list scans", zap.Int64("userID", userID), zap.Error(err))
		return nil, errors.New("failed to list scans")
	}
	for i := range scans {
		scans[i].Severity = domain.Classification{Prediction: scans[i].AcneType}.Severity()
	}

	return scans, nil
}

func possibleCauses(acneType string) []string {
	family := strings.ToLower(acneType)
	if idx := strings.Index(family, "_"); idx > 0 {
		family = family[:idx]
	}

	if causes, ok := causesByType[family]; ok {
		return causes
	}
	return defaultCauses
}
