package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"acnescan/internal/domain"
)

type ScanRepo struct {
	db *pgxpool.Pool
}

func NewScanRepository(db *pgxpool.Pool) *ScanRepo {
	return &ScanRepo{
		db: db,
	}
}

func (r *ScanRepo) Create(ctx context.Context, userID int64, dto domain.CreateScanDTO) (int64, error) {
	var id int64
	query := `
		INSERT INTO scans (user_id, image_url, acne_type, causes, confidence, analysis_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		userID,
		dto.ImageURL,
		dto.AcneType,
		dto.Causes,
		dto.Confidence,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create scan: %w", err)
	}

	return id, nil
}

func (r *ScanRepo) GetByID(ctx context.Context, id int64) (*domain.Scan, error) {
	query := `
		SELECT id, user_id, image_url, acne_type, causes, confidence, analysis_date
		FROM scans
		WHERE id = $1
	`

	var scan domain.Scan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&scan.ID,
		&scan.UserID,
		&scan.ImageURL,
		&scan.AcneType,
		&scan.Causes,
		&scan.Confidence,
		&scan.AnalysisDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("scan %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	return &scan, nil
}

func (r *ScanRepo) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Scan, error) {
	query := `
		SELECT id, user_id, image_url, acne_type, causes, confidence, analysis_date
		FROM scans
		WHERE user_id = $1
		ORDER BY analysis_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []domain.Scan
	for rows.Next() {
		var scan domain.Scan
		err := rows.Scan(
			&scan.ID,
			&scan.UserID,
			&scan.ImageURL,
			&scan.AcneType,
			&scan.Causes,
			&scan.Confidence,
			&scan.AnalysisDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, scan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scans: %w", err)
	}

	return scans, nil
}
