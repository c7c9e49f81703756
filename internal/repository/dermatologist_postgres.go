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

type DermatologistRepo struct {
	db *pgxpool.Pool
}

func NewDermatologistRepository(db *pgxpool.Pool) *DermatologistRepo {
	return &DermatologistRepo{
		db: db,
	}
}

func (r *DermatologistRepo) Create(ctx context.Context, dermatologist domain.Dermatologist) (int64, error) {
	var id int64
	query := `
		INSERT INTO dermatologists (name, specialty, email, phone, bio, location, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	specialty := dermatologist.Specialty
	if specialty == "" {
		specialty = domain.DefaultSpecialty
	}

	err := r.db.QueryRow(
		ctx,
		query,
		dermatologist.Name,
		specialty,
		dermatologist.Email,
		dermatologist.Phone,
		dermatologist.Bio,
		dermatologist.Location,
		dermatologist.Available,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create dermatologist: %w", err)
	}

	return id, nil
}

func (r *DermatologistRepo) GetByID(ctx context.Context, id int64) (*domain.Dermatologist, error) {
	query := `
		SELECT id, name, COALESCE(specialty, ''), COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(bio, ''), COALESCE(location, ''), available, created_at, updated_at
		FROM dermatologists
		WHERE id = $1
	`

	var dermatologist domain.Dermatologist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&dermatologist.ID,
		&dermatologist.Name,
		&dermatologist.Specialty,
		&dermatologist.Email,
		&dermatologist.Phone,
		&dermatologist.Bio,
		&dermatologist.Location,
		&dermatologist.Available,
		&dermatologist.CreatedAt,
		&dermatologist.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("dermatologist %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dermatologist: %w", err)
	}

	return &dermatologist, nil
}

func (r *DermatologistRepo) List(ctx context.Context) ([]domain.Dermatologist, error) {
	query := `
		SELECT id, name, COALESCE(specialty, ''), COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(bio, ''), COALESCE(location, ''), available, created_at, updated_at
		FROM dermatologists
		WHERE available = true
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list dermatologists: %w", err)
	}
	defer rows.Close()

	var dermatologists []domain.Dermatologist
	for rows.Next() {
		var dermatologist domain.Dermatologist
		err := rows.Scan(
			&dermatologist.ID,
			&dermatologist.Name,
			&dermatologist.Specialty,
			&dermatologist.Email,
			&dermatologist.Phone,
			&dermatologist.Bio,
			&dermatologist.Location,
			&dermatologist.Available,
			&dermatologist.CreatedAt,
			&dermatologist.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dermatologist: %w", err)
		}
		dermatologists = append(dermatologists, dermatologist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dermatologists: %w", err)
	}

	return dermatologists, nil
}
