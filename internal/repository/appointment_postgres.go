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

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

func (r *AppointmentRepo) Create(ctx context.Context, userID int64, dermatologistID int64, scanID *int64, scheduledAt time.Time, reason string) (int64, error) {
	var id int64
	query := `
		INSERT INTO appointments (user_id, dermatologist_id, scan_id, scheduled_at, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		userID,
		dermatologistID,
		scanID,
		scheduledAt,
		reason,
		domain.AppointmentStatusPending,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create appointment: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := `
		SELECT id, user_id, dermatologist_id, scan_id, scheduled_at, COALESCE(reason, ''), status, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`

	var appointment domain.Appointment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.UserID,
		&appointment.DermatologistID,
		&appointment.ScanID,
		&appointment.ScheduledAt,
		&appointment.Reason,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("appointment %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error {
	setValues := []string{}
	args := []interface{}{id}
	argId := 2

	if dto.Status != nil {
		setValues = append(setValues, fmt.Sprintf("status = $%d", argId))
		args = append(args, *dto.Status)
		argId++
	}

	if dto.ScheduledAt != nil {
		setValues = append(setValues, fmt.Sprintf("scheduled_at = $%d", argId))
		args = append(args, *dto.ScheduledAt)
		argId++
	}

	setValues = append(setValues, fmt.Sprintf("updated_at = $%d", argId))
	args = append(args, time.Now())

	if len(setValues) <= 1 {
		return nil
	}

	setQuery := "UPDATE appointments SET " + joinWithComma(setValues) + " WHERE id = $1"

	_, err := r.db.Exec(ctx, setQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	whereClause, args := buildAppointmentWhere(filter)

	query := `
		SELECT id, user_id, dermatologist_id, scan_id, scheduled_at, COALESCE(reason, ''), status, created_at, updated_at
		FROM appointments
	` + whereClause + `
		ORDER BY scheduled_at DESC
	`

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var appointment domain.Appointment
		err := rows.Scan(
			&appointment.ID,
			&appointment.UserID,
			&appointment.DermatologistID,
			&appointment.ScanID,
			&appointment.ScheduledAt,
			&appointment.Reason,
			&appointment.Status,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read appointments: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	whereClause, args := buildAppointmentWhere(filter)

	query := "SELECT COUNT(*) FROM appointments" + whereClause

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	return count, nil
}

func buildAppointmentWhere(filter domain.AppointmentFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argId := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argId))
		args = append(args, *filter.UserID)
		argId++
	}

	if filter.DermatologistID != nil {
		conditions = append(conditions, fmt.Sprintf("dermatologist_id = $%d", argId))
		args = append(args, *filter.DermatologistID)
		argId++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argId))
		args = append(args, *filter.Status)
		argId++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("scheduled_at >= $%d", argId))
		args = append(args, *filter.StartDate)
		argId++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("scheduled_at <= $%d", argId))
		args = append(args, *filter.EndDate)
		argId++
	}

	if len(conditions) == 0 {
		return "", args
	}

	whereClause := " WHERE " + conditions[0]
	for _, condition := range conditions[1:] {
		whereClause += " AND " + condition
	}

	return whereClause, args
}
