package postgresql

import (
	"context"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workShiftRepositoryImpl struct {
	db *database.DB
}

func NewWorkShiftRepository(db *database.DB) schedule.WorkShiftRepository {
	return &workShiftRepositoryImpl{db: db}
}

// Create implements schedule.WorkShiftRepository.
func (r *workShiftRepositoryImpl) Create(ctx context.Context, shift schedule.WorkShift) (schedule.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_shifts (
			id, name, start_time, end_time,
			late_threshold_percent, grace_minutes,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5,
			NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.Name,
		shift.StartTime,
		shift.EndTime,
		shift.LateThresholdPercent,
		shift.GraceMinutes,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)
	if err != nil {
		return schedule.WorkShift{}, err
	}

	return shift, nil
}

// GetByID implements schedule.WorkShiftRepository.
func (r *workShiftRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, late_threshold_percent, grace_minutes, created_at, updated_at
		FROM work_shifts
		WHERE id = $1
	`

	var shift schedule.WorkShift
	err := q.QueryRow(ctx, query, id).Scan(
		&shift.ID,
		&shift.Name,
		&shift.StartTime,
		&shift.EndTime,
		&shift.LateThresholdPercent,
		&shift.GraceMinutes,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkShift{}, schedule.ErrWorkShiftNotFound
		}
		return schedule.WorkShift{}, err
	}

	return shift, nil
}

// List implements schedule.WorkShiftRepository.
func (r *workShiftRepositoryImpl) List(ctx context.Context) ([]schedule.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, late_threshold_percent, grace_minutes, created_at, updated_at
		FROM work_shifts
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []schedule.WorkShift
	for rows.Next() {
		var shift schedule.WorkShift
		err := rows.Scan(
			&shift.ID,
			&shift.Name,
			&shift.StartTime,
			&shift.EndTime,
			&shift.LateThresholdPercent,
			&shift.GraceMinutes,
			&shift.CreatedAt,
			&shift.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}
