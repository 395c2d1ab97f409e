package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type dayRecordRepositoryImpl struct {
	db *database.DB
}

func NewDayRecordRepository(db *database.DB) attendance.DayRecordRepository {
	return &dayRecordRepositoryImpl{db: db}
}

// Create implements attendance.DayRecordRepository. Shifts are stored as a
// JSONB document; the flat legacy columns stay alongside for single-shift
// terminals that still write them.
func (r *dayRecordRepositoryImpl) Create(ctx context.Context, record attendance.DayRecord) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	shiftsJSON, err := json.Marshal(record.Shifts)
	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("marshal shifts: %w", err)
	}

	query := `
		INSERT INTO day_records (
			id, employee_id, date, shifts,
			check_in, check_out, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6,
			NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		shiftsJSON,
		record.CheckIn,
		record.CheckOut,
		nullableStatus(record.Status),
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.DayRecord{}, attendance.ErrDuplicateDay
		}
		return attendance.DayRecord{}, err
	}

	return record, nil
}

// GetByEmployeeAndRange implements attendance.DayRecordRepository. A zero
// time on either side leaves that side unbounded.
func (r *dayRecordRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, shifts, check_in, check_out, status, created_at, updated_at
		FROM day_records
		WHERE employee_id = $1
		  AND ($2::date IS NULL OR date >= $2)
		  AND ($3::date IS NULL OR date <= $3)
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, nullableDate(start), nullableDate(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDayRecords(rows)
}

// List implements attendance.DayRecordRepository.
func (r *dayRecordRepositoryImpl) List(ctx context.Context, employeeID string, filter attendance.ListDayRecordsFilter) ([]attendance.DayRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, shifts, check_in, check_out, status, created_at, updated_at
		FROM day_records
		WHERE employee_id = $1
		  AND ($2::date IS NULL OR date >= $2)
		  AND ($3::date IS NULL OR date <= $3)
		ORDER BY date DESC
		LIMIT $4 OFFSET $5
	`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, employeeID, nullableDateString(filter.StartDate), nullableDateString(filter.EndDate), filter.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records, err := scanDayRecords(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*)
		FROM day_records
		WHERE employee_id = $1
		  AND ($2::date IS NULL OR date >= $2)
		  AND ($3::date IS NULL OR date <= $3)
	`
	var total int64
	err = q.QueryRow(ctx, countQuery, employeeID, nullableDateString(filter.StartDate), nullableDateString(filter.EndDate)).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func scanDayRecords(rows pgx.Rows) ([]attendance.DayRecord, error) {
	var records []attendance.DayRecord
	for rows.Next() {
		var rec attendance.DayRecord
		var shiftsJSON []byte
		var status *string

		err := rows.Scan(
			&rec.ID,
			&rec.EmployeeID,
			&rec.Date,
			&shiftsJSON,
			&rec.CheckIn,
			&rec.CheckOut,
			&status,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if len(shiftsJSON) > 0 {
			if err := json.Unmarshal(shiftsJSON, &rec.Shifts); err != nil {
				return nil, fmt.Errorf("unmarshal shifts: %w", err)
			}
		}
		if status != nil {
			rec.Status = attendance.ShiftStatus(*status)
		}

		records = append(records, rec)
	}
	return records, rows.Err()
}

func nullableStatus(s attendance.ShiftStatus) *string {
	if s == "" {
		return nil
	}
	v := string(s)
	return &v
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func nullableDateString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
