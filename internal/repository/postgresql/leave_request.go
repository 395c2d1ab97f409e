package postgresql

import (
	"context"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	id, employee_id, leave_type, mode,
	start_date, end_date, start_time, end_time,
	days, duration_label, reason, documents,
	status, approved_by, approved_at, rejection_reason, cancelled_at,
	submitted_at, created_at, updated_at
`

// Create implements leave.LeaveRequestRepository. The ID is generated by the
// service so the event payload can carry it before the insert returns.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, mode,
			start_date, end_date, start_time, end_time,
			days, duration_label, reason, documents,
			status, submitted_at,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14,
			NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		string(request.LeaveType),
		string(request.Mode),
		request.StartDate,
		request.EndDate,
		request.StartTime,
		request.EndTime,
		request.Days,
		request.DurationLabel,
		request.Reason,
		request.Documents,
		string(request.Status),
		request.SubmittedAt,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE id = $1
	`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND ($2::text IS NULL OR status = $2)
		  AND ($3::text IS NULL OR leave_type = $3)
		ORDER BY submitted_at DESC
		LIMIT $4 OFFSET $5
	`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, employeeID, filter.Status, filter.Type, filter.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE employee_id = $1
		  AND ($2::text IS NULL OR status = $2)
		  AND ($3::text IS NULL OR leave_type = $3)
	`
	var total int64
	err = q.QueryRow(ctx, countQuery, employeeID, filter.Status, filter.Type).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListApprovedByType implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedByType(ctx context.Context, employeeID string, leaveType leave.LeaveType) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND leave_type = $2 AND status = $3
		ORDER BY submitted_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, string(leaveType), string(leave.StatusApproved))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2,
		    approved_by = $3,
		    approved_at = $4,
		    rejection_reason = $5,
		    cancelled_at = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		request.ID,
		string(request.Status),
		request.ApprovedBy,
		request.ApprovedAt,
		request.RejectionReason,
		request.CancelledAt,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrRequestNotFound
	}

	return nil
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	var leaveType, mode, status string

	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&leaveType,
		&mode,
		&lr.StartDate,
		&lr.EndDate,
		&lr.StartTime,
		&lr.EndTime,
		&lr.Days,
		&lr.DurationLabel,
		&lr.Reason,
		&lr.Documents,
		&status,
		&lr.ApprovedBy,
		&lr.ApprovedAt,
		&lr.RejectionReason,
		&lr.CancelledAt,
		&lr.SubmittedAt,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	lr.LeaveType = leave.LeaveType(leaveType)
	lr.Mode = leave.RequestMode(mode)
	lr.Status = leave.RequestStatus(status)
	return lr, nil
}
