package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-portal-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	leave.QuotaPolicyRepository

	quotaValidator *QuotaValidator
	formatter      DurationFormatter
	notifier       leave.StatusNotifier

	// runInTx brackets the quota check and insert of a submission so two
	// concurrent requests cannot both pass against the same balance.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error

	// now is injectable so the same-day rule for hourly requests is testable.
	now func() time.Time
}

func NewLeaveService(
	db *database.DB,
	requestRepo leave.LeaveRequestRepository,
	policyRepo leave.QuotaPolicyRepository,
	notifier leave.StatusNotifier,
) leave.Service {
	return &LeaveServiceImpl{
		LeaveRequestRepository: requestRepo,
		QuotaPolicyRepository:  policyRepo,
		quotaValidator:         NewQuotaValidator(),
		formatter:              DefaultDurationFormatter(),
		notifier:               notifier,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: time.Now,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// SubmitRequest implements leave.Service.
func (s *LeaveServiceImpl) SubmitRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID := req.EmployeeID
	if employeeID == "" {
		fromClaims, err := employeeIDFromContext(ctx)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		employeeID = fromClaims
	}

	leaveType := leave.LeaveType(req.LeaveType)
	if !leaveType.Valid() {
		return leave.LeaveRequestResponse{}, fmt.Errorf("%w: %q", leave.ErrInvalidLeaveType, req.LeaveType)
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	candidate := leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		Mode:       leave.RequestMode(req.Mode),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Documents:  req.Documents,
	}

	switch candidate.Mode {
	case leave.ModeFullDay:
		if endDate.Before(startDate) {
			return leave.LeaveRequestResponse{}, validator.ValidationErrors{{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			}}
		}
		candidate.Days = FullDaySpan(startDate, endDate)
		candidate.DurationLabel = s.formatter.FullDayLabel(candidate.Days)

	case leave.ModeHourly:
		// Hourly leave can only cover the current day.
		today := s.now().Format("2006-01-02")
		if req.StartDate != today || req.EndDate != today {
			return leave.LeaveRequestResponse{}, validator.ValidationErrors{{
				Field:   "start_date",
				Message: "hourly leave can only be requested for today",
			}}
		}

		span, err := s.formatter.HourlySpan(*req.StartTime, *req.EndTime)
		if err != nil {
			if errors.Is(err, ErrInvalidTimeRange) {
				return leave.LeaveRequestResponse{}, validator.ValidationErrors{{
					Field:   "end_time",
					Message: "end_time must be after start_time",
				}}
			}
			return leave.LeaveRequestResponse{}, err
		}
		candidate.StartTime = req.StartTime
		candidate.EndTime = req.EndTime
		candidate.DurationLabel = span.Label
	}

	var created leave.LeaveRequest
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		table, err := s.QuotaPolicyRepository.GetQuotaTable(txCtx)
		if err != nil {
			return fmt.Errorf("failed to get quota table: %w", err)
		}

		approved, err := s.LeaveRequestRepository.ListApprovedByType(txCtx, employeeID, leaveType)
		if err != nil {
			return fmt.Errorf("failed to list approved requests: %w", err)
		}

		result := s.quotaValidator.Validate(candidate, approved, table)
		if !result.IsValid {
			errs := make(validator.ValidationErrors, 0, len(result.Errors))
			for _, msg := range result.Errors {
				errs = append(errs, validator.ValidationError{Field: "leave_request", Message: msg})
			}
			return errs
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate request id: %w", err)
		}
		candidate.ID = id.String()
		candidate.Status = leave.StatusPending
		candidate.SubmittedAt = s.now()

		created, err = s.LeaveRequestRepository.Create(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.notifier.NotifyStatusChanged(leave.StatusChange{
		RequestID:  created.ID,
		EmployeeID: created.EmployeeID,
		OldStatus:  "",
		NewStatus:  created.Status,
	}, created)

	return mapRequestToResponse(created), nil
}

// ApproveRequest implements leave.Service. Only pending requests move.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, requestID string, approverID string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	oldStatus := request.Status
	now := s.now()
	request.Status = leave.StatusApproved
	request.ApprovedBy = &approverID
	request.ApprovedAt = &now

	if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.notifyTransition(oldStatus, request)
	return mapRequestToResponse(request), nil
}

// RejectRequest implements leave.Service. The reason is stored and surfaced
// back to the requester.
func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, req leave.RejectRequestRequest, approverID string) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	oldStatus := request.Status
	request.Status = leave.StatusRejected
	request.RejectionReason = &req.Reason

	if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.notifyTransition(oldStatus, request)
	return mapRequestToResponse(request), nil
}

// CancelRequest implements leave.Service. Cancelling anything that is no
// longer pending fails instead of silently no-opping.
func (s *LeaveServiceImpl) CancelRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrNotCancellable
	}

	oldStatus := request.Status
	now := s.now()
	request.Status = leave.StatusCancelled
	request.CancelledAt = &now

	if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.notifyTransition(oldStatus, request)
	return mapRequestToResponse(request), nil
}

// GetRequest implements leave.Service.
func (s *LeaveServiceImpl) GetRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return mapRequestToResponse(request), nil
}

// ListMyRequests implements leave.Service.
func (s *LeaveServiceImpl) ListMyRequests(ctx context.Context, employeeID string, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestsResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	requests, total, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, mapRequestToResponse(r))
	}

	return leave.ListLeaveRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}

// QuotaSummary implements leave.Service. Balances are recomputed from the
// approved subset on every call, never read from a stored counter.
func (s *LeaveServiceImpl) QuotaSummary(ctx context.Context, employeeID string) ([]leave.QuotaSummaryResponse, error) {
	table, err := s.QuotaPolicyRepository.GetQuotaTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get quota table: %w", err)
	}

	order := []leave.LeaveType{leave.TypeSick, leave.TypePersonal, leave.TypeVacation, leave.TypeMaternity}

	summaries := make([]leave.QuotaSummaryResponse, 0, len(order))
	for _, leaveType := range order {
		policy, ok := table[leaveType]
		if !ok {
			continue
		}

		approved, err := s.LeaveRequestRepository.ListApprovedByType(ctx, employeeID, leaveType)
		if err != nil {
			return nil, fmt.Errorf("failed to list approved requests: %w", err)
		}

		var usedDays int
		for _, r := range approved {
			usedDays += r.Days
		}

		remaining := policy.TotalDaysPerYear - usedDays
		if remaining < 0 {
			remaining = 0
		}

		summaries = append(summaries, leave.QuotaSummaryResponse{
			LeaveType:        string(leaveType),
			TotalDaysPerYear: policy.TotalDaysPerYear,
			UsedDays:         usedDays,
			RemainingDays:    remaining,
		})
	}

	return summaries, nil
}

func (s *LeaveServiceImpl) notifyTransition(oldStatus leave.RequestStatus, request leave.LeaveRequest) {
	s.notifier.NotifyStatusChanged(leave.StatusChange{
		RequestID:  request.ID,
		EmployeeID: request.EmployeeID,
		OldStatus:  oldStatus,
		NewStatus:  request.Status,
	}, request)
}

func mapRequestToResponse(r leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		LeaveType:       string(r.LeaveType),
		Mode:            string(r.Mode),
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Days:            r.Days,
		DurationLabel:   r.DurationLabel,
		Reason:          r.Reason,
		Documents:       r.Documents,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		SubmittedAt:     r.SubmittedAt.Format(time.RFC3339),
	}
}
