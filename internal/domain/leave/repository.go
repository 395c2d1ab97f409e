package leave

import "context"

// LeaveRequestRepository - persistence for leave_requests
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	// ListApprovedByType returns the approved requests that back the
	// used-quota recomputation for one employee and type.
	ListApprovedByType(ctx context.Context, employeeID string, leaveType LeaveType) ([]LeaveRequest, error)

	Update(ctx context.Context, request LeaveRequest) error
}

// QuotaPolicyRepository - persistence for per-type quota policies
type QuotaPolicyRepository interface {
	GetQuotaTable(ctx context.Context) (QuotaTable, error)
}
