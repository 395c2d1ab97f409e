package leave

import "context"

// Service drives a leave request through its lifecycle and answers quota
// questions. Every mutation notifies the StatusNotifier.
type Service interface {
	SubmitRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ApproveRequest(ctx context.Context, requestID string, approverID string) (LeaveRequestResponse, error)
	RejectRequest(ctx context.Context, req RejectRequestRequest, approverID string) (LeaveRequestResponse, error)
	CancelRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	GetRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)
	ListMyRequests(ctx context.Context, employeeID string, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)

	// QuotaSummary recomputes per-type balances from the approved subset.
	QuotaSummary(ctx context.Context, employeeID string) ([]QuotaSummaryResponse, error)
}

// StatusNotifier receives a StatusChange after every lifecycle mutation.
// The SSE hub implements this in production; tests swap in a recorder.
type StatusNotifier interface {
	NotifyStatusChanged(change StatusChange, request LeaveRequest)
}
