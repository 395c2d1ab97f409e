package leave

import (
	"log/slog"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/sse"
)

// EventLeaveRequestUpdated is the SSE event name for lifecycle transitions.
const EventLeaveRequestUpdated = "leave_request.updated"

// SSENotifier fans status changes out to the employee's open event streams,
// which is how other tabs of the same user learn about transitions.
type SSENotifier struct {
	hub    *sse.Hub
	logger *slog.Logger
}

func NewSSENotifier(hub *sse.Hub, logger *slog.Logger) *SSENotifier {
	return &SSENotifier{hub: hub, logger: logger}
}

// NotifyStatusChanged implements leave.StatusNotifier.
func (n *SSENotifier) NotifyStatusChanged(change leave.StatusChange, request leave.LeaveRequest) {
	n.hub.Publish(change.EmployeeID, sse.Event{
		EmployeeID: change.EmployeeID,
		Name:       EventLeaveRequestUpdated,
		Data:       change,
	})

	n.logger.Info("leave request status changed",
		"request_id", change.RequestID,
		"employee_id", change.EmployeeID,
		"old_status", string(change.OldStatus),
		"new_status", string(change.NewStatus),
	)
}
