package leave

import (
	"time"
)

// LeaveType is the fixed set of request categories. LateArrival shares the
// request lifecycle but draws from no day-quota pool.
type LeaveType string

const (
	TypeSick        LeaveType = "sick"
	TypePersonal    LeaveType = "personal"
	TypeVacation    LeaveType = "vacation"
	TypeMaternity   LeaveType = "maternity"
	TypeLateArrival LeaveType = "late_arrival"
)

func (t LeaveType) Valid() bool {
	switch t {
	case TypeSick, TypePersonal, TypeVacation, TypeMaternity, TypeLateArrival:
		return true
	}
	return false
}

// HasQuotaPool reports whether the type consumes the annual day quota.
func (t LeaveType) HasQuotaPool() bool {
	return t.Valid() && t != TypeLateArrival
}

// RequestMode distinguishes whole-day leave from an hourly window.
type RequestMode string

const (
	ModeFullDay RequestMode = "full_day"
	ModeHourly  RequestMode = "hourly"
)

func (m RequestMode) Valid() bool {
	return m == ModeFullDay || m == ModeHourly
}

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// LeaveRequest entity. IDs are UUIDv7, so creation order is preserved.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	Mode       RequestMode

	StartDate time.Time
	EndDate   time.Time
	StartTime *string // "HH:MM", hourly mode only
	EndTime   *string // "HH:MM", hourly mode only

	// Days is the inclusive full-day span; 0 for hourly requests, which do
	// not consume the day quota.
	Days          int
	DurationLabel string

	Reason    string
	Documents []string // attachment references, resolved by the caller

	Status          RequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CancelledAt     *time.Time

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuotaPolicy is the annual allowance and document rule for one leave type.
// RequiresDocumentAfterDays 0 means a document is always mandatory; N > 0
// requires one only for requests of N or more days.
type QuotaPolicy struct {
	LeaveType                 LeaveType
	TotalDaysPerYear          int
	RequiresDocumentAfterDays int
}

// QuotaTable maps each quota-bearing leave type to its policy.
type QuotaTable map[LeaveType]QuotaPolicy

// DefaultQuotaTable returns the portal's stock policy set.
func DefaultQuotaTable() QuotaTable {
	return QuotaTable{
		TypeSick:      {LeaveType: TypeSick, TotalDaysPerYear: 30, RequiresDocumentAfterDays: 0},
		TypePersonal:  {LeaveType: TypePersonal, TotalDaysPerYear: 45, RequiresDocumentAfterDays: 3},
		TypeVacation:  {LeaveType: TypeVacation, TotalDaysPerYear: 10, RequiresDocumentAfterDays: 3},
		TypeMaternity: {LeaveType: TypeMaternity, TotalDaysPerYear: 90, RequiresDocumentAfterDays: 0},
	}
}

// ValidationResult is the quota validator's verdict. Violations accumulate;
// only an unknown leave type short-circuits.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// StatusChange is published after every lifecycle mutation so other views
// and tabs can refresh. OldStatus is empty for a fresh submission.
type StatusChange struct {
	RequestID  string        `json:"request_id"`
	EmployeeID string        `json:"employee_id"`
	OldStatus  RequestStatus `json:"old_status"`
	NewStatus  RequestStatus `json:"new_status"`
}
