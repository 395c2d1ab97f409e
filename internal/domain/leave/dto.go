package leave

import "github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"

type CreateLeaveRequestRequest struct {
	EmployeeID string   `json:"employee_id"`
	LeaveType  string   `json:"leave_type"`
	Mode       string   `json:"mode"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	StartTime  *string  `json:"start_time,omitempty"`
	EndTime    *string  `json:"end_time,omitempty"`
	Reason     string   `json:"reason"`
	Documents  []string `json:"documents,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is not a recognized leave type",
		})
	}

	if !RequestMode(r.Mode).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be full_day or hourly",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}

	if RequestMode(r.Mode) == ModeHourly {
		if r.StartTime == nil || !validator.IsValidTime(*r.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be a valid HH:MM time",
			})
		}
		if r.EndTime == nil || !validator.IsValidTime(*r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be a valid HH:MM time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveRequestRequest struct {
	RequestID string `json:"request_id"`
}

func (r *ApproveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectRequestRequest struct {
	RequestID string `json:"request_id"`
	Reason    string `json:"reason"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestFilter struct {
	Status *string
	Type   *string
	Page   int
	Limit  int
}

type LeaveRequestResponse struct {
	ID              string   `json:"id"`
	EmployeeID      string   `json:"employee_id"`
	LeaveType       string   `json:"leave_type"`
	Mode            string   `json:"mode"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	StartTime       *string  `json:"start_time,omitempty"`
	EndTime         *string  `json:"end_time,omitempty"`
	Days            int      `json:"days"`
	DurationLabel   string   `json:"duration_label"`
	Reason          string   `json:"reason"`
	Documents       []string `json:"documents,omitempty"`
	Status          string   `json:"status"`
	RejectionReason *string  `json:"rejection_reason,omitempty"`
	SubmittedAt     string   `json:"submitted_at"`
}

type ListLeaveRequestsResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	Requests   []LeaveRequestResponse `json:"requests"`
}

// QuotaSummaryResponse reports one type's annual balance. UsedDays is always
// recomputed from the approved subset, never stored.
type QuotaSummaryResponse struct {
	LeaveType        string `json:"leave_type"`
	TotalDaysPerYear int    `json:"total_days_per_year"`
	UsedDays         int    `json:"used_days"`
	RemainingDays    int    `json:"remaining_days"`
}
