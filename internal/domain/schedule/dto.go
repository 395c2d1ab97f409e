package schedule

import "github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"

type CreateWorkShiftRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	LateThresholdPercent *float64 `json:"late_threshold_percent,omitempty"`
	GraceMinutes         *int     `json:"grace_minutes,omitempty"`
}

func (r *CreateWorkShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM time",
		})
	}

	if !validator.IsValidTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM time",
		})
	}

	if r.LateThresholdPercent != nil && (*r.LateThresholdPercent <= 0 || *r.LateThresholdPercent > 1) {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold_percent",
			Message: "late_threshold_percent must be between 0 and 1",
		})
	}

	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	LateThresholdPercent *float64 `json:"late_threshold_percent,omitempty"`
	GraceMinutes         *int     `json:"grace_minutes,omitempty"`
}
