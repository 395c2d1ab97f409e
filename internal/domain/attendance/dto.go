package attendance

import "github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"

// StatisticsFilter narrows which day records feed the statistics.
// Dates are inclusive "2006-01-02" bounds; either side may be omitted.
type StatisticsFilter struct {
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	CutoffTime *string `json:"cutoff_time,omitempty"`
}

func (f *StatisticsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if f.StartDate != nil && f.EndDate != nil {
		start, startOK := validator.IsValidDate(*f.StartDate)
		end, endOK := validator.IsValidDate(*f.EndDate)
		if startOK && endOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if f.CutoffTime != nil && !validator.IsValidTime(*f.CutoffTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "cutoff_time",
			Message: "cutoff_time must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateDayRecordRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Shifts     []Shift `json:"shifts,omitempty"`

	// Legacy flat payload, still sent by older terminals.
	CheckIn  *string     `json:"check_in,omitempty"`
	CheckOut *string     `json:"check_out,omitempty"`
	Status   ShiftStatus `json:"status,omitempty"`
}

func (r *CreateDayRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if len(r.Shifts) == 0 && r.CheckIn == nil && r.Status == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "shifts",
			Message: "at least one shift or a legacy check_in/status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ClassifyRequest asks for a lateness verdict on a single check-in.
// When WorkShiftID is set the threshold policy against that shift's schedule
// applies; otherwise the fixed cutoff applies.
type ClassifyRequest struct {
	CheckIn     string  `json:"check_in"`
	WorkShiftID *string `json:"work_shift_id,omitempty"`
}

func (r *ClassifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListDayRecordsFilter struct {
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

type StatisticsResponse struct {
	TotalWorkDays       int      `json:"total_work_days"`
	TotalShifts         int      `json:"total_shifts"`
	OnTime              int      `json:"on_time"`
	Late                int      `json:"late"`
	Absent              int      `json:"absent"`
	Leave               int      `json:"leave"`
	TotalWorkHours      float64  `json:"total_work_hours"`
	AverageCheckInTime  *string  `json:"average_check_in_time"`
	AverageShiftsPerDay float64  `json:"average_shifts_per_day"`
}

type ClassifyResponse struct {
	Status       ShiftStatus `json:"status"`
	LateMinutes  int         `json:"late_minutes"`
	AutoCheckOut bool        `json:"auto_check_out"`
}

type DayRecordResponse struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employee_id"`
	Date       string      `json:"date"`
	Shifts     []Shift     `json:"shifts"`
	DayStatus  ShiftStatus `json:"day_status"`
	WorkHours  float64     `json:"work_hours"`
}

type ListDayRecordsResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	Records    []DayRecordResponse `json:"records"`
}
