package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"
)

// ShiftStatus classifies a single shift, and by extension a whole day.
type ShiftStatus string

const (
	StatusOnTime      ShiftStatus = "on_time"
	StatusLate        ShiftStatus = "late"
	StatusAbsent      ShiftStatus = "absent"
	StatusLeave       ShiftStatus = "leave"
	StatusUnspecified ShiftStatus = "unspecified"
)

// Shift is one check-in/check-out pair within a day. Times are the raw
// "HH:MM" strings captured at the terminal; the declared status is a hint
// from the capture side, not authoritative.
type Shift struct {
	CheckIn  *string     `json:"check_in,omitempty"`
	CheckOut *string     `json:"check_out,omitempty"`
	Status   ShiftStatus `json:"status,omitempty"`
}

// CheckInTime parses the shift's check-in. ok is false when the check-in is
// missing or malformed.
func (s Shift) CheckInTime() (validator.TimeOfDay, bool) {
	if s.CheckIn == nil {
		return validator.TimeOfDay{}, false
	}
	return validator.ParseTimeOfDay(*s.CheckIn)
}

// CheckOutTime parses the shift's check-out.
func (s Shift) CheckOutTime() (validator.TimeOfDay, bool) {
	if s.CheckOut == nil {
		return validator.TimeOfDay{}, false
	}
	return validator.ParseTimeOfDay(*s.CheckOut)
}

// WorkedMinutes returns the minutes between check-in and check-out.
// Shifts with a missing or malformed end, or a non-positive span, contribute
// nothing; they are never subtracted.
func (s Shift) WorkedMinutes() int {
	in, inOK := s.CheckInTime()
	out, outOK := s.CheckOutTime()
	if !inOK || !outOK {
		return 0
	}
	span := out.Minutes() - in.Minutes()
	if span <= 0 {
		return 0
	}
	return span
}

// DayRecord is one calendar day of attendance with one or more ordered shifts.
type DayRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Shifts     []Shift

	// Flat capture fields written by legacy single-shift terminals.
	// NormalizedShifts lifts them into a one-element sequence so the
	// aggregation only ever sees one shape.
	CheckIn  *string
	CheckOut *string
	Status   ShiftStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizedShifts returns the day's shift sequence, adapting a legacy flat
// record into a one-element sequence.
func (d DayRecord) NormalizedShifts() []Shift {
	if len(d.Shifts) > 0 {
		return d.Shifts
	}
	return []Shift{{CheckIn: d.CheckIn, CheckOut: d.CheckOut, Status: d.Status}}
}

// Statistics is the derived attendance summary for a set of day records.
// Each day contributes exactly one status, taken from its first shift, so
// OnTime+Late+Absent+Leave always equals TotalWorkDays.
type Statistics struct {
	TotalWorkDays       int
	TotalShifts         int
	OnTime              int
	Late                int
	Absent              int
	Leave               int
	TotalWorkHours      float64              // rounded to 1 decimal
	AverageCheckInTime  *validator.TimeOfDay // nil when no shift has a valid check-in
	AverageShiftsPerDay float64              // rounded to 1 decimal
}

// LatenessResult is the classifier's verdict for a single check-in.
// AutoCheckOut asks the caller to force a checkout when lateness beyond the
// threshold converted the shift to an absence.
type LatenessResult struct {
	Status       ShiftStatus
	LateMinutes  int
	AutoCheckOut bool
}
