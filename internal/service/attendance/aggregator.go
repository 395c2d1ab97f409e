package attendance

import (
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"
)

// Aggregator folds day records into Statistics. It holds no mutable state;
// Aggregate over the same snapshot always yields the same result.
type Aggregator struct {
	classifier *Classifier
}

func NewAggregator(classifier *Classifier) *Aggregator {
	return &Aggregator{classifier: classifier}
}

// RangeFilter is an inclusive calendar-date window. A nil side is unbounded.
type RangeFilter struct {
	Start *time.Time
	End   *time.Time
}

func (f RangeFilter) contains(date time.Time) bool {
	day := truncateToDay(date)
	if f.Start != nil && day.Before(truncateToDay(*f.Start)) {
		return false
	}
	if f.End != nil && day.After(truncateToDay(*f.End)) {
		return false
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayStatus derives the day's single status from its first shift.
//
// Priority, in order: a missing/unparsable check-in or a declared absence is
// absent; a declared leave is leave; otherwise the declared status is
// reconciled with the lateness recomputed from the fixed cutoff. The
// declared status is a hint, recomputation wins where both are available.
func (a *Aggregator) DayStatus(rec attendance.DayRecord) attendance.ShiftStatus {
	first := rec.NormalizedShifts()[0]

	in, inOK := first.CheckInTime()
	if !inOK || first.Status == attendance.StatusAbsent {
		return attendance.StatusAbsent
	}
	if first.Status == attendance.StatusLeave {
		return attendance.StatusLeave
	}

	late, known := a.classifier.IsLateFixed(in)
	declared := first.Status
	switch {
	case known && late && declared == attendance.StatusLate:
		return attendance.StatusLate
	case (known && !late) || declared == attendance.StatusOnTime:
		return attendance.StatusOnTime
	case declared == attendance.StatusLate:
		// No cutoff to recompute against; trust the declared status.
		return attendance.StatusLate
	default:
		if known && late {
			return attendance.StatusLate
		}
		return attendance.StatusOnTime
	}
}

// Aggregate computes Statistics over the records inside the filter window.
//
// The day status counts come from first shifts only, but every shift in a
// day contributes worked minutes (when both ends parse and the span is
// positive) and every valid check-in feeds the average check-in time.
// Work hours are converted and rounded once at the end, not per record.
func (a *Aggregator) Aggregate(records []attendance.DayRecord, filter RangeFilter) attendance.Statistics {
	var stats attendance.Statistics
	var workedMinutes int
	var checkInSum, checkInCount int

	for _, rec := range records {
		if !filter.contains(rec.Date) {
			continue
		}

		shifts := rec.NormalizedShifts()
		stats.TotalWorkDays++
		stats.TotalShifts += len(shifts)

		switch a.DayStatus(rec) {
		case attendance.StatusLate:
			stats.Late++
		case attendance.StatusAbsent:
			stats.Absent++
		case attendance.StatusLeave:
			stats.Leave++
		default:
			stats.OnTime++
		}

		for _, s := range shifts {
			workedMinutes += s.WorkedMinutes()
			if in, ok := s.CheckInTime(); ok {
				checkInSum += in.Minutes()
				checkInCount++
			}
		}
	}

	stats.TotalWorkHours = round1(float64(workedMinutes) / 60.0)

	if checkInCount > 0 {
		mean := int(math.Round(float64(checkInSum) / float64(checkInCount)))
		avg := validator.TimeOfDayFromMinutes(mean)
		stats.AverageCheckInTime = &avg
	}

	if stats.TotalWorkDays > 0 {
		stats.AverageShiftsPerDay = round1(float64(stats.TotalShifts) / float64(stats.TotalWorkDays))
	}

	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
