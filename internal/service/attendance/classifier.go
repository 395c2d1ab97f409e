package attendance

import (
	"math"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"
)

const (
	DefaultCutoffTime           = "08:00"
	DefaultLateThresholdPercent = 0.10
	DefaultGraceMinutes         = 5
)

// Classifier decides on-time/late/absent for a single check-in. It supports
// a fixed cutoff (check-ins after the cutoff are late) and a threshold
// policy where the late budget scales with the scheduled shift length.
type Classifier struct {
	cutoff           *validator.TimeOfDay
	thresholdPercent float64
	graceMinutes     int
}

func NewClassifier(cutoffTime string, thresholdPercent float64, graceMinutes int) *Classifier {
	c := &Classifier{
		thresholdPercent: thresholdPercent,
		graceMinutes:     graceMinutes,
	}
	if cutoff, ok := validator.ParseTimeOfDay(cutoffTime); ok {
		c.cutoff = &cutoff
	}
	if c.thresholdPercent <= 0 {
		c.thresholdPercent = DefaultLateThresholdPercent
	}
	if c.graceMinutes <= 0 {
		c.graceMinutes = DefaultGraceMinutes
	}
	return c
}

// IsLateFixed applies the fixed-cutoff policy. known is false when no valid
// cutoff is configured, in which case lateness cannot be recomputed.
func (c *Classifier) IsLateFixed(checkIn validator.TimeOfDay) (late bool, known bool) {
	if c.cutoff == nil {
		return false, false
	}
	return checkIn.After(*c.cutoff), true
}

// ClassifyFixed classifies one check-in against the fixed cutoff.
// A malformed check-in means nobody showed up as far as the record can
// prove, so it degrades to absent rather than defaulting to midnight.
func (c *Classifier) ClassifyFixed(checkIn string) attendance.LatenessResult {
	in, ok := validator.ParseTimeOfDay(checkIn)
	if !ok {
		return attendance.LatenessResult{Status: attendance.StatusAbsent}
	}

	late, known := c.IsLateFixed(in)
	if known && late {
		return attendance.LatenessResult{
			Status:      attendance.StatusLate,
			LateMinutes: in.Minutes() - c.cutoff.Minutes(),
		}
	}
	return attendance.LatenessResult{Status: attendance.StatusOnTime}
}

// ClassifyThreshold classifies one check-in against a scheduled shift.
// The allowed late budget is ceil(scheduledMinutes * thresholdPercent),
// floored to the grace period. Lateness beyond the budget converts the
// shift to an absence and signals the caller to force a checkout.
// thresholdPercent and graceMinutes override the classifier defaults when
// non-nil (per-shift policy).
func (c *Classifier) ClassifyThreshold(checkIn, scheduleStart, scheduleEnd string, thresholdPercent *float64, graceMinutes *int) attendance.LatenessResult {
	in, ok := validator.ParseTimeOfDay(checkIn)
	if !ok {
		return attendance.LatenessResult{Status: attendance.StatusAbsent}
	}

	start, startOK := validator.ParseTimeOfDay(scheduleStart)
	end, endOK := validator.ParseTimeOfDay(scheduleEnd)
	if !startOK || !endOK {
		// No usable schedule; the fixed cutoff is the best we can do.
		return c.ClassifyFixed(checkIn)
	}

	lateMinutes := in.Minutes() - start.Minutes()
	if lateMinutes < 0 {
		lateMinutes = 0
	}

	totalMinutes := end.Minutes() - start.Minutes()
	if totalMinutes <= 0 {
		// Degenerate schedule: never auto-absent, and never divide by zero.
		if lateMinutes > 0 {
			return attendance.LatenessResult{Status: attendance.StatusLate, LateMinutes: lateMinutes}
		}
		return attendance.LatenessResult{Status: attendance.StatusOnTime}
	}

	pct := c.thresholdPercent
	if thresholdPercent != nil && *thresholdPercent > 0 {
		pct = *thresholdPercent
	}
	grace := c.graceMinutes
	if graceMinutes != nil && *graceMinutes > 0 {
		grace = *graceMinutes
	}

	budget := int(math.Ceil(float64(totalMinutes) * pct))
	allowed := budget
	if grace > allowed {
		allowed = grace
	}

	if lateMinutes > allowed {
		return attendance.LatenessResult{
			Status:       attendance.StatusAbsent,
			LateMinutes:  lateMinutes,
			AutoCheckOut: true,
		}
	}
	if lateMinutes > 0 {
		return attendance.LatenessResult{Status: attendance.StatusLate, LateMinutes: lateMinutes}
	}
	return attendance.LatenessResult{Status: attendance.StatusOnTime}
}
