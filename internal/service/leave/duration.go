package leave

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"
)

// ErrInvalidTimeRange - an hourly window must end strictly after it starts.
var ErrInvalidTimeRange = errors.New("end time must be after start time")

// FullDaySpan returns the inclusive day count between two calendar dates.
// The order of the arguments does not matter; callers validate ordering
// separately so a reversed pair still yields a sensible span.
func FullDaySpan(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)

	diff := e.Sub(s)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HourlySpan is the decomposition of an hourly leave window. The hour/minute
// split is the contract; the label is presentation on top of it.
type HourlySpan struct {
	Hours        int
	Minutes      int
	TotalMinutes int
	Label        string
}

// DurationFormatter renders spans as human-readable labels. The format
// strings are swappable per locale; the defaults are the Thai portal strings.
type DurationFormatter struct {
	WholeHourFormat  string // used when the minute remainder is 0
	HourMinuteFormat string
	DayFormat        string
}

func DefaultDurationFormatter() DurationFormatter {
	return DurationFormatter{
		WholeHourFormat:  "%d ชั่วโมง",
		HourMinuteFormat: "%d ชม. %d นาที",
		DayFormat:        "%d วัน",
	}
}

// HourlySpan computes and labels the window between two "HH:MM" values.
func (f DurationFormatter) HourlySpan(startTime, endTime string) (HourlySpan, error) {
	start, ok := validator.ParseTimeOfDay(startTime)
	if !ok {
		return HourlySpan{}, fmt.Errorf("start time %q is not a valid HH:MM time", startTime)
	}
	end, ok := validator.ParseTimeOfDay(endTime)
	if !ok {
		return HourlySpan{}, fmt.Errorf("end time %q is not a valid HH:MM time", endTime)
	}

	diff := end.Minutes() - start.Minutes()
	if diff <= 0 {
		return HourlySpan{}, ErrInvalidTimeRange
	}

	span := HourlySpan{
		Hours:        diff / 60,
		Minutes:      diff % 60,
		TotalMinutes: diff,
	}
	if span.Minutes == 0 {
		span.Label = fmt.Sprintf(f.WholeHourFormat, span.Hours)
	} else {
		span.Label = fmt.Sprintf(f.HourMinuteFormat, span.Hours, span.Minutes)
	}
	return span, nil
}

// FullDayLabel renders an inclusive day span.
func (f DurationFormatter) FullDayLabel(days int) string {
	return fmt.Sprintf(f.DayFormat, days)
}
