package schedule

import "time"

// WorkShift is a scheduled working window. The threshold-based lateness
// policy derives its late budget from the shift's scheduled length.
type WorkShift struct {
	ID        string
	Name      string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"

	// Per-shift overrides; nil falls back to the company defaults.
	LateThresholdPercent *float64
	GraceMinutes         *int

	CreatedAt time.Time
	UpdatedAt time.Time
}
