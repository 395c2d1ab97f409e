package leave

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestFullDaySpan(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"single day is one", "2026-03-02", "2026-03-02", 1},
		{"two consecutive days", "2026-03-02", "2026-03-03", 2},
		{"work week", "2026-03-02", "2026-03-06", 5},
		{"reversed order is insensitive", "2026-03-06", "2026-03-02", 5},
		{"across month boundary", "2026-02-27", "2026-03-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FullDaySpan(date(tt.start), date(tt.end)); got != tt.want {
				t.Errorf("FullDaySpan(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestHourlySpanDecomposition(t *testing.T) {
	f := DefaultDurationFormatter()

	tests := []struct {
		name       string
		start, end string
		hours      int
		minutes    int
		label      string
	}{
		{"whole hours", "09:00", "12:00", 3, 0, "3 ชั่วโมง"},
		{"hours and minutes", "09:00", "11:30", 2, 30, "2 ชม. 30 นาที"},
		{"under an hour", "14:00", "14:45", 0, 45, "0 ชม. 45 นาที"},
		{"single minute", "08:00", "08:01", 0, 1, "0 ชม. 1 นาที"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := f.HourlySpan(tt.start, tt.end)
			if err != nil {
				t.Fatalf("HourlySpan(%s, %s) error: %v", tt.start, tt.end, err)
			}
			if span.Hours != tt.hours || span.Minutes != tt.minutes {
				t.Errorf("decomposition = %dh %dm, want %dh %dm", span.Hours, span.Minutes, tt.hours, tt.minutes)
			}
			if span.Label != tt.label {
				t.Errorf("Label = %q, want %q", span.Label, tt.label)
			}
			// The decomposition must round-trip back to the raw minutes.
			if span.Hours*60+span.Minutes != span.TotalMinutes {
				t.Errorf("round-trip %d*60+%d != %d", span.Hours, span.Minutes, span.TotalMinutes)
			}
		})
	}
}

func TestHourlySpanInvalidRange(t *testing.T) {
	f := DefaultDurationFormatter()

	for _, pair := range [][2]string{
		{"12:00", "12:00"},
		{"14:00", "09:00"},
	} {
		_, err := f.HourlySpan(pair[0], pair[1])
		if !errors.Is(err, ErrInvalidTimeRange) {
			t.Errorf("HourlySpan(%s, %s) error = %v, want ErrInvalidTimeRange", pair[0], pair[1], err)
		}
	}

	if _, err := f.HourlySpan("bogus", "12:00"); err == nil {
		t.Error("HourlySpan with malformed start time must fail")
	}
}

func TestCustomLocaleFormatter(t *testing.T) {
	f := DurationFormatter{
		WholeHourFormat:  "%d hours",
		HourMinuteFormat: "%d h %d min",
		DayFormat:        "%d days",
	}

	span, err := f.HourlySpan("09:00", "11:00")
	if err != nil {
		t.Fatalf("HourlySpan error: %v", err)
	}
	if span.Label != "2 hours" {
		t.Errorf("Label = %q, want %q", span.Label, "2 hours")
	}

	if got := f.FullDayLabel(3); got != fmt.Sprintf("%d days", 3) {
		t.Errorf("FullDayLabel(3) = %q, want %q", got, "3 days")
	}
}
