package validator

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Messages returns only the message part of each error, in order.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}
	return msgs
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// TimeOfDay is a parsed wall-clock "HH:MM" value.
// The zero value is midnight; use ParseTimeOfDay to obtain one from input.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (or "HH:MM:SS", seconds ignored) into a
// TimeOfDay. It reports ok=false for anything malformed or out of range;
// it never falls back to midnight for bad input.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, false
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return TimeOfDay{}, false
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, false
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// TimeOfDayFromMinutes converts a minute-of-day offset back into a TimeOfDay.
// Offsets outside a single day wrap around.
func TimeOfDayFromMinutes(minutes int) TimeOfDay {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
}

// Minutes returns the offset from midnight in minutes, for comparisons.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// After reports whether t is later in the day than u.
func (t TimeOfDay) After(u TimeOfDay) bool {
	return t.Minutes() > u.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// IsValidTime reports whether a string parses as "HH:MM".
func IsValidTime(s string) bool {
	_, ok := ParseTimeOfDay(s)
	return ok
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
