package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input  string
		hour   int
		minute int
		ok     bool
	}{
		{"08:00", 8, 0, true},
		{"23:59", 23, 59, true},
		{"00:00", 0, 0, true},
		{"9:05", 9, 5, true},
		{"17:30:45", 17, 30, true}, // seconds ignored
		{" 08:15 ", 8, 15, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"-1:30", 0, 0, false},
		{"ab:cd", 0, 0, false},
		{"0800", 0, 0, false},
		{"08:30:xx", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, c := range cases {
		got, ok := ParseTimeOfDay(c.input)
		if ok != c.ok {
			t.Errorf("ParseTimeOfDay(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && (got.Hour != c.hour || got.Minute != c.minute) {
			t.Errorf("ParseTimeOfDay(%q) = %02d:%02d, want %02d:%02d", c.input, got.Hour, got.Minute, c.hour, c.minute)
		}
	}
}

func TestTimeOfDayMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"08:15", 495},
		{"23:59", 1439},
	}
	for _, c := range cases {
		tod, ok := ParseTimeOfDay(c.input)
		if !ok {
			t.Fatalf("ParseTimeOfDay(%q) failed", c.input)
		}
		if got := tod.Minutes(); got != c.want {
			t.Errorf("Minutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestTimeOfDayFromMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{495, "08:15"},
		{1439, "23:59"},
		{1440, "00:00"}, // wraps
	}
	for _, c := range cases {
		if got := TimeOfDayFromMinutes(c.minutes).String(); got != c.want {
			t.Errorf("TimeOfDayFromMinutes(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsMessages(t *testing.T) {
	errs := ValidationErrors{
		{Field: "reason", Message: "reason is required"},
		{Field: "start_time", Message: "start_time must be a valid HH:MM time"},
	}
	msgs := errs.Messages()
	if len(msgs) != 2 || msgs[0] != "reason is required" {
		t.Errorf("Messages() = %v", msgs)
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
