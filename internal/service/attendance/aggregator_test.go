package attendance

import (
	"reflect"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/attendance"
)

func strPtr(s string) *string { return &s }

func day(dateStr string) time.Time {
	d, _ := time.Parse("2006-01-02", dateStr)
	return d
}

func newTestAggregator() *Aggregator {
	return NewAggregator(NewClassifier("08:00", DefaultLateThresholdPercent, DefaultGraceMinutes))
}

func TestDayStatus(t *testing.T) {
	a := newTestAggregator()

	tests := []struct {
		name  string
		shift attendance.Shift
		want  attendance.ShiftStatus
	}{
		{"no check-in is absent", attendance.Shift{Status: attendance.StatusOnTime}, attendance.StatusAbsent},
		{"malformed check-in is absent", attendance.Shift{CheckIn: strPtr("8am")}, attendance.StatusAbsent},
		{"declared absent wins", attendance.Shift{CheckIn: strPtr("07:30"), Status: attendance.StatusAbsent}, attendance.StatusAbsent},
		{"declared leave wins", attendance.Shift{CheckIn: strPtr("07:30"), Status: attendance.StatusLeave}, attendance.StatusLeave},
		{"late and declared late", attendance.Shift{CheckIn: strPtr("08:30"), Status: attendance.StatusLate}, attendance.StatusLate},
		{"not actually late overrides declared late", attendance.Shift{CheckIn: strPtr("07:30"), Status: attendance.StatusLate}, attendance.StatusOnTime},
		{"declared on-time is trusted", attendance.Shift{CheckIn: strPtr("08:30"), Status: attendance.StatusOnTime}, attendance.StatusOnTime},
		{"unspecified recomputes late", attendance.Shift{CheckIn: strPtr("08:30")}, attendance.StatusLate},
		{"unspecified recomputes on-time", attendance.Shift{CheckIn: strPtr("07:30")}, attendance.StatusOnTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := attendance.DayRecord{Shifts: []attendance.Shift{tt.shift}}
			if got := a.DayStatus(rec); got != tt.want {
				t.Errorf("DayStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayStatusNoCutoffTrustsDeclaredLate(t *testing.T) {
	// No valid cutoff configured, so lateness cannot be recomputed.
	a := NewAggregator(NewClassifier("", DefaultLateThresholdPercent, DefaultGraceMinutes))

	rec := attendance.DayRecord{Shifts: []attendance.Shift{
		{CheckIn: strPtr("07:30"), Status: attendance.StatusLate},
	}}
	if got := a.DayStatus(rec); got != attendance.StatusLate {
		t.Errorf("DayStatus() = %q, want %q", got, attendance.StatusLate)
	}
}

func TestDayStatusLegacyFlatRecord(t *testing.T) {
	a := newTestAggregator()

	rec := attendance.DayRecord{
		CheckIn: strPtr("08:15"),
		Status:  attendance.StatusLate,
	}
	if got := a.DayStatus(rec); got != attendance.StatusLate {
		t.Errorf("DayStatus() = %q, want %q for legacy flat record", got, attendance.StatusLate)
	}
}

func TestAggregateScenarioLateWorkedHours(t *testing.T) {
	a := newTestAggregator()

	records := []attendance.DayRecord{{
		Date:   day("2026-03-02"),
		Shifts: []attendance.Shift{{CheckIn: strPtr("08:15"), CheckOut: strPtr("17:00")}},
	}}

	stats := a.Aggregate(records, RangeFilter{})
	if stats.Late != 1 {
		t.Errorf("Late = %d, want 1", stats.Late)
	}
	if stats.TotalWorkHours != 8.8 {
		// 525 minutes is 8.75 hours, rounded once to one decimal
		t.Errorf("TotalWorkHours = %v, want 8.8", stats.TotalWorkHours)
	}
}

func TestAggregateSecondShiftIrrelevantToDayStatus(t *testing.T) {
	a := newTestAggregator()

	records := []attendance.DayRecord{{
		Date: day("2026-03-02"),
		Shifts: []attendance.Shift{
			{CheckIn: strPtr("07:55"), CheckOut: strPtr("12:00")}, // on time, 245 min
			{CheckIn: strPtr("13:30"), CheckOut: strPtr("17:30")}, // late, 240 min
		},
	}}

	stats := a.Aggregate(records, RangeFilter{})
	if stats.OnTime != 1 || stats.Late != 0 {
		t.Errorf("day status counts = onTime %d late %d, want the first shift to decide", stats.OnTime, stats.Late)
	}
	if stats.TotalShifts != 2 {
		t.Errorf("TotalShifts = %d, want 2", stats.TotalShifts)
	}
	// 485 minutes over both shifts
	if stats.TotalWorkHours != 8.1 {
		t.Errorf("TotalWorkHours = %v, want 8.1", stats.TotalWorkHours)
	}
}

func TestAggregateStatusInvariant(t *testing.T) {
	a := newTestAggregator()

	records := []attendance.DayRecord{
		{Date: day("2026-03-02"), Shifts: []attendance.Shift{{CheckIn: strPtr("07:50"), CheckOut: strPtr("17:00")}}},
		{Date: day("2026-03-03"), Shifts: []attendance.Shift{{CheckIn: strPtr("08:40")}}},
		{Date: day("2026-03-04"), Shifts: []attendance.Shift{{Status: attendance.StatusLeave, CheckIn: strPtr("00:00")}}},
		{Date: day("2026-03-05"), Shifts: []attendance.Shift{{}}},
		{Date: day("2026-03-06"), CheckIn: strPtr("08:05"), Status: attendance.StatusLate},
	}

	stats := a.Aggregate(records, RangeFilter{})
	if got := stats.OnTime + stats.Late + stats.Absent + stats.Leave; got != stats.TotalWorkDays {
		t.Errorf("status counts sum to %d, want TotalWorkDays %d", got, stats.TotalWorkDays)
	}
	if stats.TotalWorkDays != 5 {
		t.Errorf("TotalWorkDays = %d, want 5", stats.TotalWorkDays)
	}
}

func TestAggregateRangeFilter(t *testing.T) {
	a := newTestAggregator()

	records := []attendance.DayRecord{
		{Date: day("2026-03-01"), Shifts: []attendance.Shift{{CheckIn: strPtr("07:50")}}},
		{Date: day("2026-03-02"), Shifts: []attendance.Shift{{CheckIn: strPtr("07:50")}}},
		{Date: day("2026-03-03"), Shifts: []attendance.Shift{{CheckIn: strPtr("07:50")}}},
	}

	start := day("2026-03-02")
	end := day("2026-03-02")
	stats := a.Aggregate(records, RangeFilter{Start: &start, End: &end})
	if stats.TotalWorkDays != 1 {
		t.Errorf("TotalWorkDays = %d, want 1 inside inclusive range", stats.TotalWorkDays)
	}

	stats = a.Aggregate(records, RangeFilter{Start: &start})
	if stats.TotalWorkDays != 2 {
		t.Errorf("TotalWorkDays = %d, want 2 with open end", stats.TotalWorkDays)
	}
}

func TestAggregateAverageCheckIn(t *testing.T) {
	a := newTestAggregator()

	records := []attendance.DayRecord{
		{Date: day("2026-03-02"), Shifts: []attendance.Shift{{CheckIn: strPtr("08:00")}}},
		{Date: day("2026-03-03"), Shifts: []attendance.Shift{{CheckIn: strPtr("09:00")}}},
	}

	stats := a.Aggregate(records, RangeFilter{})
	if stats.AverageCheckInTime == nil {
		t.Fatal("AverageCheckInTime = nil, want 08:30")
	}
	if got := stats.AverageCheckInTime.String(); got != "08:30" {
		t.Errorf("AverageCheckInTime = %q, want %q", got, "08:30")
	}
}

func TestAggregateNoValidCheckIns(t *testing.T) {
	a := newTestAggregator()

	records := []attendance.DayRecord{
		{Date: day("2026-03-02"), Shifts: []attendance.Shift{{}}},
	}

	stats := a.Aggregate(records, RangeFilter{})
	if stats.AverageCheckInTime != nil {
		t.Errorf("AverageCheckInTime = %v, want nil when no check-in parses", stats.AverageCheckInTime)
	}
	if stats.Absent != 1 {
		t.Errorf("Absent = %d, want 1", stats.Absent)
	}
}

func TestAggregateEmpty(t *testing.T) {
	a := newTestAggregator()

	stats := a.Aggregate(nil, RangeFilter{})
	if stats.TotalWorkDays != 0 || stats.AverageShiftsPerDay != 0 {
		t.Errorf("empty input must yield zero stats, got %+v", stats)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	a := newTestAggregator()

	records := []attendance.DayRecord{
		{Date: day("2026-03-02"), Shifts: []attendance.Shift{{CheckIn: strPtr("08:15"), CheckOut: strPtr("17:00")}}},
		{Date: day("2026-03-03"), CheckIn: strPtr("07:45"), CheckOut: strPtr("16:00")},
	}

	first := a.Aggregate(records, RangeFilter{})
	second := a.Aggregate(records, RangeFilter{})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Aggregate is not idempotent: %+v != %+v", first, second)
	}
}
