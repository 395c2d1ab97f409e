package leave

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDayRequest(leaveType leave.LeaveType, days int, documents []string) leave.LeaveRequest {
	return leave.LeaveRequest{
		LeaveType: leaveType,
		Mode:      leave.ModeFullDay,
		Days:      days,
		Documents: documents,
	}
}

func approvedDays(leaveType leave.LeaveType, days ...int) []leave.LeaveRequest {
	requests := make([]leave.LeaveRequest, 0, len(days))
	for _, d := range days {
		requests = append(requests, leave.LeaveRequest{
			LeaveType: leaveType,
			Status:    leave.StatusApproved,
			Days:      d,
		})
	}
	return requests
}

func TestValidateMissingDocument(t *testing.T) {
	v := NewQuotaValidator()
	table := leave.DefaultQuotaTable()

	// Sick leave requires documents regardless of duration.
	result := v.Validate(fullDayRequest(leave.TypeSick, 1, nil), nil, table)
	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "document")

	// Vacation requires documents only from 3 days up.
	result = v.Validate(fullDayRequest(leave.TypeVacation, 2, nil), nil, table)
	assert.True(t, result.IsValid)

	result = v.Validate(fullDayRequest(leave.TypeVacation, 3, nil), nil, table)
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors[0], "document")

	// A document satisfies the rule.
	result = v.Validate(fullDayRequest(leave.TypeSick, 1, []string{"doc-1"}), nil, table)
	assert.True(t, result.IsValid)
}

func TestValidateQuotaBalance(t *testing.T) {
	v := NewQuotaValidator()
	table := leave.DefaultQuotaTable()

	// Vacation quota 10, 8 already approved, 3 more requested.
	candidate := fullDayRequest(leave.TypeVacation, 3, []string{"doc-1"})
	result := v.Validate(candidate, approvedDays(leave.TypeVacation, 5, 3), table)

	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "2 days remaining")
}

func TestValidateAccumulatesViolations(t *testing.T) {
	v := NewQuotaValidator()
	table := leave.DefaultQuotaTable()

	// Missing document AND over quota: both must surface.
	candidate := fullDayRequest(leave.TypeVacation, 5, nil)
	result := v.Validate(candidate, approvedDays(leave.TypeVacation, 8), table)

	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 2)

	joined := strings.Join(result.Errors, "; ")
	assert.Contains(t, joined, "document")
	assert.Contains(t, joined, "remaining")
}

func TestValidateUnknownTypeShortCircuits(t *testing.T) {
	v := NewQuotaValidator()
	table := leave.DefaultQuotaTable()

	candidate := fullDayRequest(leave.LeaveType("sabbatical"), 40, nil)
	result := v.Validate(candidate, nil, table)

	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 1, "unknown type must short-circuit with a single error")
	assert.Contains(t, result.Errors[0], "not a valid leave type")
}

func TestValidateHourlyExemptions(t *testing.T) {
	v := NewQuotaValidator()
	table := leave.DefaultQuotaTable()

	// Hourly requests carry no day duration and skip the document rule,
	// even for types whose documents are otherwise always mandatory.
	candidate := leave.LeaveRequest{
		LeaveType: leave.TypeSick,
		Mode:      leave.ModeHourly,
	}
	result := v.Validate(candidate, approvedDays(leave.TypeSick, 30), table)
	assert.True(t, result.IsValid)
}

func TestValidateLateArrivalHasNoQuotaPool(t *testing.T) {
	v := NewQuotaValidator()
	table := leave.DefaultQuotaTable()

	candidate := fullDayRequest(leave.TypeLateArrival, 1, nil)
	result := v.Validate(candidate, nil, table)
	assert.True(t, result.IsValid)
}

func TestValidateUsedDaysIgnoresOtherTypes(t *testing.T) {
	v := NewQuotaValidator()
	table := leave.DefaultQuotaTable()

	// Approved sick days must not count against the vacation pool.
	approved := append(approvedDays(leave.TypeSick, 20), approvedDays(leave.TypeVacation, 2)...)
	candidate := fullDayRequest(leave.TypeVacation, 8, []string{"doc-1"})

	result := v.Validate(candidate, approved, table)
	assert.True(t, result.IsValid)
}
