package leave

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/leave"
)

// QuotaValidator checks a candidate request against the per-type annual
// quota and document rules. Violations accumulate into the result; only an
// unknown leave type short-circuits with a single error.
type QuotaValidator struct{}

func NewQuotaValidator() *QuotaValidator {
	return &QuotaValidator{}
}

// Validate evaluates the candidate against the already-approved requests of
// the same employee. Hourly requests are expressed in hours rather than
// days, so they skip both the document rule and the day-quota balance.
func (v *QuotaValidator) Validate(candidate leave.LeaveRequest, approved []leave.LeaveRequest, table leave.QuotaTable) leave.ValidationResult {
	if !candidate.LeaveType.Valid() {
		return leave.ValidationResult{
			Errors: []string{fmt.Sprintf("%q is not a valid leave type", candidate.LeaveType)},
		}
	}

	if !candidate.LeaveType.HasQuotaPool() || candidate.Mode == leave.ModeHourly {
		return leave.ValidationResult{IsValid: true}
	}

	policy, ok := table[candidate.LeaveType]
	if !ok {
		return leave.ValidationResult{
			Errors: []string{fmt.Sprintf("no quota policy configured for leave type %q", candidate.LeaveType)},
		}
	}

	var errs []string

	if policy.RequiresDocumentAfterDays == 0 || candidate.Days >= policy.RequiresDocumentAfterDays {
		if len(candidate.Documents) == 0 {
			errs = append(errs, fmt.Sprintf(
				"a supporting document is required for %s leave of %d day(s)",
				candidate.LeaveType, candidate.Days,
			))
		}
	}

	var usedDays int
	for _, r := range approved {
		if r.LeaveType == candidate.LeaveType {
			usedDays += r.Days
		}
	}

	available := policy.TotalDaysPerYear - usedDays
	if available < 0 {
		available = 0
	}
	if candidate.Days > available {
		errs = append(errs, fmt.Sprintf(
			"insufficient %s quota: requested %d day(s) with only %d days remaining",
			candidate.LeaveType, candidate.Days, available,
		))
	}

	return leave.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
