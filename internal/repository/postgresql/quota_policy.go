package postgresql

import (
	"context"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/database"
)

type quotaPolicyRepositoryImpl struct {
	db *database.DB
}

func NewQuotaPolicyRepository(db *database.DB) leave.QuotaPolicyRepository {
	return &quotaPolicyRepositoryImpl{db: db}
}

// GetQuotaTable implements leave.QuotaPolicyRepository. An empty table falls
// back to the stock policy set so a fresh database still validates requests.
func (r *quotaPolicyRepositoryImpl) GetQuotaTable(ctx context.Context) (leave.QuotaTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, total_days_per_year, requires_document_after_days
		FROM leave_quota_policies
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := make(leave.QuotaTable)
	for rows.Next() {
		var policy leave.QuotaPolicy
		var leaveType string

		err := rows.Scan(&leaveType, &policy.TotalDaysPerYear, &policy.RequiresDocumentAfterDays)
		if err != nil {
			return nil, err
		}
		policy.LeaveType = leave.LeaveType(leaveType)
		table[policy.LeaveType] = policy
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(table) == 0 {
		return leave.DefaultQuotaTable(), nil
	}
	return table, nil
}
