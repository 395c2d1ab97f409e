package attendance

import (
	"context"
	"time"
)

// DayRecordRepository is the persistence boundary for attendance day records.
// The aggregation itself is pure; it only ever sees the snapshots returned
// from here.
type DayRecordRepository interface {
	Create(ctx context.Context, record DayRecord) (DayRecord, error)

	// GetByEmployeeAndRange returns the employee's records whose date falls
	// inside the inclusive [start, end] range. A zero time on either side
	// leaves that side unbounded.
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]DayRecord, error)

	List(ctx context.Context, employeeID string, filter ListDayRecordsFilter) ([]DayRecord, int64, error)
}
