package attendance

import (
	"context"
)

// Service defines the attendance operations exposed to handlers.
type Service interface {
	// RecordDay stores a raw day record (multi-shift or legacy flat).
	RecordDay(ctx context.Context, req CreateDayRecordRequest) (DayRecordResponse, error)

	// Statistics aggregates the authenticated employee's records into totals.
	Statistics(ctx context.Context, filter StatisticsFilter) (StatisticsResponse, error)

	// ClassifyCheckIn runs the lateness policies against one check-in.
	ClassifyCheckIn(ctx context.Context, req ClassifyRequest) (ClassifyResponse, error)

	// ListDayRecords returns the employee's records with per-day status.
	ListDayRecords(ctx context.Context, filter ListDayRecordsFilter) (ListDayRecordsResponse, error)
}
