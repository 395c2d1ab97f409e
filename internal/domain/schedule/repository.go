package schedule

import "context"

type WorkShiftRepository interface {
	Create(ctx context.Context, shift WorkShift) (WorkShift, error)
	GetByID(ctx context.Context, id string) (WorkShift, error)
	List(ctx context.Context) ([]WorkShift, error)
}
