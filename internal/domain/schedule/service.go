package schedule

import "context"

type Service interface {
	Create(ctx context.Context, req CreateWorkShiftRequest) (WorkShiftResponse, error)
	Get(ctx context.Context, id string) (WorkShiftResponse, error)
	List(ctx context.Context) ([]WorkShiftResponse, error)
}
