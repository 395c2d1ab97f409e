package schedule

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.WorkShiftRepository
}

func NewScheduleService(workShiftRepo schedule.WorkShiftRepository) schedule.Service {
	return &ScheduleServiceImpl{
		WorkShiftRepository: workShiftRepo,
	}
}

// Create implements schedule.Service.
func (s *ScheduleServiceImpl) Create(ctx context.Context, req schedule.CreateWorkShiftRequest) (schedule.WorkShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkShiftResponse{}, err
	}

	shift := schedule.WorkShift{
		Name:                 req.Name,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		LateThresholdPercent: req.LateThresholdPercent,
		GraceMinutes:         req.GraceMinutes,
	}

	created, err := s.WorkShiftRepository.Create(ctx, shift)
	if err != nil {
		return schedule.WorkShiftResponse{}, fmt.Errorf("failed to create work shift: %w", err)
	}

	return mapShiftToResponse(created), nil
}

// Get implements schedule.Service.
func (s *ScheduleServiceImpl) Get(ctx context.Context, id string) (schedule.WorkShiftResponse, error) {
	shift, err := s.WorkShiftRepository.GetByID(ctx, id)
	if err != nil {
		return schedule.WorkShiftResponse{}, err
	}
	return mapShiftToResponse(shift), nil
}

// List implements schedule.Service.
func (s *ScheduleServiceImpl) List(ctx context.Context) ([]schedule.WorkShiftResponse, error) {
	shifts, err := s.WorkShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work shifts: %w", err)
	}

	responses := make([]schedule.WorkShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, mapShiftToResponse(shift))
	}
	return responses, nil
}

func mapShiftToResponse(shift schedule.WorkShift) schedule.WorkShiftResponse {
	return schedule.WorkShiftResponse{
		ID:                   shift.ID,
		Name:                 shift.Name,
		StartTime:            shift.StartTime,
		EndTime:              shift.EndTime,
		LateThresholdPercent: shift.LateThresholdPercent,
		GraceMinutes:         shift.GraceMinutes,
	}
}
