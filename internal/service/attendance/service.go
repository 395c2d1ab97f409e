package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-portal-go/internal/config"
	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.DayRecordRepository
	schedule.WorkShiftRepository
	cfg config.AttendanceConfig
}

func NewAttendanceService(
	dayRecordRepo attendance.DayRecordRepository,
	workShiftRepo schedule.WorkShiftRepository,
	cfg config.AttendanceConfig,
) attendance.Service {
	return &AttendanceServiceImpl{
		DayRecordRepository: dayRecordRepo,
		WorkShiftRepository: workShiftRepo,
		cfg:                 cfg,
	}
}

// employeeIDFromContext extracts the employee identity from JWT claims.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

func (a *AttendanceServiceImpl) classifierFor(cutoffOverride *string) *Classifier {
	cutoff := a.cfg.CutoffTime
	if cutoffOverride != nil {
		cutoff = *cutoffOverride
	}
	return NewClassifier(cutoff, a.cfg.LateThresholdPercent, a.cfg.GraceMinutes)
}

// Statistics implements attendance.Service.
func (a *AttendanceServiceImpl) Statistics(ctx context.Context, filter attendance.StatisticsFilter) (attendance.StatisticsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.StatisticsResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.StatisticsResponse{}, err
	}

	var rangeFilter RangeFilter
	var start, end time.Time
	if filter.StartDate != nil {
		parsed, _ := validator.IsValidDate(*filter.StartDate)
		start = parsed
		rangeFilter.Start = &parsed
	}
	if filter.EndDate != nil {
		parsed, _ := validator.IsValidDate(*filter.EndDate)
		end = parsed
		rangeFilter.End = &parsed
	}

	records, err := a.DayRecordRepository.GetByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.StatisticsResponse{}, fmt.Errorf("failed to get day records: %w", err)
	}

	aggregator := NewAggregator(a.classifierFor(filter.CutoffTime))
	stats := aggregator.Aggregate(records, rangeFilter)

	return mapStatisticsToResponse(stats), nil
}

// ClassifyCheckIn implements attendance.Service.
func (a *AttendanceServiceImpl) ClassifyCheckIn(ctx context.Context, req attendance.ClassifyRequest) (attendance.ClassifyResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClassifyResponse{}, err
	}

	classifier := a.classifierFor(nil)

	var result attendance.LatenessResult
	if req.WorkShiftID != nil {
		shift, err := a.WorkShiftRepository.GetByID(ctx, *req.WorkShiftID)
		if err != nil {
			return attendance.ClassifyResponse{}, fmt.Errorf("failed to get work shift: %w", err)
		}
		result = classifier.ClassifyThreshold(req.CheckIn, shift.StartTime, shift.EndTime, shift.LateThresholdPercent, shift.GraceMinutes)
	} else {
		result = classifier.ClassifyFixed(req.CheckIn)
	}

	return attendance.ClassifyResponse{
		Status:       result.Status,
		LateMinutes:  result.LateMinutes,
		AutoCheckOut: result.AutoCheckOut,
	}, nil
}

// RecordDay implements attendance.Service.
func (a *AttendanceServiceImpl) RecordDay(ctx context.Context, req attendance.CreateDayRecordRequest) (attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	record := attendance.DayRecord{
		EmployeeID: employeeID,
		Date:       date,
		Shifts:     req.Shifts,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     req.Status,
	}

	created, err := a.DayRecordRepository.Create(ctx, record)
	if err != nil {
		return attendance.DayRecordResponse{}, fmt.Errorf("failed to create day record: %w", err)
	}

	return a.mapDayRecordToResponse(created), nil
}

// ListDayRecords implements attendance.Service.
func (a *AttendanceServiceImpl) ListDayRecords(ctx context.Context, filter attendance.ListDayRecordsFilter) (attendance.ListDayRecordsResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListDayRecordsResponse{}, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, total, err := a.DayRecordRepository.List(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListDayRecordsResponse{}, fmt.Errorf("failed to list day records: %w", err)
	}

	responses := make([]attendance.DayRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, a.mapDayRecordToResponse(rec))
	}

	return attendance.ListDayRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

func (a *AttendanceServiceImpl) mapDayRecordToResponse(rec attendance.DayRecord) attendance.DayRecordResponse {
	aggregator := NewAggregator(a.classifierFor(nil))

	var workedMinutes int
	shifts := rec.NormalizedShifts()
	for _, s := range shifts {
		workedMinutes += s.WorkedMinutes()
	}

	return attendance.DayRecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format("2006-01-02"),
		Shifts:     shifts,
		DayStatus:  aggregator.DayStatus(rec),
		WorkHours:  round1(float64(workedMinutes) / 60.0),
	}
}

func mapStatisticsToResponse(stats attendance.Statistics) attendance.StatisticsResponse {
	var avgCheckIn *string
	if stats.AverageCheckInTime != nil {
		formatted := stats.AverageCheckInTime.String()
		avgCheckIn = &formatted
	}

	return attendance.StatisticsResponse{
		TotalWorkDays:       stats.TotalWorkDays,
		TotalShifts:         stats.TotalShifts,
		OnTime:              stats.OnTime,
		Late:                stats.Late,
		Absent:              stats.Absent,
		Leave:               stats.Leave,
		TotalWorkHours:      stats.TotalWorkHours,
		AverageCheckInTime:  avgCheckIn,
		AverageShiftsPerDay: stats.AverageShiftsPerDay,
	}
}
