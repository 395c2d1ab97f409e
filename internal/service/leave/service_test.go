package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestRepo struct {
	requests map[string]leave.LeaveRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (r *fakeRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.requests[request.ID] = request
	return request, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrRequestNotFound
	}
	return request, nil
}

func (r *fakeRequestRepo) ListByEmployee(_ context.Context, employeeID string, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var result []leave.LeaveRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID {
			result = append(result, request)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeRequestRepo) ListApprovedByType(_ context.Context, employeeID string, leaveType leave.LeaveType) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID && request.LeaveType == leaveType && request.Status == leave.StatusApproved {
			result = append(result, request)
		}
	}
	return result, nil
}

func (r *fakeRequestRepo) Update(_ context.Context, request leave.LeaveRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return leave.ErrRequestNotFound
	}
	r.requests[request.ID] = request
	return nil
}

type fakeQuotaRepo struct{}

func (r *fakeQuotaRepo) GetQuotaTable(_ context.Context) (leave.QuotaTable, error) {
	return leave.DefaultQuotaTable(), nil
}

type recordingNotifier struct {
	changes []leave.StatusChange
}

func (n *recordingNotifier) NotifyStatusChanged(change leave.StatusChange, _ leave.LeaveRequest) {
	n.changes = append(n.changes, change)
}

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newTestService() (*LeaveServiceImpl, *fakeRequestRepo, *recordingNotifier) {
	repo := newFakeRequestRepo()
	notifier := &recordingNotifier{}
	svc := &LeaveServiceImpl{
		LeaveRequestRepository: repo,
		QuotaPolicyRepository:  &fakeQuotaRepo{},
		quotaValidator:         NewQuotaValidator(),
		formatter:              DefaultDurationFormatter(),
		notifier:               notifier,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
		now: func() time.Time { return testNow },
	}
	return svc, repo, notifier
}

func submitVacation(t *testing.T, svc *LeaveServiceImpl) leave.LeaveRequestResponse {
	t.Helper()
	resp, err := svc.SubmitRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		Mode:       "full_day",
		StartDate:  "2026-03-09",
		EndDate:    "2026-03-10",
		Reason:     "family trip",
		Documents:  []string{"doc-1"},
	})
	require.NoError(t, err)
	return resp
}

func TestSubmitRequestFullDay(t *testing.T) {
	svc, repo, notifier := newTestService()

	resp := submitVacation(t, svc)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 2, resp.Days)
	assert.Equal(t, "2 วัน", resp.DurationLabel)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, stored.Status)

	require.Len(t, notifier.changes, 1)
	assert.Equal(t, leave.RequestStatus(""), notifier.changes[0].OldStatus)
	assert.Equal(t, leave.StatusPending, notifier.changes[0].NewStatus)
	assert.Equal(t, resp.ID, notifier.changes[0].RequestID)
}

func TestSubmitRequestQuotaViolation(t *testing.T) {
	svc, repo, notifier := newTestService()

	// Sick leave without documents is rejected before anything persists.
	_, err := svc.SubmitRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "sick",
		Mode:       "full_day",
		StartDate:  "2026-03-09",
		EndDate:    "2026-03-09",
		Reason:     "flu",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.Messages()[0], "document")
	assert.Empty(t, repo.requests)
	assert.Empty(t, notifier.changes)
}

func TestSubmitRequestReversedDates(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SubmitRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		Mode:       "full_day",
		StartDate:  "2026-03-10",
		EndDate:    "2026-03-09",
		Reason:     "trip",
		Documents:  []string{"doc-1"},
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestSubmitRequestHourly(t *testing.T) {
	svc, _, _ := newTestService()

	start, end := "13:00", "15:30"
	resp, err := svc.SubmitRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "personal",
		Mode:       "hourly",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
		StartTime:  &start,
		EndTime:    &end,
		Reason:     "appointment",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Days, "hourly requests consume no day quota")
	assert.Equal(t, "2 ชม. 30 นาที", resp.DurationLabel)
}

func TestSubmitRequestHourlyMustBeToday(t *testing.T) {
	svc, _, _ := newTestService()

	start, end := "13:00", "15:00"
	_, err := svc.SubmitRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "personal",
		Mode:       "hourly",
		StartDate:  "2026-03-03",
		EndDate:    "2026-03-03",
		StartTime:  &start,
		EndTime:    &end,
		Reason:     "appointment",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestSubmitRequestHourlyInvalidWindow(t *testing.T) {
	svc, _, _ := newTestService()

	start, end := "15:00", "13:00"
	_, err := svc.SubmitRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "personal",
		Mode:       "hourly",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
		StartTime:  &start,
		EndTime:    &end,
		Reason:     "appointment",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestApproveRequest(t *testing.T) {
	svc, _, notifier := newTestService()
	resp := submitVacation(t, svc)

	approved, err := svc.ApproveRequest(context.Background(), resp.ID, "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	last := notifier.changes[len(notifier.changes)-1]
	assert.Equal(t, leave.StatusPending, last.OldStatus)
	assert.Equal(t, leave.StatusApproved, last.NewStatus)

	// Approved is terminal.
	_, err = svc.ApproveRequest(context.Background(), resp.ID, "mgr-1")
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestRejectRequestStoresReason(t *testing.T) {
	svc, _, notifier := newTestService()
	resp := submitVacation(t, svc)

	rejected, err := svc.RejectRequest(context.Background(), leave.RejectRequestRequest{
		RequestID: resp.ID,
		Reason:    "blackout period",
	}, "mgr-1")
	require.NoError(t, err)

	assert.Equal(t, "rejected", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "blackout period", *rejected.RejectionReason)

	last := notifier.changes[len(notifier.changes)-1]
	assert.Equal(t, leave.StatusRejected, last.NewStatus)

	_, err = svc.CancelRequest(context.Background(), resp.ID)
	assert.ErrorIs(t, err, leave.ErrNotCancellable)
}

func TestCancelRequestTwice(t *testing.T) {
	svc, _, _ := newTestService()
	resp := submitVacation(t, svc)

	cancelled, err := svc.CancelRequest(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	_, err = svc.CancelRequest(context.Background(), resp.ID)
	assert.ErrorIs(t, err, leave.ErrNotCancellable)
}

func TestGetRequestNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetRequest(context.Background(), "missing")
	assert.True(t, errors.Is(err, leave.ErrRequestNotFound))
}

func TestQuotaSummaryRecomputesFromApproved(t *testing.T) {
	svc, _, _ := newTestService()

	resp := submitVacation(t, svc)
	_, err := svc.ApproveRequest(context.Background(), resp.ID, "mgr-1")
	require.NoError(t, err)

	// A pending request must not count against the pool.
	_, err = svc.SubmitRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		Mode:       "full_day",
		StartDate:  "2026-03-16",
		EndDate:    "2026-03-16",
		Reason:     "errand",
		Documents:  []string{"doc-2"},
	})
	require.NoError(t, err)

	summaries, err := svc.QuotaSummary(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, summaries, 4)

	byType := make(map[string]leave.QuotaSummaryResponse)
	for _, s := range summaries {
		byType[s.LeaveType] = s
	}

	vacation := byType["vacation"]
	assert.Equal(t, 10, vacation.TotalDaysPerYear)
	assert.Equal(t, 2, vacation.UsedDays)
	assert.Equal(t, 8, vacation.RemainingDays)

	sick := byType["sick"]
	assert.Equal(t, 0, sick.UsedDays)
	assert.Equal(t, 30, sick.RemainingDays)
}

func TestSubmitRequestInsufficientQuota(t *testing.T) {
	svc, repo, _ := newTestService()

	// 8 vacation days already approved out of 10.
	repo.requests["seed"] = leave.LeaveRequest{
		ID:         "seed",
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeVacation,
		Mode:       leave.ModeFullDay,
		Status:     leave.StatusApproved,
		Days:       8,
	}

	_, err := svc.SubmitRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		Mode:       "full_day",
		StartDate:  "2026-03-09",
		EndDate:    "2026-03-11",
		Reason:     "trip",
		Documents:  []string{"doc-1"},
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.Messages()[0], "2 days remaining")
}
