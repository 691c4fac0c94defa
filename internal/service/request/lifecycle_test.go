package request

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/employee"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/leave"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/notification"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/request"
	leaveService "github.com/stafflyhq/hrops-backend-go/internal/service/leave"
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/validator"
)

type txMarker struct{}

// fakeTransactor marks the context it hands to fn so the repository fakes can
// record whether a write happened inside the transaction scope.
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(context.WithValue(ctx, txMarker{}, true))
}

func inTx(ctx context.Context) bool {
	marked, _ := ctx.Value(txMarker{}).(bool)
	return marked
}

type fakeRequestRepo struct {
	seq      int
	requests map[string]request.Request

	updateStatusErr  error
	updateStatusInTx bool
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]request.Request)}
}

func (f *fakeRequestRepo) Create(_ context.Context, req request.Request) (request.Request, error) {
	f.seq++
	req.ID = fmt.Sprintf("req-%d", f.seq)
	req.CreatedAt = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Minute)
	req.UpdatedAt = req.CreatedAt
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (request.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return request.Request{}, request.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepo) GetByEmployee(_ context.Context, employeeID string, kind *request.Kind) ([]request.Request, error) {
	var out []request.Request
	for _, req := range f.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		if kind != nil && req.Kind != *kind {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeRequestRepo) GetMatching(_ context.Context, employeeID string, date time.Time, kind request.Kind, subtype string) ([]request.Request, error) {
	var out []request.Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Kind == kind && req.Subtype == subtype && sameDay(req.Date, date) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status request.Status, rejectionReason *string) error {
	f.updateStatusInTx = inTx(ctx)
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	req, ok := f.requests[id]
	if !ok {
		return request.ErrRequestNotFound
	}
	req.Status = status
	req.RejectionReason = rejectionReason
	f.requests[id] = req
	return nil
}

type fakeApprovalRepo struct {
	seq        int
	records    []request.ApprovalRecord
	createInTx bool
}

func (f *fakeApprovalRepo) Create(ctx context.Context, record request.ApprovalRecord) (request.ApprovalRecord, error) {
	f.createInTx = inTx(ctx)
	f.seq++
	record.ID = fmt.Sprintf("rec-%d", f.seq)
	record.CreatedAt = time.Now()
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeApprovalRepo) ListByRequest(_ context.Context, requestID string) ([]request.ApprovalRecord, error) {
	var out []request.ApprovalRecord
	for _, r := range f.records {
		if r.RequestID == requestID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

type fakeUsageRepo struct {
	byYear map[string]float64
	byRef  map[string]float64
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{byYear: make(map[string]float64), byRef: make(map[string]float64)}
}

func (f *fakeUsageRepo) ApprovedHoursForYear(_ context.Context, employeeID string, code leave.TypeCode, year int) (float64, error) {
	return f.byYear[fmt.Sprintf("%s|%s|%d", employeeID, code, year)], nil
}

func (f *fakeUsageRepo) ApprovedHoursForReference(_ context.Context, employeeID string, code leave.TypeCode, referenceDate time.Time) (float64, error) {
	return f.byRef[fmt.Sprintf("%s|%s|%s", employeeID, code, referenceDate.Format("2006-01-02"))], nil
}

type fakeNotifier struct {
	sent []notification.CreateNotificationRequest
}

func (f *fakeNotifier) Notify(req notification.CreateNotificationRequest) {
	f.sent = append(f.sent, req)
}

func (f *fakeNotifier) Stop() {}

type lifecycleFixture struct {
	requests  *fakeRequestRepo
	approvals *fakeApprovalRepo
	employees *fakeEmployeeRepo
	usage     *fakeUsageRepo
	notifier  *fakeNotifier
	tx        *fakeTransactor
	manager   *LifecycleManager
}

// Org chart: emp-1 reports to sup-1, who reports to mgr-1. adm-1 is an admin
// outside the chain, out-1 a bystander.
func newLifecycleFixture(levels ApprovalLevels) *lifecycleFixture {
	hireDate := time.Now().AddDate(-4, 0, 0)
	sup := "sup-1"
	mgr := "mgr-1"

	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Dina Rahma", Role: employee.RoleEmployee, HireDate: &hireDate, SupervisorID: &sup},
		"sup-1": {ID: "sup-1", Name: "Bagus Putra", Role: employee.RoleSupervisor, HireDate: &hireDate, SupervisorID: &mgr},
		"mgr-1": {ID: "mgr-1", Name: "Citra Lestari", Role: employee.RoleSupervisor, HireDate: &hireDate},
		"adm-1": {ID: "adm-1", Name: "Agus Wijaya", Role: employee.RoleAdmin, HireDate: &hireDate},
		"out-1": {ID: "out-1", Name: "Eka Saputra", Role: employee.RoleEmployee, HireDate: &hireDate},
	}}

	requests := newFakeRequestRepo()
	approvals := &fakeApprovalRepo{}
	usage := newFakeUsageRepo()
	notifier := &fakeNotifier{}
	tx := &fakeTransactor{}
	registry := leave.NewDefaultPolicyRegistry()
	entitlement := leaveService.NewEntitlementCalculator(registry, usage, leaveService.NewSeniorityCalculator())

	manager := NewLifecycleManager(
		requests,
		approvals,
		employees,
		tx,
		registry,
		entitlement,
		NewDuplicateGuard(),
		NewSupervisorAuthorizer(employees),
		notifier,
		levels,
	)

	return &lifecycleFixture{
		requests:  requests,
		approvals: approvals,
		employees: employees,
		usage:     usage,
		notifier:  notifier,
		tx:        tx,
		manager:   manager,
	}
}

func submitAnnualLeave(t *testing.T, fx *lifecycleFixture) request.Request {
	t.Helper()
	created, err := fx.manager.SubmitLeave(context.Background(), request.SubmitLeaveRequest{
		EmployeeID:    "emp-1",
		LeaveTypeCode: string(leave.TypeAnnual),
		StartDate:     "2025-07-01",
		EndDate:       "2025-07-01",
		Hours:         8,
		Reason:        "family matters",
	})
	require.NoError(t, err)
	return created
}

func TestLifecycleManager_SubmitLeave(t *testing.T) {
	t.Run("creates a pending request", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})

		created := submitAnnualLeave(t, fx)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, request.StatusPending, created.Status)
		assert.Equal(t, request.KindLeave, created.Kind)
		assert.Equal(t, string(leave.TypeAnnual), created.Subtype)
		require.NotNil(t, created.Leave)
		assert.Equal(t, 8.0, created.Leave.Hours)
	})

	t.Run("validation failure persists nothing", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})

		_, err := fx.manager.SubmitLeave(context.Background(), request.SubmitLeaveRequest{
			EmployeeID:    "emp-1",
			LeaveTypeCode: string(leave.TypeAnnual),
			StartDate:     "2025-07-01",
			EndDate:       "2025-06-30",
			Hours:         -4,
			Reason:        "",
		})

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		fields := verrs.ToMap()
		assert.Contains(t, fields, "end_date")
		assert.Contains(t, fields, "hours")
		assert.Contains(t, fields, "reason")
		assert.Empty(t, fx.requests.requests)
	})

	t.Run("insufficient balance persists nothing", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		fx.usage.byYear[fmt.Sprintf("emp-1|%s|2025", leave.TypeAnnual)] = 112

		_, err := fx.manager.SubmitLeave(context.Background(), request.SubmitLeaveRequest{
			EmployeeID:    "emp-1",
			LeaveTypeCode: string(leave.TypeAnnual),
			StartDate:     "2025-07-01",
			EndDate:       "2025-07-01",
			Hours:         8,
			Reason:        "family matters",
		})

		assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
		assert.Empty(t, fx.requests.requests)
	})

	t.Run("event-anchored type requires a reference date", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})

		_, err := fx.manager.SubmitLeave(context.Background(), request.SubmitLeaveRequest{
			EmployeeID:    "emp-1",
			LeaveTypeCode: string(leave.TypeMarriage),
			StartDate:     "2025-07-01",
			EndDate:       "2025-07-03",
			Hours:         24,
			Reason:        "wedding",
		})

		assert.ErrorIs(t, err, leave.ErrReferenceDateRequired)
		assert.Empty(t, fx.requests.requests)
	})

	t.Run("request outside the usage window", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		ref := "2024-12-01"

		_, err := fx.manager.SubmitLeave(context.Background(), request.SubmitLeaveRequest{
			EmployeeID:    "emp-1",
			LeaveTypeCode: string(leave.TypeMarriage),
			StartDate:     "2025-07-01",
			EndDate:       "2025-07-03",
			Hours:         24,
			Reason:        "wedding",
			ReferenceDate: &ref,
		})

		assert.ErrorIs(t, err, leave.ErrOutsideUsageWindow)
	})

	t.Run("sick leave requires an attachment", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})

		_, err := fx.manager.SubmitLeave(context.Background(), request.SubmitLeaveRequest{
			EmployeeID:    "emp-1",
			LeaveTypeCode: string(leave.TypeSick),
			StartDate:     "2025-07-01",
			EndDate:       "2025-07-01",
			Hours:         8,
			Reason:        "flu",
		})

		assert.ErrorIs(t, err, leave.ErrAttachmentRequired)
	})

	t.Run("conflict takes precedence over a drained balance", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		first := submitAnnualLeave(t, fx)

		_, err := fx.manager.Approve(context.Background(), first.ID, "sup-1", "")
		require.NoError(t, err)

		// The approved request consumed the full allotment.
		fx.usage.byYear[fmt.Sprintf("emp-1|%s|2025", leave.TypeAnnual)] = 112

		_, err = fx.manager.SubmitLeave(context.Background(), request.SubmitLeaveRequest{
			EmployeeID:    "emp-1",
			LeaveTypeCode: string(leave.TypeAnnual),
			StartDate:     "2025-07-01",
			EndDate:       "2025-07-01",
			Hours:         8,
			Reason:        "family matters",
		})

		var conflict *request.ConflictError
		require.True(t, errors.As(err, &conflict), "expected the duplicate conflict, got %v", err)
		assert.Equal(t, first.ID, conflict.ConflictingRequestID)
		assert.NotErrorIs(t, err, leave.ErrInsufficientBalance)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})

		_, err := fx.manager.SubmitLeave(context.Background(), request.SubmitLeaveRequest{
			EmployeeID:    "emp-1",
			LeaveTypeCode: "SABBATICAL",
			StartDate:     "2025-07-01",
			EndDate:       "2025-07-01",
			Hours:         8,
			Reason:        "rest",
		})

		assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
	})
}

func TestLifecycleManager_DuplicateSubmission(t *testing.T) {
	fx := newLifecycleFixture(ApprovalLevels{})
	ctx := context.Background()

	submit := func() (request.Request, error) {
		return fx.manager.SubmitMissedCheckin(ctx, request.SubmitMissedCheckinRequest{
			EmployeeID:  "emp-1",
			Date:        "2025-04-07",
			Direction:   string(request.DirectionCheckIn),
			ClaimedTime: "08:55",
			Reason:      "badge reader was down",
		})
	}

	first, err := submit()
	require.NoError(t, err)

	_, err = submit()
	require.Error(t, err)

	var conflict *request.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, first.ID, conflict.ConflictingRequestID)
	assert.ErrorIs(t, err, request.ErrDuplicateRequest)

	// A check-out correction for the same day is a different duplicate key.
	_, err = fx.manager.SubmitMissedCheckin(ctx, request.SubmitMissedCheckinRequest{
		EmployeeID:  "emp-1",
		Date:        "2025-04-07",
		Direction:   string(request.DirectionCheckOut),
		ClaimedTime: "18:05",
		Reason:      "badge reader was down",
	})
	require.NoError(t, err)

	// Rejection unblocks the original key.
	_, err = fx.manager.Reject(ctx, first.ID, "sup-1", "attendance log shows a normal check-in")
	require.NoError(t, err)

	retry, err := submit()
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, retry.ID)
}

func TestLifecycleManager_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("single level approves terminally and notifies once", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		decided, err := fx.manager.Approve(ctx, created.ID, "sup-1", "enjoy")
		require.NoError(t, err)
		assert.Equal(t, request.StatusApproved, decided.Status)

		records, err := fx.approvals.ListByRequest(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, request.DecisionApproved, records[0].Decision)
		assert.Equal(t, 1, records[0].Level)
		assert.Equal(t, "Bagus Putra", records[0].ApproverName)

		require.Len(t, fx.notifier.sent, 1)
		assert.Equal(t, "emp-1", fx.notifier.sent[0].RecipientID)
		assert.Equal(t, notification.TypeRequestApproved, fx.notifier.sent[0].Type)
	})

	t.Run("intermediate level leaves the request pending", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{Leave: 2})
		created := submitAnnualLeave(t, fx)

		decided, err := fx.manager.Approve(ctx, created.ID, "sup-1", "fine by me")
		require.NoError(t, err)
		assert.Equal(t, request.StatusPending, decided.Status)
		assert.Empty(t, fx.notifier.sent)

		decided, err = fx.manager.Approve(ctx, created.ID, "mgr-1", "")
		require.NoError(t, err)
		assert.Equal(t, request.StatusApproved, decided.Status)

		records, err := fx.approvals.ListByRequest(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 1, records[0].Level)
		assert.Equal(t, 2, records[1].Level)
		assert.Len(t, fx.notifier.sent, 1)
	})

	t.Run("record append and status flip share one transaction", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Approve(ctx, created.ID, "sup-1", "")
		require.NoError(t, err)

		assert.Equal(t, 1, fx.tx.calls)
		assert.True(t, fx.approvals.createInTx)
		assert.True(t, fx.requests.updateStatusInTx)
	})

	t.Run("status update failure surfaces and keeps the request pending", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)
		fx.requests.updateStatusErr = errors.New("connection reset")

		_, err := fx.manager.Approve(ctx, created.ID, "sup-1", "")
		require.Error(t, err)
		assert.Empty(t, fx.notifier.sent)

		got, err := fx.manager.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, request.StatusPending, got.Status)
	})

	t.Run("terminal request cannot be approved again", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Approve(ctx, created.ID, "sup-1", "")
		require.NoError(t, err)

		_, err = fx.manager.Approve(ctx, created.ID, "mgr-1", "")
		assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)
	})

	t.Run("bystander lacks the capability", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Approve(ctx, created.ID, "out-1", "")
		assert.ErrorIs(t, err, request.ErrNotAuthorized)
	})

	t.Run("requester cannot approve their own request", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Approve(ctx, created.ID, "emp-1", "")
		assert.ErrorIs(t, err, request.ErrNotAuthorized)
	})

	t.Run("skip-level supervisor and admin both hold the capability", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{Leave: 2})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Approve(ctx, created.ID, "mgr-1", "")
		require.NoError(t, err)

		_, err = fx.manager.Approve(ctx, created.ID, "adm-1", "")
		require.NoError(t, err)

		got, err := fx.manager.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, request.StatusApproved, got.Status)
	})

	t.Run("unknown request", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})

		_, err := fx.manager.Approve(ctx, "missing", "sup-1", "")
		assert.ErrorIs(t, err, request.ErrRequestNotFound)
	})
}

func TestLifecycleManager_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("reason is mandatory", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Reject(ctx, created.ID, "sup-1", "")
		assert.ErrorIs(t, err, request.ErrReasonRequired)
	})

	t.Run("any level terminates the request", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{Leave: 3})
		created := submitAnnualLeave(t, fx)

		decided, err := fx.manager.Reject(ctx, created.ID, "sup-1", "headcount freeze that week")
		require.NoError(t, err)
		assert.Equal(t, request.StatusRejected, decided.Status)
		require.NotNil(t, decided.RejectionReason)
		assert.Equal(t, "headcount freeze that week", *decided.RejectionReason)

		records, err := fx.approvals.ListByRequest(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, request.DecisionRejected, records[0].Decision)

		require.Len(t, fx.notifier.sent, 1)
		assert.Equal(t, notification.TypeRequestRejected, fx.notifier.sent[0].Type)

		_, err = fx.manager.Approve(ctx, created.ID, "mgr-1", "")
		assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)
	})

	t.Run("rejection record and status update share one transaction", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Reject(ctx, created.ID, "sup-1", "coverage gap that week")
		require.NoError(t, err)

		assert.Equal(t, 1, fx.tx.calls)
		assert.True(t, fx.approvals.createInTx)
		assert.True(t, fx.requests.updateStatusInTx)
	})

	t.Run("bystander cannot reject", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Reject(ctx, created.ID, "out-1", "no")
		assert.ErrorIs(t, err, request.ErrNotAuthorized)
	})
}

func TestLifecycleManager_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner withdraws a pending request silently", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		cancelled, err := fx.manager.Cancel(ctx, created.ID, "emp-1")
		require.NoError(t, err)
		assert.Equal(t, request.StatusCancelled, cancelled.Status)

		records, err := fx.approvals.ListByRequest(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Empty(t, fx.notifier.sent)
	})

	t.Run("only the owner may cancel", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Cancel(ctx, created.ID, "sup-1")
		assert.ErrorIs(t, err, request.ErrNotRequestOwner)
	})

	t.Run("terminal request cannot be cancelled", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Cancel(ctx, created.ID, "emp-1")
		require.NoError(t, err)

		_, err = fx.manager.Cancel(ctx, created.ID, "emp-1")
		assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)
	})
}

func TestLifecycleManager_AuditTrail(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown request", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{})

		_, err := fx.manager.AuditTrail(ctx, "missing")
		assert.ErrorIs(t, err, request.ErrRequestNotFound)
	})

	t.Run("records every level in order", func(t *testing.T) {
		fx := newLifecycleFixture(ApprovalLevels{Leave: 2})
		created := submitAnnualLeave(t, fx)

		_, err := fx.manager.Approve(ctx, created.ID, "sup-1", "ok")
		require.NoError(t, err)
		_, err = fx.manager.Approve(ctx, created.ID, "mgr-1", "ok")
		require.NoError(t, err)

		trail, err := fx.manager.AuditTrail(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, trail, 2)
		assert.Equal(t, "sup-1", trail[0].ApproverID)
		assert.Equal(t, "mgr-1", trail[1].ApproverID)
	})
}

func TestLifecycleManager_SubmitOvertime(t *testing.T) {
	fx := newLifecycleFixture(ApprovalLevels{})

	created, err := fx.manager.SubmitOvertime(context.Background(), request.SubmitOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       "2025-04-10",
		StartTime:  "18:00",
		EndTime:    "21:00",
		Hours:      3,
		Reason:     "quarter-end close",
	})
	require.NoError(t, err)

	assert.Equal(t, request.KindOvertime, created.Kind)
	assert.Empty(t, created.Subtype)
	require.NotNil(t, created.Overtime)
	assert.Equal(t, 3.0, created.Overtime.Hours)

	_, err = fx.manager.SubmitOvertime(context.Background(), request.SubmitOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       "2025-04-10",
		StartTime:  "19:00",
		EndTime:    "20:00",
		Hours:      1,
		Reason:     "quarter-end close",
	})
	assert.ErrorIs(t, err, request.ErrDuplicateRequest)
}
