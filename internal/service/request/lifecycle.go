package request

import (
	"context"
	"fmt"
	"time"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/employee"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/leave"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/notification"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/request"
	leaveService "github.com/stafflyhq/hrops-backend-go/internal/service/leave"
)

// ApprovalLevels configures how many approver tiers each request kind must
// clear before it becomes terminal approved. Rejection is always single
// level: any approver in the chain can terminate a request.
type ApprovalLevels struct {
	Leave         int
	Overtime      int
	MissedCheckin int
}

func (l ApprovalLevels) For(kind request.Kind) int {
	var n int
	switch kind {
	case request.KindLeave:
		n = l.Leave
	case request.KindOvertime:
		n = l.Overtime
	case request.KindMissedCheckin:
		n = l.MissedCheckin
	}
	if n < 1 {
		n = 1
	}
	return n
}

// LifecycleManager drives a request's status and the append-only approval
// audit trail, shared by leave, overtime and missed-checkin requests. It
// holds no state of its own: every operation works on a snapshot read from
// the repositories immediately before the transition.
type LifecycleManager struct {
	requests    request.RequestRepository
	approvals   request.ApprovalRecordRepository
	employees   employee.EmployeeRepository
	tx          request.Transactor
	registry    *leave.PolicyRegistry
	entitlement *leaveService.EntitlementCalculator
	guard       *DuplicateGuard
	authorizer  Authorizer
	notifier    notification.Service
	levels      ApprovalLevels
}

func NewLifecycleManager(
	requests request.RequestRepository,
	approvals request.ApprovalRecordRepository,
	employees employee.EmployeeRepository,
	tx request.Transactor,
	registry *leave.PolicyRegistry,
	entitlement *leaveService.EntitlementCalculator,
	guard *DuplicateGuard,
	authorizer Authorizer,
	notifier notification.Service,
	levels ApprovalLevels,
) *LifecycleManager {
	return &LifecycleManager{
		requests:    requests,
		approvals:   approvals,
		employees:   employees,
		tx:          tx,
		registry:    registry,
		entitlement: entitlement,
		guard:       guard,
		authorizer:  authorizer,
		notifier:    notifier,
		levels:      levels,
	}
}

// SubmitLeave validates and creates a leave request in pending status. On any
// failure nothing is persisted.
func (m *LifecycleManager) SubmitLeave(ctx context.Context, req request.SubmitLeaveRequest) (request.Request, error) {
	if err := req.Validate(); err != nil {
		return request.Request{}, err
	}

	emp, err := m.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to get employee: %w", err)
	}

	code := leave.TypeCode(req.LeaveTypeCode)
	policy, err := m.registry.PolicyFor(code)
	if err != nil {
		return request.Request{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return request.Request{}, request.ErrInvalidDateRange
	}

	if policy.RequiresAttachment && (req.AttachmentURL == nil || *req.AttachmentURL == "") {
		return request.Request{}, leave.ErrAttachmentRequired
	}

	var referenceDate *time.Time
	if policy.RequiresReferenceDate {
		if req.ReferenceDate == nil {
			return request.Request{}, leave.ErrReferenceDateRequired
		}
		ref, err := time.Parse("2006-01-02", *req.ReferenceDate)
		if err != nil {
			return request.Request{}, fmt.Errorf("failed to parse reference date: %w", err)
		}
		referenceDate = &ref

		if !leaveService.WithinPolicyWindow(policy, startDate, ref) {
			return request.Request{}, leave.ErrOutsideUsageWindow
		}
	}

	candidate := request.Request{
		EmployeeID: emp.ID,
		Kind:       request.KindLeave,
		Subtype:    string(code),
		Date:       startDate,
		Leave: &request.LeavePayload{
			TypeCode:      code,
			EndDate:       endDate,
			Hours:         req.Hours,
			Reason:        req.Reason,
			ReferenceDate: referenceDate,
			AttachmentURL: req.AttachmentURL,
		},
		Status: request.StatusPending,
	}

	// The balance check runs after the duplicate guard: a resubmission against
	// an active request must surface the conflict (with the blocking request
	// id) even when the balance is also exhausted.
	return m.submit(ctx, candidate, func(ctx context.Context) error {
		return m.entitlement.EnsureAvailable(ctx, emp, code, startDate.Year(), referenceDate, req.Hours)
	})
}

// SubmitOvertime validates and creates an overtime request in pending status.
func (m *LifecycleManager) SubmitOvertime(ctx context.Context, req request.SubmitOvertimeRequest) (request.Request, error) {
	if err := req.Validate(); err != nil {
		return request.Request{}, err
	}

	emp, err := m.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to parse date: %w", err)
	}

	candidate := request.Request{
		EmployeeID: emp.ID,
		Kind:       request.KindOvertime,
		Date:       date,
		Overtime: &request.OvertimePayload{
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Hours:     req.Hours,
			Reason:    req.Reason,
		},
		Status: request.StatusPending,
	}

	return m.submit(ctx, candidate)
}

// SubmitMissedCheckin validates and creates a missed-checkin correction
// request in pending status.
func (m *LifecycleManager) SubmitMissedCheckin(ctx context.Context, req request.SubmitMissedCheckinRequest) (request.Request, error) {
	if err := req.Validate(); err != nil {
		return request.Request{}, err
	}

	emp, err := m.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to parse date: %w", err)
	}

	candidate := request.Request{
		EmployeeID: emp.ID,
		Kind:       request.KindMissedCheckin,
		Subtype:    req.Direction,
		Date:       date,
		MissedCheckin: &request.MissedCheckinPayload{
			Direction:   request.CheckDirection(req.Direction),
			ClaimedTime: req.ClaimedTime,
			Reason:      req.Reason,
		},
		Status: request.StatusPending,
	}

	return m.submit(ctx, candidate)
}

// submit runs the duplicate guard against a fresh snapshot, then any
// post-guard checks, and persists the request. The store also carries a
// partial unique index on the duplicate key, so a concurrent submission that
// slips past the snapshot check still fails at the write.
func (m *LifecycleManager) submit(ctx context.Context, candidate request.Request, checks ...func(ctx context.Context) error) (request.Request, error) {
	existing, err := m.requests.GetMatching(ctx, candidate.EmployeeID, candidate.Date, candidate.Kind, candidate.Subtype)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to fetch existing requests: %w", err)
	}

	verdict := m.guard.CanSubmit(candidate.EmployeeID, candidate.Date, candidate.Kind, candidate.Subtype, existing)
	if !verdict.Allowed {
		return request.Request{}, &request.ConflictError{
			ConflictingRequestID: verdict.ConflictingRequestID,
			Reason:               verdict.Reason,
		}
	}

	for _, check := range checks {
		if err := check(ctx); err != nil {
			return request.Request{}, err
		}
	}

	created, err := m.requests.Create(ctx, candidate)
	if err != nil {
		return request.Request{}, err
	}
	return created, nil
}

// Approve appends an ApprovalRecord at the next level. The request flips to
// terminal approved only when the final configured level approves;
// intermediate levels append records without changing status. The requester
// is notified exactly once, on the terminal flip.
func (m *LifecycleManager) Approve(ctx context.Context, requestID, approverID, comment string) (request.Request, error) {
	req, err := m.requests.GetByID(ctx, requestID)
	if err != nil {
		return request.Request{}, err
	}

	allowed, err := m.authorizer.CanDecide(ctx, approverID, req)
	if err != nil {
		return request.Request{}, fmt.Errorf("capability check failed: %w", err)
	}
	if !allowed {
		return request.Request{}, request.ErrNotAuthorized
	}

	if req.Status != request.StatusPending {
		return request.Request{}, request.ErrRequestAlreadyProcessed
	}

	approver, err := m.employees.GetByID(ctx, approverID)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to get approver: %w", err)
	}

	records, err := m.approvals.ListByRequest(ctx, requestID)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to list approval records: %w", err)
	}
	level := len(records) + 1
	terminal := level >= m.levels.For(req.Kind)

	// Record append and status flip commit together: a failure between them
	// must not leave an approved record on a still-pending request.
	err = m.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := m.approvals.Create(ctx, request.ApprovalRecord{
			RequestID:    requestID,
			ApproverID:   approver.ID,
			ApproverName: approver.Name,
			Decision:     request.DecisionApproved,
			Comment:      comment,
			Level:        level,
		}); err != nil {
			return fmt.Errorf("failed to append approval record: %w", err)
		}

		if !terminal {
			return nil
		}
		if err := m.requests.UpdateStatus(ctx, requestID, request.StatusApproved, nil); err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}
		return nil
	})
	if err != nil {
		return request.Request{}, err
	}

	if !terminal {
		return req, nil
	}
	req.Status = request.StatusApproved

	m.notifier.Notify(notification.CreateNotificationRequest{
		RecipientID: req.EmployeeID,
		Type:        notification.TypeRequestApproved,
		Title:       approvedTitle(req.Kind),
		Message:     fmt.Sprintf("Your request for %s has been approved.", req.Date.Format("2006-01-02")),
		Data: map[string]interface{}{
			"request_id": req.ID,
			"kind":       string(req.Kind),
		},
	})

	return req, nil
}

// Reject terminates a pending request. Rejection is authoritative from any
// approver regardless of level, and the reason is mandatory.
func (m *LifecycleManager) Reject(ctx context.Context, requestID, approverID, reason string) (request.Request, error) {
	if reason == "" {
		return request.Request{}, request.ErrReasonRequired
	}

	req, err := m.requests.GetByID(ctx, requestID)
	if err != nil {
		return request.Request{}, err
	}

	allowed, err := m.authorizer.CanDecide(ctx, approverID, req)
	if err != nil {
		return request.Request{}, fmt.Errorf("capability check failed: %w", err)
	}
	if !allowed {
		return request.Request{}, request.ErrNotAuthorized
	}

	if req.Status != request.StatusPending {
		return request.Request{}, request.ErrRequestAlreadyProcessed
	}

	approver, err := m.employees.GetByID(ctx, approverID)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to get approver: %w", err)
	}

	records, err := m.approvals.ListByRequest(ctx, requestID)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to list approval records: %w", err)
	}

	err = m.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := m.approvals.Create(ctx, request.ApprovalRecord{
			RequestID:    requestID,
			ApproverID:   approver.ID,
			ApproverName: approver.Name,
			Decision:     request.DecisionRejected,
			Comment:      reason,
			Level:        len(records) + 1,
		}); err != nil {
			return fmt.Errorf("failed to append approval record: %w", err)
		}

		if err := m.requests.UpdateStatus(ctx, requestID, request.StatusRejected, &reason); err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}
		return nil
	})
	if err != nil {
		return request.Request{}, err
	}
	req.Status = request.StatusRejected
	req.RejectionReason = &reason

	m.notifier.Notify(notification.CreateNotificationRequest{
		RecipientID: req.EmployeeID,
		Type:        notification.TypeRequestRejected,
		Title:       rejectedTitle(req.Kind),
		Message:     fmt.Sprintf("Your request for %s has been rejected: %s", req.Date.Format("2006-01-02"), reason),
		Data: map[string]interface{}{
			"request_id": req.ID,
			"kind":       string(req.Kind),
		},
	})

	return req, nil
}

// Cancel is the requester's unilateral withdrawal of a still-pending request.
// No ApprovalRecord is written and no notification is sent.
func (m *LifecycleManager) Cancel(ctx context.Context, requestID, requesterID string) (request.Request, error) {
	req, err := m.requests.GetByID(ctx, requestID)
	if err != nil {
		return request.Request{}, err
	}

	if req.EmployeeID != requesterID {
		return request.Request{}, request.ErrNotRequestOwner
	}

	if req.Status != request.StatusPending {
		return request.Request{}, request.ErrRequestAlreadyProcessed
	}

	if err := m.requests.UpdateStatus(ctx, requestID, request.StatusCancelled, nil); err != nil {
		return request.Request{}, fmt.Errorf("failed to update request status: %w", err)
	}
	req.Status = request.StatusCancelled

	return req, nil
}

// GetByID returns one request.
func (m *LifecycleManager) GetByID(ctx context.Context, requestID string) (request.Request, error) {
	return m.requests.GetByID(ctx, requestID)
}

// ListByEmployee returns an employee's requests, optionally filtered by kind.
func (m *LifecycleManager) ListByEmployee(ctx context.Context, employeeID string, kind *request.Kind) ([]request.Request, error) {
	return m.requests.GetByEmployee(ctx, employeeID, kind)
}

// AuditTrail returns the approval records of a request, oldest first.
func (m *LifecycleManager) AuditTrail(ctx context.Context, requestID string) ([]request.ApprovalRecord, error) {
	if _, err := m.requests.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	return m.approvals.ListByRequest(ctx, requestID)
}

func approvedTitle(kind request.Kind) string {
	switch kind {
	case request.KindOvertime:
		return "Overtime request approved"
	case request.KindMissedCheckin:
		return "Missed check-in correction approved"
	default:
		return "Leave request approved"
	}
}

func rejectedTitle(kind request.Kind) string {
	switch kind {
	case request.KindOvertime:
		return "Overtime request rejected"
	case request.KindMissedCheckin:
		return "Missed check-in correction rejected"
	default:
		return "Leave request rejected"
	}
}
