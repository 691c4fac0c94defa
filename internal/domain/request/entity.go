package request

import (
	"time"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/leave"
)

type Kind string

const (
	KindLeave         Kind = "leave"
	KindOvertime      Kind = "overtime"
	KindMissedCheckin Kind = "missed_checkin"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

type CheckDirection string

const (
	DirectionCheckIn  CheckDirection = "check_in"
	DirectionCheckOut CheckDirection = "check_out"
)

// LeavePayload is the leave-specific part of a request.
type LeavePayload struct {
	TypeCode leave.TypeCode `json:"type_code"`
	EndDate  time.Time      `json:"end_date"`
	Hours    float64        `json:"hours"`
	Reason   string         `json:"reason"`

	// ReferenceDate anchors event-based types (marriage registration date,
	// date of death, delivery date). Nil for annual-reset types.
	ReferenceDate *time.Time `json:"reference_date,omitempty"`
	AttachmentURL *string    `json:"attachment_url,omitempty"`
}

// OvertimePayload is the overtime-specific part of a request.
type OvertimePayload struct {
	StartTime string  `json:"start_time"` // HH:MM
	EndTime   string  `json:"end_time"`   // HH:MM
	Hours     float64 `json:"hours"`
	Reason    string  `json:"reason"`
}

// MissedCheckinPayload is the missed-checkin-specific part of a request.
type MissedCheckinPayload struct {
	Direction   CheckDirection `json:"direction"`
	ClaimedTime string         `json:"claimed_time"` // HH:MM
	Reason      string         `json:"reason"`
}

// Request is the generalized submission shared by the three kinds. Date is
// the requested day (the start date for leave ranges); Subtype narrows the
// duplicate key per kind: the leave type code for leave, the check direction
// for missed checkins, empty for overtime.
type Request struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Kind       Kind      `json:"kind"`
	Subtype    string    `json:"subtype,omitempty"`
	Date       time.Time `json:"date"`

	Leave         *LeavePayload         `json:"leave,omitempty"`
	Overtime      *OvertimePayload      `json:"overtime,omitempty"`
	MissedCheckin *MissedCheckinPayload `json:"missed_checkin,omitempty"`

	Status          Status  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// ApprovalRecord is one entry of the append-only audit trail. Multiple
// records exist per request when multi-level approval is configured; the
// request's terminal status is the decision at the final required level.
type ApprovalRecord struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id"`
	ApproverID   string    `json:"approver_id"`
	ApproverName string    `json:"approver_name"`
	Decision     Decision  `json:"decision"`
	Comment      string    `json:"comment,omitempty"`
	Level        int       `json:"level"`
	CreatedAt    time.Time `json:"created_at"`
}
