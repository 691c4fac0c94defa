package request

import (
	"context"
	"time"
)

// RequestRepository - interface for requests table
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	GetByEmployee(ctx context.Context, employeeID string, kind *Kind) ([]Request, error)

	// GetMatching returns every request sharing the duplicate key, newest
	// first. The guard evaluates this snapshot.
	GetMatching(ctx context.Context, employeeID string, date time.Time, kind Kind, subtype string) ([]Request, error)

	UpdateStatus(ctx context.Context, id string, status Status, rejectionReason *string) error
}

// ApprovalRecordRepository - interface for approval_records table. Records
// are append-only; there is no update or delete.
type ApprovalRecordRepository interface {
	Create(ctx context.Context, record ApprovalRecord) (ApprovalRecord, error)
	ListByRequest(ctx context.Context, requestID string) ([]ApprovalRecord, error)
}

// Transactor runs fn atomically. The context handed to fn carries the open
// transaction, so repository calls made through it share one commit. Decision
// transitions depend on it: the ApprovalRecord append and the status update
// must land together or not at all.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
