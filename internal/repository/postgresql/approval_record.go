package postgresql

import (
	"context"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/request"
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/database"
)

type approvalRecordRepositoryImpl struct {
	db *database.DB
}

func NewApprovalRecordRepository(db *database.DB) request.ApprovalRecordRepository {
	return &approvalRecordRepositoryImpl{db: db}
}

func (r *approvalRecordRepositoryImpl) Create(ctx context.Context, record request.ApprovalRecord) (request.ApprovalRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO approval_records (
			id, request_id, approver_id, approver_name, decision, comment, level, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.RequestID, record.ApproverID, record.ApproverName,
		record.Decision, record.Comment, record.Level,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return request.ApprovalRecord{}, err
	}

	return record, nil
}

func (r *approvalRecordRepositoryImpl) ListByRequest(ctx context.Context, requestID string) ([]request.ApprovalRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, request_id, approver_id, approver_name, decision, comment, level, created_at
		FROM approval_records
		WHERE request_id = $1
		ORDER BY level ASC
	`

	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []request.ApprovalRecord
	for rows.Next() {
		var rec request.ApprovalRecord
		err := rows.Scan(
			&rec.ID,
			&rec.RequestID,
			&rec.ApproverID,
			&rec.ApproverName,
			&rec.Decision,
			&rec.Comment,
			&rec.Level,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
