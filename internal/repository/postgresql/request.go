package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/leave"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/request"
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/database"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

const requestColumns = `
	id, employee_id, kind, subtype, date,
	leave_type_code, end_date, hours, reason, reference_date, attachment_url,
	start_time, end_time, checkin_direction, claimed_time,
	status, rejection_reason, created_at, updated_at
`

func (r *requestRepositoryImpl) Create(ctx context.Context, req request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	var (
		leaveTypeCode *string
		endDate       *time.Time
		hours         *float64
		reason        *string
		referenceDate *time.Time
		attachmentURL *string
		startTime     *string
		endTime       *string
		direction     *string
		claimedTime   *string
	)
	switch req.Kind {
	case request.KindLeave:
		code := string(req.Leave.TypeCode)
		leaveTypeCode = &code
		endDate = &req.Leave.EndDate
		hours = &req.Leave.Hours
		reason = &req.Leave.Reason
		referenceDate = req.Leave.ReferenceDate
		attachmentURL = req.Leave.AttachmentURL
	case request.KindOvertime:
		startTime = &req.Overtime.StartTime
		endTime = &req.Overtime.EndTime
		hours = &req.Overtime.Hours
		reason = &req.Overtime.Reason
	case request.KindMissedCheckin:
		d := string(req.MissedCheckin.Direction)
		direction = &d
		claimedTime = &req.MissedCheckin.ClaimedTime
		reason = &req.MissedCheckin.Reason
	}

	query := `
		INSERT INTO requests (
			id, employee_id, kind, subtype, date,
			leave_type_code, end_date, hours, reason, reference_date, attachment_url,
			start_time, end_time, checkin_direction, claimed_time,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.Kind, req.Subtype, req.Date,
		leaveTypeCode, endDate, hours, reason, referenceDate, attachmentURL,
		startTime, endTime, direction, claimedTime,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		// The partial unique index on (employee_id, date, kind, subtype)
		// WHERE status IN ('pending','approved') closes the race between the
		// guard's snapshot read and this write.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return request.Request{}, request.ErrDuplicateRequest
		}
		return request.Request{}, err
	}

	return req, nil
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, err
	}
	return req, nil
}

func (r *requestRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string, kind *request.Kind) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM requests WHERE employee_id = $1`
	args := []interface{}{employeeID}
	if kind != nil {
		query += ` AND kind = $2`
		args = append(args, *kind)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *requestRepositoryImpl) GetMatching(ctx context.Context, employeeID string, date time.Time, kind request.Kind, subtype string) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + `
		FROM requests
		WHERE employee_id = $1 AND date = $2 AND kind = $3 AND subtype = $4
		ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID, date, kind, subtype)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *requestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.Status, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE requests
		SET status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, rejectionReason)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return request.ErrRequestNotFound
	}
	return nil
}

func scanRequest(row pgx.Row) (request.Request, error) {
	var (
		req           request.Request
		leaveTypeCode *string
		endDate       *time.Time
		hours         *float64
		reason        *string
		referenceDate *time.Time
		attachmentURL *string
		startTime     *string
		endTime       *string
		direction     *string
		claimedTime   *string
	)

	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.Kind,
		&req.Subtype,
		&req.Date,
		&leaveTypeCode,
		&endDate,
		&hours,
		&reason,
		&referenceDate,
		&attachmentURL,
		&startTime,
		&endTime,
		&direction,
		&claimedTime,
		&req.Status,
		&req.RejectionReason,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return request.Request{}, err
	}

	switch req.Kind {
	case request.KindLeave:
		payload := &request.LeavePayload{
			ReferenceDate: referenceDate,
			AttachmentURL: attachmentURL,
		}
		if leaveTypeCode != nil {
			payload.TypeCode = leave.TypeCode(*leaveTypeCode)
		}
		if endDate != nil {
			payload.EndDate = *endDate
		}
		if hours != nil {
			payload.Hours = *hours
		}
		if reason != nil {
			payload.Reason = *reason
		}
		req.Leave = payload
	case request.KindOvertime:
		payload := &request.OvertimePayload{}
		if startTime != nil {
			payload.StartTime = *startTime
		}
		if endTime != nil {
			payload.EndTime = *endTime
		}
		if hours != nil {
			payload.Hours = *hours
		}
		if reason != nil {
			payload.Reason = *reason
		}
		req.Overtime = payload
	case request.KindMissedCheckin:
		payload := &request.MissedCheckinPayload{}
		if direction != nil {
			payload.Direction = request.CheckDirection(*direction)
		}
		if claimedTime != nil {
			payload.ClaimedTime = *claimedTime
		}
		if reason != nil {
			payload.Reason = *reason
		}
		req.MissedCheckin = payload
	}

	return req, nil
}

func scanRequests(rows pgx.Rows) ([]request.Request, error) {
	var requests []request.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
