package postgresql

import (
	"context"
	"time"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/leave"
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/database"
)

type leaveUsageRepositoryImpl struct {
	db *database.DB
}

func NewLeaveUsageRepository(db *database.DB) leave.UsageRepository {
	return &leaveUsageRepositoryImpl{db: db}
}

func (r *leaveUsageRepositoryImpl) ApprovedHoursForYear(ctx context.Context, employeeID string, code leave.TypeCode, year int) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours), 0)
		FROM requests
		WHERE employee_id = $1
		  AND kind = 'leave'
		  AND leave_type_code = $2
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM date) = $3
	`

	var hours float64
	err := q.QueryRow(ctx, query, employeeID, code, year).Scan(&hours)
	if err != nil {
		return 0, err
	}
	return hours, nil
}

func (r *leaveUsageRepositoryImpl) ApprovedHoursForReference(ctx context.Context, employeeID string, code leave.TypeCode, referenceDate time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours), 0)
		FROM requests
		WHERE employee_id = $1
		  AND kind = 'leave'
		  AND leave_type_code = $2
		  AND status = 'approved'
		  AND reference_date = $3
	`

	var hours float64
	err := q.QueryRow(ctx, query, employeeID, code, referenceDate).Scan(&hours)
	if err != nil {
		return 0, err
	}
	return hours, nil
}
