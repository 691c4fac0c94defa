package request

import (
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID    string  `json:"-"`
	LeaveTypeCode string  `json:"leave_type_code"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Hours         float64 `json:"hours"`
	Reason        string  `json:"reason"`
	ReferenceDate *string `json:"reference_date,omitempty"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_code",
			Message: "leave_type_code is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && !validator.IsValidDateRange(start, end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !validator.IsPositiveHours(r.Hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be a positive amount in half-hour steps",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.ReferenceDate != nil {
		if _, ok := validator.IsValidDate(*r.ReferenceDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "reference_date",
				Message: "reference_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitOvertimeRequest struct {
	EmployeeID string  `json:"-"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Hours      float64 `json:"hours"`
	Reason     string  `json:"reason"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	start, startOK := validator.IsValidClockTime(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time (HH:MM)",
		})
	}
	end, endOK := validator.IsValidClockTime(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time (HH:MM)",
		})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if !validator.IsPositiveHours(r.Hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be a positive amount in half-hour steps",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitMissedCheckinRequest struct {
	EmployeeID  string `json:"-"`
	Date        string `json:"date"`
	Direction   string `json:"direction"`
	ClaimedTime string `json:"claimed_time"`
	Reason      string `json:"reason"`
}

func (r *SubmitMissedCheckinRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	if r.Direction != string(DirectionCheckIn) && r.Direction != string(DirectionCheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "direction",
			Message: "direction must be check_in or check_out",
		})
	}

	if _, ok := validator.IsValidClockTime(r.ClaimedTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "claimed_time",
			Message: "claimed_time must be a valid time (HH:MM)",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveRequestRequest struct {
	RequestID string `json:"-"`
	Comment   string `json:"comment,omitempty"`
}

func (r *ApproveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequestRequest struct {
	RequestID string `json:"-"`
	Reason    string `json:"reason"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
