package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/employee"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/leave"
	"github.com/stafflyhq/hrops-backend-go/internal/handler/http/response"
	leaveService "github.com/stafflyhq/hrops-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	ListTypes(w http.ResponseWriter, r *http.Request)
	GetMyBalances(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	registry    *leave.PolicyRegistry
	entitlement *leaveService.EntitlementCalculator
	seniority   *leaveService.SeniorityCalculator
	employees   employee.EmployeeRepository
}

func NewLeaveHandler(
	registry *leave.PolicyRegistry,
	entitlement *leaveService.EntitlementCalculator,
	seniority *leaveService.SeniorityCalculator,
	employees employee.EmployeeRepository,
) LeaveHandler {
	return &LeaveHandlerImpl{
		registry:    registry,
		entitlement: entitlement,
		seniority:   seniority,
		employees:   employees,
	}
}

func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.registry.All())
}

type myBalancesResponse struct {
	Year           int             `json:"year"`
	SeniorityLabel string          `json:"seniority"`
	Balances       []leave.Balance `json:"balances"`
}

func (h *LeaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromContext(r)
	if employeeID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	year := time.Now().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil || parsed < 2000 || parsed > 2100 {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	emp, err := h.employees.GetByID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balances, err := h.entitlement.BalancesForYear(r.Context(), emp, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tenure := h.seniority.Tenure(emp.HireDate, time.Now())
	response.Success(w, myBalancesResponse{
		Year:           year,
		SeniorityLabel: tenure.Label(),
		Balances:       balances,
	})
}
