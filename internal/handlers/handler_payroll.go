package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/core/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
)

// payrollHandler handles HTTP requests related to payroll slips.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

// newPayrollHandler creates a new payrollHandler.
func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{
		payrollService: ps,
	}
}

// registerPayrollRoutes registers all payroll-related routes. Payroll is
// an administrator concern.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	payroll := rg.Group("/payroll", middleware.RequireRole(domain.RoleAdmin))
	{
		payroll.POST("/payslips", h.generatePayslip)
		payroll.POST("/run", h.runMonthlyPayroll)
		payroll.GET("/payslips", h.listPayslips)
		payroll.GET("/payslips/:id", h.getPayslip)
		payroll.POST("/payslips/:id/pay", h.payPayslip)
	}
}

// generatePayslip godoc
// @Summary Generate a payroll slip for one employee and month
// @Description Computes the seniority bonus and statutory deductions and persists the slip
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   payslip body dto.GeneratePayslipRequest true "Employee and month"
// @Success 201 {object} dto.PayslipResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Slip already exists for this employee and month"
// @Security BearerAuth
// @Router /payroll/payslips [post]
func (h *payrollHandler) generatePayslip(c *gin.Context) {
	var req dto.GeneratePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	slip, err := h.payrollService.GeneratePayslip(c.Request.Context(), req, requestingUserID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondServiceError(c, err, "Failed to generate payslip")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayslipResponse(slip))
}

// runMonthlyPayroll godoc
// @Summary Run payroll for every active employee
// @Description Generates the month's slips, skipping employees already covered
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   run body dto.RunMonthlyPayrollRequest true "Month to run"
// @Success 200 {object} dto.MonthlyPayrollResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Security BearerAuth
// @Router /payroll/run [post]
func (h *payrollHandler) runMonthlyPayroll(c *gin.Context) {
	var req dto.RunMonthlyPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.payrollService.RunMonthlyPayroll(c.Request.Context(), req, requestingUserID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondServiceError(c, err, "Failed to run monthly payroll")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listPayslips godoc
// @Summary List payroll slips by month or employee
// @Tags payroll
// @Produce  json
// @Param   month query string false "Calendar month (YYYY-MM)"
// @Param   employeeID query string false "Employee user ID"
// @Success 200 {array} dto.PayslipResponse
// @Failure 400 {object} map[string]string "Missing or invalid filter"
// @Security BearerAuth
// @Router /payroll/payslips [get]
func (h *payrollHandler) listPayslips(c *gin.Context) {
	monthStr := c.Query("month")
	employeeID := c.Query("employeeID")

	var (
		slips []domain.PayrollSlip
		err   error
	)
	switch {
	case monthStr != "":
		var month time.Time
		month, err = time.Parse("2006-01", monthStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
			return
		}
		slips, err = h.payrollService.ListPayslipsByMonth(c.Request.Context(), month)
	case employeeID != "":
		slips, err = h.payrollService.ListPayslipsByEmployee(c.Request.Context(), employeeID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either month or employeeID is required"})
		return
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list payslips")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPayslipsResponse(slips))
}

// getPayslip godoc
// @Summary Get a payroll slip by ID
// @Tags payroll
// @Produce  json
// @Param   id path string true "Payslip ID"
// @Success 200 {object} dto.PayslipResponse
// @Failure 404 {object} map[string]string "Payslip not found"
// @Security BearerAuth
// @Router /payroll/payslips/{id} [get]
func (h *payrollHandler) getPayslip(c *gin.Context) {
	slip, err := h.payrollService.GetPayslipByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve payslip")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayslipResponse(slip))
}

// payPayslip godoc
// @Summary Mark a payroll slip as paid
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   id path string true "Payslip ID"
// @Param   payment body dto.PayPayslipRequest true "Payment details"
// @Success 200 {object} dto.PayslipResponse
// @Failure 404 {object} map[string]string "Payslip not found"
// @Failure 409 {object} map[string]string "Payslip already paid"
// @Security BearerAuth
// @Router /payroll/payslips/{id}/pay [post]
func (h *payrollHandler) payPayslip(c *gin.Context) {
	var req dto.PayPayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	slip, err := h.payrollService.PayPayslip(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to pay payslip")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayslipResponse(slip))
}
