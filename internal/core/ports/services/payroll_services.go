package services

import (
	"context"
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// PayrollReaderSvc defines read operations for payroll data
type PayrollReaderSvc interface {
	// GetPayslipByID retrieves a specific payroll slip by its ID.
	GetPayslipByID(ctx context.Context, payslipID string) (*domain.PayrollSlip, error)

	// ListPayslipsByMonth retrieves all slips for a calendar month.
	ListPayslipsByMonth(ctx context.Context, month time.Time) ([]domain.PayrollSlip, error)

	// ListPayslipsByEmployee retrieves the slip history of one employee.
	ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]domain.PayrollSlip, error)
}

// PayrollWriterSvc defines write operations for payroll data
type PayrollWriterSvc interface {
	// GeneratePayslip computes and persists the slip for one employee and
	// month. A slip already covering that pair returns ErrDuplicate.
	GeneratePayslip(ctx context.Context, req dto.GeneratePayslipRequest, requestingUserID string) (*domain.PayrollSlip, error)

	// RunMonthlyPayroll generates slips for every active employee,
	// skipping the ones already covered for the month.
	RunMonthlyPayroll(ctx context.Context, req dto.RunMonthlyPayrollRequest, requestingUserID string) (*dto.MonthlyPayrollResponse, error)

	// GenerateInitialPayslip issues the current month's slip right after
	// an employee profile is created. Failures are logged and swallowed
	// so profile creation never fails on payroll.
	GenerateInitialPayslip(ctx context.Context, employeeID string, requestingUserID string)

	// PayPayslip marks a slip as paid.
	PayPayslip(ctx context.Context, payslipID string, req dto.PayPayslipRequest, requestingUserID string) (*domain.PayrollSlip, error)
}

// PayrollSvcFacade combines all payroll-related service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
}
