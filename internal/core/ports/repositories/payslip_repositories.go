package repositories

import (
	"context"
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// PayslipReader defines read operations for payroll slip data
type PayslipReader interface {
	// FindPayslipByID retrieves a specific payroll slip by its unique identifier.
	FindPayslipByID(ctx context.Context, payslipID string) (*domain.PayrollSlip, error)

	// PayslipExists reports whether a slip already exists for the
	// (employee, month) pair. Month must be the first day of the month.
	PayslipExists(ctx context.Context, employeeID string, month time.Time) (bool, error)

	// ListPayslipsByMonth retrieves all slips for a calendar month.
	ListPayslipsByMonth(ctx context.Context, month time.Time) ([]domain.PayrollSlip, error)

	// ListPayslipsByEmployee retrieves all slips for one employee.
	ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]domain.PayrollSlip, error)
}

// PayslipWriter defines write operations for payroll slip data
type PayslipWriter interface {
	// SavePayslip persists a new payroll slip. A violation of the
	// (employee, month) uniqueness surfaces as apperrors.ErrDuplicate.
	SavePayslip(ctx context.Context, slip domain.PayrollSlip) error

	// MarkPayslipPaid stamps payment metadata and flips the status to PAID.
	MarkPayslipPaid(ctx context.Context, payslipID string, method domain.PaymentMethod, reference string, updatedBy string, now time.Time) error
}

// PayslipRepositoryFacade combines all payroll-related repository interfaces
type PayslipRepositoryFacade interface {
	PayslipReader
	PayslipWriter
}
