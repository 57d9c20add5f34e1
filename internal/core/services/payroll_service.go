package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
	"github.com/hotelio/hotel_management_app/internal/utils/money"
	"github.com/hotelio/hotel_management_app/internal/utils/numbering"
)

var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

// Statutory payroll rates, expressed as fractions of gross salary.
var (
	socialContributionRate = decimal.NewFromFloat(0.22)
	incomeTaxRate          = decimal.NewFromFloat(0.15)
	seniorityRatePerYear   = decimal.NewFromFloat(0.01)
	seniorityRateCap       = decimal.NewFromFloat(0.10)
)

// payrollService computes and persists monthly payroll slips. Seniority
// bonus is 1% of gross per full year of service, capped at 10%.
type payrollService struct {
	payslipRepo portsrepo.PayslipRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	counterRepo portsrepo.DocumentCounterRepository
}

// NewPayrollService creates a new PayrollService.
func NewPayrollService(payslipRepo portsrepo.PayslipRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, counterRepo portsrepo.DocumentCounterRepository) portssvc.PayrollSvcFacade {
	return &payrollService{
		payslipRepo: payslipRepo,
		userRepo:    userRepo,
		counterRepo: counterRepo,
	}
}

// Ensure payrollService implements the facade interface
var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// parseMonth normalizes "YYYY-MM" to the first day of that month in UTC.
func parseMonth(raw string) (time.Time, error) {
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, raw)
	}
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

// GetPayslipByID retrieves a specific payroll slip by its ID.
func (s *payrollService) GetPayslipByID(ctx context.Context, payslipID string) (*domain.PayrollSlip, error) {
	return s.payslipRepo.FindPayslipByID(ctx, payslipID)
}

// ListPayslipsByMonth retrieves all slips for a calendar month.
func (s *payrollService) ListPayslipsByMonth(ctx context.Context, month time.Time) ([]domain.PayrollSlip, error) {
	normalized := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return s.payslipRepo.ListPayslipsByMonth(ctx, normalized)
}

// ListPayslipsByEmployee retrieves the slip history of one employee.
func (s *payrollService) ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]domain.PayrollSlip, error) {
	return s.payslipRepo.ListPayslipsByEmployee(ctx, employeeID)
}

// GeneratePayslip computes and persists the slip for one employee and
// month. The (employee, month) pair is unique; regenerating returns
// ErrDuplicate.
func (s *payrollService) GeneratePayslip(ctx context.Context, req dto.GeneratePayslipRequest, requestingUserID string) (*domain.PayrollSlip, error) {
	month, err := parseMonth(req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	profile, err := s.userRepo.FindEmployeeProfile(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee profile: %w", err)
	}

	slip, err := s.computeSlip(ctx, profile, month, req, requestingUserID)
	if err != nil {
		return nil, err
	}

	if err := s.payslipRepo.SavePayslip(ctx, *slip); err != nil {
		return nil, fmt.Errorf("failed to save payslip: %w", err)
	}
	return slip, nil
}

// RunMonthlyPayroll generates slips for every active employee, skipping
// the ones already covered for the month. One employee failing does not
// abort the batch.
func (s *payrollService) RunMonthlyPayroll(ctx context.Context, req dto.RunMonthlyPayrollRequest, requestingUserID string) (*dto.MonthlyPayrollResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	month, err := parseMonth(req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	profiles, err := s.userRepo.ListActiveEmployeeProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	resp := &dto.MonthlyPayrollResponse{Month: req.Month, Generated: []dto.PayslipResponse{}}
	for i := range profiles {
		profile := &profiles[i]

		exists, err := s.payslipRepo.PayslipExists(ctx, profile.UserID, month)
		if err != nil {
			logger.Error("Failed to check existing payslip", slog.String("employee_id", profile.UserID), slog.String("error", err.Error()))
			continue
		}
		if exists {
			resp.Skipped++
			continue
		}

		slip, err := s.computeSlip(ctx, profile, month, dto.GeneratePayslipRequest{}, requestingUserID)
		if err != nil {
			logger.Error("Failed to compute payslip", slog.String("employee_id", profile.UserID), slog.String("error", err.Error()))
			continue
		}
		if err := s.payslipRepo.SavePayslip(ctx, *slip); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				// Lost a race against a concurrent generation for the
				// same employee; the slip exists either way.
				resp.Skipped++
				continue
			}
			logger.Error("Failed to save payslip", slog.String("employee_id", profile.UserID), slog.String("error", err.Error()))
			continue
		}
		resp.Generated = append(resp.Generated, dto.ToPayslipResponse(slip))
	}

	logger.Info("Monthly payroll run finished",
		slog.String("month", req.Month),
		slog.Int("generated", len(resp.Generated)),
		slog.Int("skipped", resp.Skipped),
	)
	return resp, nil
}

// GenerateInitialPayslip issues the current month's slip right after an
// employee profile is created. Best-effort: failures are logged, never
// propagated, so profile creation cannot fail on payroll.
func (s *payrollService) GenerateInitialPayslip(ctx context.Context, employeeID string, requestingUserID string) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	req := dto.GeneratePayslipRequest{
		EmployeeID: employeeID,
		Month:      now.Format("2006-01"),
	}
	if _, err := s.GeneratePayslip(ctx, req, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Info("Initial payslip already exists", slog.String("employee_id", employeeID))
			return
		}
		logger.Error("Failed to generate initial payslip", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
	}
}

// PayPayslip marks a slip as paid.
func (s *payrollService) PayPayslip(ctx context.Context, payslipID string, req dto.PayPayslipRequest, requestingUserID string) (*domain.PayrollSlip, error) {
	slip, err := s.payslipRepo.FindPayslipByID(ctx, payslipID)
	if err != nil {
		return nil, err
	}
	if slip.Status == domain.PayslipPaid {
		return nil, fmt.Errorf("%w: payslip %s is already paid", apperrors.ErrConflict, payslipID)
	}

	now := time.Now().UTC()
	if err := s.payslipRepo.MarkPayslipPaid(ctx, payslipID, req.PaymentMethod, req.PaymentReference, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to mark payslip paid: %w", err)
	}

	slip.Status = domain.PayslipPaid
	slip.PaidAt = &now
	slip.PaymentMethod = req.PaymentMethod
	slip.PaymentReference = req.PaymentReference
	slip.LastUpdatedAt = now
	slip.LastUpdatedBy = requestingUserID
	return slip, nil
}

// computeSlip derives the full slip for one employee and month. The
// seniority bonus rate is min(10%, 1% per full year of service); social
// contributions take 22% of gross and income tax 15%.
func (s *payrollService) computeSlip(ctx context.Context, profile *domain.EmployeeProfile, month time.Time, req dto.GeneratePayslipRequest, requestingUserID string) (*domain.PayrollSlip, error) {
	now := time.Now().UTC()

	seniorityRate := seniorityRatePerYear.Mul(decimal.NewFromInt(int64(profile.YearsEmployed(now))))
	if seniorityRate.GreaterThan(seniorityRateCap) {
		seniorityRate = seniorityRateCap
	}

	gross := money.Round2(profile.GrossSalary)
	slip := domain.PayrollSlip{
		PayslipID:           uuid.NewString(),
		EmployeeID:          profile.UserID,
		Month:               month,
		GrossSalary:         gross,
		SeniorityBonus:      money.Round2(gross.Mul(seniorityRate)),
		SocialContributions: money.Round2(gross.Mul(socialContributionRate)),
		IncomeTax:           money.Round2(gross.Mul(incomeTaxRate)),
		Status:              domain.PayslipToPay,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if req.PerformanceBonus != nil {
		slip.PerformanceBonus = money.Round2(*req.PerformanceBonus)
	}
	if req.OtherBonus != nil {
		slip.OtherBonus = money.Round2(*req.OtherBonus)
	}
	if req.OtherDeductions != nil {
		slip.OtherDeductions = money.Round2(*req.OtherDeductions)
	}
	slip.Recompute()

	seq, err := s.counterRepo.NextSequence(ctx, numbering.PayslipScope(month))
	if err != nil {
		return nil, fmt.Errorf("failed to allocate payslip number: %w", err)
	}
	slip.Number = numbering.FormatPayslipNumber(month, seq)

	return &slip, nil
}
