package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	"github.com/hotelio/hotel_management_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayslipRepository struct {
	db *pgxpool.Pool
}

// newPgxPayslipRepository creates a new repository for payroll slip data.
func newPgxPayslipRepository(db *pgxpool.Pool) portsrepo.PayslipRepositoryFacade {
	return &PgxPayslipRepository{db: db}
}

// Ensure PgxPayslipRepository implements portsrepo.PayslipRepositoryFacade
var _ portsrepo.PayslipRepositoryFacade = (*PgxPayslipRepository)(nil)

func toModelPayslip(d domain.PayrollSlip) models.PayrollSlip {
	return models.PayrollSlip{
		PayslipID:           d.PayslipID,
		Number:              d.Number,
		EmployeeID:          d.EmployeeID,
		Month:               d.Month,
		GrossSalary:         d.GrossSalary,
		SeniorityBonus:      d.SeniorityBonus,
		PerformanceBonus:    d.PerformanceBonus,
		OtherBonus:          d.OtherBonus,
		SocialContributions: d.SocialContributions,
		IncomeTax:           d.IncomeTax,
		OtherDeductions:     d.OtherDeductions,
		TotalBonuses:        d.TotalBonuses,
		TotalDeductions:     d.TotalDeductions,
		NetSalary:           d.NetSalary,
		Status:              string(d.Status),
		PaidAt:              d.PaidAt,
		PaymentMethod:       string(d.PaymentMethod),
		PaymentReference:    d.PaymentReference,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainPayslip(m models.PayrollSlip) domain.PayrollSlip {
	return domain.PayrollSlip{
		PayslipID:           m.PayslipID,
		Number:              m.Number,
		EmployeeID:          m.EmployeeID,
		Month:               m.Month,
		GrossSalary:         m.GrossSalary,
		SeniorityBonus:      m.SeniorityBonus,
		PerformanceBonus:    m.PerformanceBonus,
		OtherBonus:          m.OtherBonus,
		SocialContributions: m.SocialContributions,
		IncomeTax:           m.IncomeTax,
		OtherDeductions:     m.OtherDeductions,
		TotalBonuses:        m.TotalBonuses,
		TotalDeductions:     m.TotalDeductions,
		NetSalary:           m.NetSalary,
		Status:              domain.PayslipStatus(m.Status),
		PaidAt:              m.PaidAt,
		PaymentMethod:       domain.PaymentMethod(m.PaymentMethod),
		PaymentReference:    m.PaymentReference,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const payslipColumns = `payslip_id, number, employee_id, month, gross_salary, seniority_bonus, performance_bonus, other_bonus, social_contributions, income_tax, other_deductions, total_bonuses, total_deductions, net_salary, status, paid_at, payment_method, payment_reference, created_at, created_by, last_updated_at, last_updated_by`

func scanPayslip(row pgx.Row) (models.PayrollSlip, error) {
	var m models.PayrollSlip
	err := row.Scan(
		&m.PayslipID,
		&m.Number,
		&m.EmployeeID,
		&m.Month,
		&m.GrossSalary,
		&m.SeniorityBonus,
		&m.PerformanceBonus,
		&m.OtherBonus,
		&m.SocialContributions,
		&m.IncomeTax,
		&m.OtherDeductions,
		&m.TotalBonuses,
		&m.TotalDeductions,
		&m.NetSalary,
		&m.Status,
		&m.PaidAt,
		&m.PaymentMethod,
		&m.PaymentReference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPayslipRepository) SavePayslip(ctx context.Context, slip domain.PayrollSlip) error {
	m := toModelPayslip(slip)
	query := `
		INSERT INTO payroll_slips (` + payslipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err := r.db.Exec(ctx, query,
		m.PayslipID,
		m.Number,
		m.EmployeeID,
		m.Month,
		m.GrossSalary,
		m.SeniorityBonus,
		m.PerformanceBonus,
		m.OtherBonus,
		m.SocialContributions,
		m.IncomeTax,
		m.OtherDeductions,
		m.TotalBonuses,
		m.TotalDeductions,
		m.NetSalary,
		m.Status,
		m.PaidAt,
		m.PaymentMethod,
		m.PaymentReference,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: payslip already exists for employee %s in %s", apperrors.ErrDuplicate, m.EmployeeID, m.Month.Format("2006-01"))
		}
		return fmt.Errorf("failed to save payslip: %w", err)
	}
	return nil
}

func (r *PgxPayslipRepository) FindPayslipByID(ctx context.Context, payslipID string) (*domain.PayrollSlip, error) {
	query := `SELECT ` + payslipColumns + ` FROM payroll_slips WHERE payslip_id = $1;`
	m, err := scanPayslip(r.db.QueryRow(ctx, query, payslipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payslip by ID %s: %w", payslipID, err)
	}
	slip := toDomainPayslip(m)
	return &slip, nil
}

func (r *PgxPayslipRepository) PayslipExists(ctx context.Context, employeeID string, month time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payroll_slips WHERE employee_id = $1 AND month = $2);`
	var exists bool
	if err := r.db.QueryRow(ctx, query, employeeID, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payslip existence: %w", err)
	}
	return exists, nil
}

func (r *PgxPayslipRepository) ListPayslipsByMonth(ctx context.Context, month time.Time) ([]domain.PayrollSlip, error) {
	query := `SELECT ` + payslipColumns + ` FROM payroll_slips WHERE month = $1 ORDER BY number;`
	return r.listPayslips(ctx, query, month)
}

func (r *PgxPayslipRepository) ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]domain.PayrollSlip, error) {
	query := `SELECT ` + payslipColumns + ` FROM payroll_slips WHERE employee_id = $1 ORDER BY month DESC;`
	return r.listPayslips(ctx, query, employeeID)
}

func (r *PgxPayslipRepository) listPayslips(ctx context.Context, query string, args ...interface{}) ([]domain.PayrollSlip, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslips: %w", err)
	}
	defer rows.Close()

	slips := []domain.PayrollSlip{}
	for rows.Next() {
		m, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip row: %w", err)
		}
		slips = append(slips, toDomainPayslip(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payslip rows: %w", rows.Err())
	}
	return slips, nil
}

func (r *PgxPayslipRepository) MarkPayslipPaid(ctx context.Context, payslipID string, method domain.PaymentMethod, reference string, updatedBy string, now time.Time) error {
	query := `
		UPDATE payroll_slips
		SET status = $1, paid_at = $2, payment_method = $3, payment_reference = $4,
			last_updated_at = $2, last_updated_by = $5
		WHERE payslip_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query, string(domain.PayslipPaid), now, string(method), reference, updatedBy, payslipID)
	if err != nil {
		return fmt.Errorf("failed to mark payslip paid: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payslip not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
