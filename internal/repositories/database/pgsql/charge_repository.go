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
	"github.com/hotelio/hotel_management_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChargeRepository struct {
	db *pgxpool.Pool
}

// newPgxChargeRepository creates a new repository for accounting charge data.
func newPgxChargeRepository(db *pgxpool.Pool) portsrepo.ChargeRepositoryFacade {
	return &PgxChargeRepository{db: db}
}

// Ensure PgxChargeRepository implements portsrepo.ChargeRepositoryFacade
var _ portsrepo.ChargeRepositoryFacade = (*PgxChargeRepository)(nil)

func toModelCharge(d domain.AccountingCharge) models.AccountingCharge {
	return models.AccountingCharge{
		ChargeID:         d.ChargeID,
		Label:            d.Label,
		Type:             string(d.Type),
		Description:      d.Description,
		PreTaxAmount:     d.PreTaxAmount,
		TaxRate:          d.TaxRate,
		TaxAmount:        d.TaxAmount,
		TotalAmount:      d.TotalAmount,
		InvoiceDate:      d.InvoiceDate,
		DueDate:          d.DueDate,
		PaidAt:           d.PaidAt,
		Status:           string(d.Status),
		PaymentMethod:    string(d.PaymentMethod),
		Supplier:         d.Supplier,
		InvoiceReference: d.InvoiceReference,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainCharge(m models.AccountingCharge) domain.AccountingCharge {
	return domain.AccountingCharge{
		ChargeID:         m.ChargeID,
		Label:            m.Label,
		Type:             domain.ChargeType(m.Type),
		Description:      m.Description,
		PreTaxAmount:     m.PreTaxAmount,
		TaxRate:          m.TaxRate,
		TaxAmount:        m.TaxAmount,
		TotalAmount:      m.TotalAmount,
		InvoiceDate:      m.InvoiceDate,
		DueDate:          m.DueDate,
		PaidAt:           m.PaidAt,
		Status:           domain.ChargeStatus(m.Status),
		PaymentMethod:    domain.PaymentMethod(m.PaymentMethod),
		Supplier:         m.Supplier,
		InvoiceReference: m.InvoiceReference,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const chargeColumns = `charge_id, label, type, description, pre_tax_amount, tax_rate, tax_amount, total_amount, invoice_date, due_date, paid_at, status, payment_method, supplier, invoice_reference, created_at, created_by, last_updated_at, last_updated_by`

func scanCharge(row pgx.Row) (models.AccountingCharge, error) {
	var m models.AccountingCharge
	err := row.Scan(
		&m.ChargeID,
		&m.Label,
		&m.Type,
		&m.Description,
		&m.PreTaxAmount,
		&m.TaxRate,
		&m.TaxAmount,
		&m.TotalAmount,
		&m.InvoiceDate,
		&m.DueDate,
		&m.PaidAt,
		&m.Status,
		&m.PaymentMethod,
		&m.Supplier,
		&m.InvoiceReference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxChargeRepository) SaveCharge(ctx context.Context, charge domain.AccountingCharge) error {
	m := toModelCharge(charge)
	query := `
		INSERT INTO accounting_charges (` + chargeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.db.Exec(ctx, query,
		m.ChargeID,
		m.Label,
		m.Type,
		m.Description,
		m.PreTaxAmount,
		m.TaxRate,
		m.TaxAmount,
		m.TotalAmount,
		m.InvoiceDate,
		m.DueDate,
		m.PaidAt,
		m.Status,
		m.PaymentMethod,
		m.Supplier,
		m.InvoiceReference,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save charge: %w", err)
	}
	return nil
}

func (r *PgxChargeRepository) FindChargeByID(ctx context.Context, chargeID string) (*domain.AccountingCharge, error) {
	query := `SELECT ` + chargeColumns + ` FROM accounting_charges WHERE charge_id = $1;`
	m, err := scanCharge(r.db.QueryRow(ctx, query, chargeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find charge by ID %s: %w", chargeID, err)
	}
	charge := toDomainCharge(m)
	return &charge, nil
}

// ListCharges retrieves a paginated list of charges using token-based
// pagination, optionally filtered by type and status.
func (r *PgxChargeRepository) ListCharges(ctx context.Context, chargeType *domain.ChargeType, status *domain.ChargeStatus, limit int, nextToken *string) ([]domain.AccountingCharge, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + chargeColumns + ` FROM accounting_charges WHERE TRUE`
	args := []interface{}{}

	if chargeType != nil {
		query += fmt.Sprintf(` AND type = $%d`, len(args)+1)
		args = append(args, string(*chargeType))
	}
	if status != nil {
		query += fmt.Sprintf(` AND status = $%d`, len(args)+1)
		args = append(args, string(*status))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(` AND (created_at, charge_id) < ($%d, $%d)`, len(args)+1, len(args)+2)
		args = append(args, lastCreatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, charge_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query charges: %w", err)
	}
	defer rows.Close()

	modelCharges := []models.AccountingCharge{}
	for rows.Next() {
		m, err := scanCharge(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan charge row: %w", err)
		}
		modelCharges = append(modelCharges, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating charge rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(modelCharges) > limit {
		last := modelCharges[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.ChargeID)
		nextTokenVal = &token
		modelCharges = modelCharges[:limit]
	}

	charges := make([]domain.AccountingCharge, len(modelCharges))
	for i, m := range modelCharges {
		charges[i] = toDomainCharge(m)
	}
	return charges, nextTokenVal, nil
}

func (r *PgxChargeRepository) UpdateCharge(ctx context.Context, charge domain.AccountingCharge) error {
	m := toModelCharge(charge)
	query := `
		UPDATE accounting_charges
		SET label = $1, type = $2, description = $3, pre_tax_amount = $4, tax_rate = $5,
			tax_amount = $6, total_amount = $7, invoice_date = $8, due_date = $9, paid_at = $10,
			status = $11, payment_method = $12, supplier = $13, invoice_reference = $14,
			last_updated_at = $15, last_updated_by = $16
		WHERE charge_id = $17;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Label,
		m.Type,
		m.Description,
		m.PreTaxAmount,
		m.TaxRate,
		m.TaxAmount,
		m.TotalAmount,
		m.InvoiceDate,
		m.DueDate,
		m.PaidAt,
		m.Status,
		m.PaymentMethod,
		m.Supplier,
		m.InvoiceReference,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ChargeID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update charge query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("charge not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxChargeRepository) MarkChargePaid(ctx context.Context, chargeID string, method domain.PaymentMethod, updatedBy string, now time.Time) error {
	query := `
		UPDATE accounting_charges
		SET status = $1, paid_at = $2, payment_method = $3, last_updated_at = $2, last_updated_by = $4
		WHERE charge_id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query, string(domain.ChargePaid), now, string(method), updatedBy, chargeID)
	if err != nil {
		return fmt.Errorf("failed to mark charge paid: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("charge not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
