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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxExecutor is satisfied by both *pgxpool.Pool and pgx.Tx, so insert
// helpers can run standalone or inside a surrounding transaction.
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type PgxInvoiceRepository struct {
	db *pgxpool.Pool
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{db: db}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func toModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:        d.InvoiceID,
		Number:           d.Number,
		ReservationID:    d.ReservationID,
		ClientID:         d.ClientID,
		IssuedAt:         d.IssuedAt,
		DueDate:          d.DueDate,
		PaidAt:           d.PaidAt,
		PreTaxAmount:     d.PreTaxAmount,
		TaxRate:          d.TaxRate,
		TaxAmount:        d.TaxAmount,
		TotalAmount:      d.TotalAmount,
		Status:           string(d.Status),
		PaymentMethod:    string(d.PaymentMethod),
		PaymentReference: d.PaymentReference,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:        m.InvoiceID,
		Number:           m.Number,
		ReservationID:    m.ReservationID,
		ClientID:         m.ClientID,
		IssuedAt:         m.IssuedAt,
		DueDate:          m.DueDate,
		PaidAt:           m.PaidAt,
		PreTaxAmount:     m.PreTaxAmount,
		TaxRate:          m.TaxRate,
		TaxAmount:        m.TaxAmount,
		TotalAmount:      m.TotalAmount,
		Status:           domain.InvoiceStatus(m.Status),
		PaymentMethod:    domain.PaymentMethod(m.PaymentMethod),
		PaymentReference: m.PaymentReference,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const invoiceColumns = `invoice_id, number, reservation_id, client_id, issued_at, due_date, paid_at, pre_tax_amount, tax_rate, tax_amount, total_amount, status, payment_method, payment_reference, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.Number,
		&m.ReservationID,
		&m.ClientID,
		&m.IssuedAt,
		&m.DueDate,
		&m.PaidAt,
		&m.PreTaxAmount,
		&m.TaxRate,
		&m.TaxAmount,
		&m.TotalAmount,
		&m.Status,
		&m.PaymentMethod,
		&m.PaymentReference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// insertInvoice runs the invoice INSERT against the given executor so it
// can participate in the reservation confirmation transaction. A unique
// violation on the reservation reference or number maps to ErrDuplicate.
func insertInvoice(ctx context.Context, exec pgxExecutor, invoice domain.Invoice) error {
	m := toModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := exec.Exec(ctx, query,
		m.InvoiceID,
		m.Number,
		m.ReservationID,
		m.ClientID,
		m.IssuedAt,
		m.DueDate,
		m.PaidAt,
		m.PreTaxAmount,
		m.TaxRate,
		m.TaxAmount,
		m.TotalAmount,
		m.Status,
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
			return fmt.Errorf("%w: invoice already exists for reservation %s", apperrors.ErrDuplicate, m.ReservationID)
		}
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return insertInvoice(ctx, r.db, invoice)
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.db.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	invoice := toDomainInvoice(m)
	return &invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByReservationID(ctx context.Context, reservationID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE reservation_id = $1;`
	m, err := scanInvoice(r.db.QueryRow(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice for reservation %s: %w", reservationID, err)
	}
	invoice := toDomainInvoice(m)
	return &invoice, nil
}

// ListInvoices retrieves a paginated list of invoices using token-based pagination.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` WHERE (created_at, invoice_id) < ($1, $2)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, invoice_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelInvoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		modelInvoices = append(modelInvoices, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(modelInvoices) > limit {
		last := modelInvoices[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.InvoiceID)
		nextTokenVal = &token
		modelInvoices = modelInvoices[:limit]
	}

	invoices := make([]domain.Invoice, len(modelInvoices))
	for i, m := range modelInvoices {
		invoices[i] = toDomainInvoice(m)
	}
	return invoices, nextTokenVal, nil
}

func (r *PgxInvoiceRepository) ListInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE client_id = $1 ORDER BY issued_at DESC;`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices for client %s: %w", clientID, err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, toDomainInvoice(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE invoices
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE invoice_id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, string(status), now, updatedBy, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) MarkInvoicePaid(ctx context.Context, invoiceID string, method domain.PaymentMethod, reference string, updatedBy string, now time.Time) error {
	query := `
		UPDATE invoices
		SET status = $1, paid_at = $2, payment_method = $3, payment_reference = $4,
			last_updated_at = $2, last_updated_by = $5
		WHERE invoice_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query, string(domain.InvoicePaid), now, string(method), reference, updatedBy, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to mark invoice paid: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
