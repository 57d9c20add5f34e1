package repositories

import (
	"context"
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByReservationID retrieves the invoice attached to a
	// reservation; returns apperrors.ErrNotFound when none exists.
	FindInvoiceByReservationID(ctx context.Context, reservationID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices using token pagination.
	ListInvoices(ctx context.Context, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// ListInvoicesByClient retrieves all invoices for one client.
	ListInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice. A unique-constraint violation on
	// the reservation reference or the invoice number surfaces as
	// apperrors.ErrDuplicate.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoiceStatus sets the invoice status.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, now time.Time) error

	// MarkInvoicePaid stamps payment metadata and flips the status to PAID.
	MarkInvoicePaid(ctx context.Context, invoiceID string, method domain.PaymentMethod, reference string, updatedBy string, now time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
