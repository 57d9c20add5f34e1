package services

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice by its ID.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// GetInvoiceByReservation retrieves the invoice issued for a reservation.
	GetInvoiceByReservation(ctx context.Context, reservationID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)

	// ListInvoicesByClient retrieves all invoices for a client.
	ListInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data.
// Issuance is driven by reservation transitions; direct writes cover
// payment and refund handling only.
type InvoiceWriterSvc interface {
	// PayInvoice marks a pending invoice as paid.
	PayInvoice(ctx context.Context, invoiceID string, req dto.PayInvoiceRequest, requestingUserID string) (*domain.Invoice, error)

	// RefundInvoice marks a paid invoice as refunded.
	RefundInvoice(ctx context.Context, invoiceID string, requestingUserID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
