package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// invoiceService serves invoice queries and payment handling. Issuance
// itself lives in the reservation service, which owns the confirmation
// transaction.
type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

// Ensure invoiceService implements the facade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// GetInvoiceByID retrieves a specific invoice by its ID.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// GetInvoiceByReservation retrieves the invoice issued for a reservation.
func (s *invoiceService) GetInvoiceByReservation(ctx context.Context, reservationID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByReservationID(ctx, reservationID)
}

// ListInvoices retrieves a paginated list of invoices.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	invoices, nextToken, err := s.invoiceRepo.ListInvoices(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	resp := dto.ToListInvoicesResponse(invoices, nextToken)
	return &resp, nil
}

// ListInvoicesByClient retrieves all invoices for a client.
func (s *invoiceService) ListInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListInvoicesByClient(ctx, clientID)
}

// PayInvoice marks a pending invoice as paid.
func (s *invoiceService) PayInvoice(ctx context.Context, invoiceID string, req dto.PayInvoiceRequest, requestingUserID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoicePending {
		return nil, fmt.Errorf("%w: only pending invoices can be paid, invoice %s is %s", apperrors.ErrConflict, invoiceID, invoice.Status)
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.MarkInvoicePaid(ctx, invoiceID, req.PaymentMethod, req.PaymentReference, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to mark invoice paid: %w", err)
	}

	invoice.Status = domain.InvoicePaid
	invoice.PaidAt = &now
	invoice.PaymentMethod = req.PaymentMethod
	invoice.PaymentReference = req.PaymentReference
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = requestingUserID
	return invoice, nil
}

// RefundInvoice marks a paid invoice as refunded.
func (s *invoiceService) RefundInvoice(ctx context.Context, invoiceID string, requestingUserID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoicePaid {
		return nil, fmt.Errorf("%w: only paid invoices can be refunded, invoice %s is %s", apperrors.ErrConflict, invoiceID, invoice.Status)
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoiceRefunded, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to refund invoice: %w", err)
	}

	invoice.Status = domain.InvoiceRefunded
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = requestingUserID
	return invoice, nil
}
