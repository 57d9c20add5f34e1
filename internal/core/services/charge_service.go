package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/utils/money"
)

// defaultChargeDueDays is the fallback payment term for manually
// recorded charges without an explicit due date.
const defaultChargeDueDays = 30

// chargeService records operating expenses with VAT derived from the
// pre-tax amount, including the automatic charges fed by maintenance
// completion and inventory intake.
type chargeService struct {
	chargeRepo     portsrepo.ChargeRepositoryFacade
	defaultTaxRate decimal.Decimal
}

// NewChargeService creates a new ChargeService. defaultTaxRate is the
// VAT rate in percent applied when a request does not carry one.
func NewChargeService(chargeRepo portsrepo.ChargeRepositoryFacade, defaultTaxRate decimal.Decimal) portssvc.ChargeSvcFacade {
	return &chargeService{
		chargeRepo:     chargeRepo,
		defaultTaxRate: defaultTaxRate,
	}
}

// Ensure chargeService implements the facade interface
var _ portssvc.ChargeSvcFacade = (*chargeService)(nil)

// GetChargeByID retrieves a specific charge by its ID.
func (s *chargeService) GetChargeByID(ctx context.Context, chargeID string) (*domain.AccountingCharge, error) {
	return s.chargeRepo.FindChargeByID(ctx, chargeID)
}

// ListCharges retrieves a paginated list of charges.
func (s *chargeService) ListCharges(ctx context.Context, params dto.ListChargesParams) (*dto.ListChargesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	charges, nextToken, err := s.chargeRepo.ListCharges(ctx, params.Type, params.Status, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}
	resp := dto.ToListChargesResponse(charges, nextToken)
	return &resp, nil
}

// CreateCharge records an operating expense. Tax and total are derived
// from the pre-tax amount; negative amounts are rejected.
func (s *chargeService) CreateCharge(ctx context.Context, req dto.CreateChargeRequest, creatorUserID string) (*domain.AccountingCharge, error) {
	if req.PreTaxAmount.IsNegative() {
		return nil, fmt.Errorf("%w: pre-tax amount must not be negative", apperrors.ErrValidation)
	}

	taxRate := s.defaultTaxRate
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
		}
		taxRate = *req.TaxRate
	}

	dueDate := req.InvoiceDate.AddDate(0, 0, defaultChargeDueDays)
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	now := time.Now().UTC()
	preTax := money.Round2(req.PreTaxAmount)
	taxAmount, total := money.ComputeTax(preTax, taxRate)

	charge := domain.AccountingCharge{
		ChargeID:         uuid.NewString(),
		Label:            req.Label,
		Type:             req.Type,
		Description:      req.Description,
		PreTaxAmount:     preTax,
		TaxRate:          taxRate,
		TaxAmount:        taxAmount,
		TotalAmount:      total,
		InvoiceDate:      req.InvoiceDate,
		DueDate:          dueDate,
		Status:           domain.ChargePending,
		Supplier:         req.Supplier,
		InvoiceReference: req.InvoiceReference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.chargeRepo.SaveCharge(ctx, charge); err != nil {
		return nil, fmt.Errorf("failed to save charge: %w", err)
	}
	return &charge, nil
}

// UpdateCharge updates a pending charge, recomputing the tax amounts
// when the base amount or rate changed.
func (s *chargeService) UpdateCharge(ctx context.Context, chargeID string, req dto.UpdateChargeRequest, requestingUserID string) (*domain.AccountingCharge, error) {
	charge, err := s.chargeRepo.FindChargeByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if charge.Status != domain.ChargePending {
		return nil, fmt.Errorf("%w: only pending charges can be updated", apperrors.ErrConflict)
	}

	if req.Label != nil {
		charge.Label = *req.Label
	}
	if req.Description != nil {
		charge.Description = *req.Description
	}
	if req.PreTaxAmount != nil {
		if req.PreTaxAmount.IsNegative() {
			return nil, fmt.Errorf("%w: pre-tax amount must not be negative", apperrors.ErrValidation)
		}
		charge.PreTaxAmount = money.Round2(*req.PreTaxAmount)
	}
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
		}
		charge.TaxRate = *req.TaxRate
	}
	if req.DueDate != nil {
		charge.DueDate = *req.DueDate
	}
	if req.Supplier != nil {
		charge.Supplier = *req.Supplier
	}
	if req.InvoiceReference != nil {
		charge.InvoiceReference = *req.InvoiceReference
	}

	charge.TaxAmount, charge.TotalAmount = money.ComputeTax(charge.PreTaxAmount, charge.TaxRate)
	charge.LastUpdatedAt = time.Now().UTC()
	charge.LastUpdatedBy = requestingUserID

	if err := s.chargeRepo.UpdateCharge(ctx, *charge); err != nil {
		return nil, fmt.Errorf("failed to update charge: %w", err)
	}
	return charge, nil
}

// PayCharge marks a pending charge as paid.
func (s *chargeService) PayCharge(ctx context.Context, chargeID string, req dto.PayChargeRequest, requestingUserID string) (*domain.AccountingCharge, error) {
	charge, err := s.chargeRepo.FindChargeByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if charge.Status != domain.ChargePending {
		return nil, fmt.Errorf("%w: only pending charges can be paid", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	if err := s.chargeRepo.MarkChargePaid(ctx, chargeID, req.PaymentMethod, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to mark charge paid: %w", err)
	}

	charge.Status = domain.ChargePaid
	charge.PaymentMethod = req.PaymentMethod
	charge.PaidAt = &now
	charge.LastUpdatedAt = now
	charge.LastUpdatedBy = requestingUserID
	return charge, nil
}

// RecordMaintenanceCharge books the actual cost of a completed
// maintenance ticket. The due date is the 15th of the completion month.
func (s *chargeService) RecordMaintenanceCharge(ctx context.Context, ticket domain.MaintenanceTicket, actualCost decimal.Decimal, requestingUserID string) (*domain.AccountingCharge, error) {
	if actualCost.IsNegative() {
		return nil, fmt.Errorf("%w: actual cost must not be negative", apperrors.ErrValidation)
	}

	completedAt := time.Now().UTC()
	if ticket.CompletedAt != nil {
		completedAt = *ticket.CompletedAt
	}
	dueDate := time.Date(completedAt.Year(), completedAt.Month(), 15, 0, 0, 0, 0, time.UTC)

	preTax := money.Round2(actualCost)
	taxAmount, total := money.ComputeTax(preTax, s.defaultTaxRate)

	now := time.Now().UTC()
	charge := domain.AccountingCharge{
		ChargeID:         uuid.NewString(),
		Label:            fmt.Sprintf("Maintenance: %s", ticket.Title),
		Type:             domain.ChargeMaintenance,
		Description:      ticket.Description,
		PreTaxAmount:     preTax,
		TaxRate:          s.defaultTaxRate,
		TaxAmount:        taxAmount,
		TotalAmount:      total,
		InvoiceDate:      completedAt,
		DueDate:          dueDate,
		Status:           domain.ChargePending,
		InvoiceReference: ticket.TicketID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.chargeRepo.SaveCharge(ctx, charge); err != nil {
		return nil, fmt.Errorf("failed to save maintenance charge: %w", err)
	}
	return &charge, nil
}

// RecordInventoryCharge books a zero-amount placeholder charge for a
// newly registered item. The item model does not carry a purchase price,
// so the amount is filled in later by the accountant.
func (s *chargeService) RecordInventoryCharge(ctx context.Context, item domain.InventoryItem, requestingUserID string) (*domain.AccountingCharge, error) {
	now := time.Now().UTC()
	charge := domain.AccountingCharge{
		ChargeID:         uuid.NewString(),
		Label:            fmt.Sprintf("Inventory intake: %s", item.Name),
		Type:             domain.ChargeInventory,
		Description:      fmt.Sprintf("Initial stock of %d units", item.TotalQuantity),
		PreTaxAmount:     decimal.Zero,
		TaxRate:          s.defaultTaxRate,
		TaxAmount:        decimal.Zero,
		TotalAmount:      decimal.Zero,
		InvoiceDate:      now,
		DueDate:          now.AddDate(0, 0, defaultChargeDueDays),
		Status:           domain.ChargePending,
		InvoiceReference: item.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.chargeRepo.SaveCharge(ctx, charge); err != nil {
		return nil, fmt.Errorf("failed to save inventory charge: %w", err)
	}
	return &charge, nil
}
