package services

import (
	"context"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ChargeReaderSvc defines read operations for accounting charges
type ChargeReaderSvc interface {
	// GetChargeByID retrieves a specific charge by its ID.
	GetChargeByID(ctx context.Context, chargeID string) (*domain.AccountingCharge, error)

	// ListCharges retrieves a paginated list of charges.
	ListCharges(ctx context.Context, params dto.ListChargesParams) (*dto.ListChargesResponse, error)
}

// ChargeWriterSvc defines write operations for accounting charges
type ChargeWriterSvc interface {
	// CreateCharge records an operating expense with VAT derived from the
	// pre-tax amount.
	CreateCharge(ctx context.Context, req dto.CreateChargeRequest, creatorUserID string) (*domain.AccountingCharge, error)

	// UpdateCharge updates a pending charge, recomputing tax amounts when
	// the base amount or rate changes.
	UpdateCharge(ctx context.Context, chargeID string, req dto.UpdateChargeRequest, requestingUserID string) (*domain.AccountingCharge, error)

	// PayCharge marks a pending charge as paid.
	PayCharge(ctx context.Context, chargeID string, req dto.PayChargeRequest, requestingUserID string) (*domain.AccountingCharge, error)
}

// ChargeRecorderSvc is the hook other services call when their events
// produce an expense. Both calls are best-effort from the caller's point
// of view; callers log and swallow errors.
type ChargeRecorderSvc interface {
	// RecordMaintenanceCharge books the actual cost of a completed
	// maintenance ticket, due on the 15th of the completion month.
	RecordMaintenanceCharge(ctx context.Context, ticket domain.MaintenanceTicket, actualCost decimal.Decimal, requestingUserID string) (*domain.AccountingCharge, error)

	// RecordInventoryCharge books a zero-amount placeholder charge for a
	// newly registered inventory item.
	RecordInventoryCharge(ctx context.Context, item domain.InventoryItem, requestingUserID string) (*domain.AccountingCharge, error)
}

// ChargeSvcFacade combines all charge-related service interfaces
type ChargeSvcFacade interface {
	ChargeReaderSvc
	ChargeWriterSvc
	ChargeRecorderSvc
}
