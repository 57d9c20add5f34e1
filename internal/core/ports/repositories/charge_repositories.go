package repositories

import (
	"context"
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// ChargeReader defines read operations for accounting charge data
type ChargeReader interface {
	// FindChargeByID retrieves a specific charge by its unique identifier.
	FindChargeByID(ctx context.Context, chargeID string) (*domain.AccountingCharge, error)

	// ListCharges retrieves a paginated list of charges using token
	// pagination, optionally filtered by type and status.
	ListCharges(ctx context.Context, chargeType *domain.ChargeType, status *domain.ChargeStatus, limit int, nextToken *string) ([]domain.AccountingCharge, *string, error)
}

// ChargeWriter defines write operations for accounting charge data
type ChargeWriter interface {
	// SaveCharge persists a new charge.
	SaveCharge(ctx context.Context, charge domain.AccountingCharge) error

	// UpdateCharge updates an existing charge.
	UpdateCharge(ctx context.Context, charge domain.AccountingCharge) error

	// MarkChargePaid stamps the payment metadata and flips the status to PAID.
	MarkChargePaid(ctx context.Context, chargeID string, method domain.PaymentMethod, updatedBy string, now time.Time) error
}

// ChargeRepositoryFacade combines all charge-related repository interfaces
type ChargeRepositoryFacade interface {
	ChargeReader
	ChargeWriter
}
