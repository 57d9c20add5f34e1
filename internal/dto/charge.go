package dto

import (
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateChargeRequest defines the data needed to record an operating
// charge. TaxRate defaults to the configured VAT rate when omitted.
type CreateChargeRequest struct {
	Label            string            `json:"label" binding:"required"`
	Type             domain.ChargeType `json:"type" binding:"required,oneof=MAINTENANCE INVENTORY PERSONNEL UTILITIES INSURANCE MARKETING OTHER"`
	Description      string            `json:"description"`
	PreTaxAmount     decimal.Decimal   `json:"preTaxAmount" binding:"required"`
	TaxRate          *decimal.Decimal  `json:"taxRate"`
	InvoiceDate      time.Time         `json:"invoiceDate" binding:"required"`
	DueDate          *time.Time        `json:"dueDate"`
	Supplier         string            `json:"supplier"`
	InvoiceReference string            `json:"invoiceReference"`
}

// UpdateChargeRequest defines the data allowed for updating a charge.
type UpdateChargeRequest struct {
	Label            *string          `json:"label"`
	Description      *string          `json:"description"`
	PreTaxAmount     *decimal.Decimal `json:"preTaxAmount"`
	TaxRate          *decimal.Decimal `json:"taxRate"`
	DueDate          *time.Time       `json:"dueDate"`
	Supplier         *string          `json:"supplier"`
	InvoiceReference *string          `json:"invoiceReference"`
}

// PayChargeRequest records a payment against a pending charge.
type PayChargeRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CARD CASH TRANSFER CHEQUE MOBILE_MONEY"`
}

// ListChargesParams defines query parameters for listing charges.
type ListChargesParams struct {
	Type      *domain.ChargeType   `form:"type" binding:"omitempty,oneof=MAINTENANCE INVENTORY PERSONNEL UTILITIES INSURANCE MARKETING OTHER"`
	Status    *domain.ChargeStatus `form:"status" binding:"omitempty,oneof=PENDING PAID CANCELLED"`
	Limit     int                  `form:"limit,default=20"`
	NextToken *string              `form:"nextToken"`
}

// ChargeResponse defines the data returned for an accounting charge.
type ChargeResponse struct {
	ChargeID         string               `json:"chargeID"`
	Label            string               `json:"label"`
	Type             domain.ChargeType    `json:"type"`
	Description      string               `json:"description"`
	PreTaxAmount     decimal.Decimal      `json:"preTaxAmount"`
	TaxRate          decimal.Decimal      `json:"taxRate"`
	TaxAmount        decimal.Decimal      `json:"taxAmount"`
	TotalAmount      decimal.Decimal      `json:"totalAmount"`
	InvoiceDate      time.Time            `json:"invoiceDate"`
	DueDate          time.Time            `json:"dueDate"`
	PaidAt           *time.Time           `json:"paidAt,omitempty"`
	Status           domain.ChargeStatus  `json:"status"`
	PaymentMethod    domain.PaymentMethod `json:"paymentMethod,omitempty"`
	Supplier         string               `json:"supplier"`
	InvoiceReference string               `json:"invoiceReference"`
	IsOverdue        bool                 `json:"isOverdue"`
}

// ListChargesResponse wraps a page of charges.
type ListChargesResponse struct {
	Charges   []ChargeResponse `json:"charges"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToChargeResponse converts a domain.AccountingCharge to its DTO.
func ToChargeResponse(c *domain.AccountingCharge) ChargeResponse {
	return ChargeResponse{
		ChargeID:         c.ChargeID,
		Label:            c.Label,
		Type:             c.Type,
		Description:      c.Description,
		PreTaxAmount:     c.PreTaxAmount,
		TaxRate:          c.TaxRate,
		TaxAmount:        c.TaxAmount,
		TotalAmount:      c.TotalAmount,
		InvoiceDate:      c.InvoiceDate,
		DueDate:          c.DueDate,
		PaidAt:           c.PaidAt,
		Status:           c.Status,
		PaymentMethod:    c.PaymentMethod,
		Supplier:         c.Supplier,
		InvoiceReference: c.InvoiceReference,
		IsOverdue:        c.IsOverdue(time.Now().UTC()),
	}
}

// ToListChargesResponse converts a page of charges to the list DTO.
func ToListChargesResponse(charges []domain.AccountingCharge, nextToken *string) ListChargesResponse {
	out := make([]ChargeResponse, len(charges))
	for i, c := range charges {
		out[i] = ToChargeResponse(&c)
	}
	return ListChargesResponse{Charges: out, NextToken: nextToken}
}
