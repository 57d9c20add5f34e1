package dto

import (
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayInvoiceRequest records a payment against a pending invoice.
type PayInvoiceRequest struct {
	PaymentMethod    domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CARD CASH TRANSFER CHEQUE MOBILE_MONEY"`
	PaymentReference string               `json:"paymentReference"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID        string               `json:"invoiceID"`
	Number           string               `json:"number"`
	ReservationID    string               `json:"reservationID"`
	ClientID         string               `json:"clientID"`
	IssuedAt         time.Time            `json:"issuedAt"`
	DueDate          time.Time            `json:"dueDate"`
	PaidAt           *time.Time           `json:"paidAt,omitempty"`
	PreTaxAmount     decimal.Decimal      `json:"preTaxAmount"`
	TaxRate          decimal.Decimal      `json:"taxRate"`
	TaxAmount        decimal.Decimal      `json:"taxAmount"`
	TotalAmount      decimal.Decimal      `json:"totalAmount"`
	Status           domain.InvoiceStatus `json:"status"`
	PaymentMethod    domain.PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentReference string               `json:"paymentReference,omitempty"`
	IsOverdue        bool                 `json:"isOverdue"`
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:        inv.InvoiceID,
		Number:           inv.Number,
		ReservationID:    inv.ReservationID,
		ClientID:         inv.ClientID,
		IssuedAt:         inv.IssuedAt,
		DueDate:          inv.DueDate,
		PaidAt:           inv.PaidAt,
		PreTaxAmount:     inv.PreTaxAmount,
		TaxRate:          inv.TaxRate,
		TaxAmount:        inv.TaxAmount,
		TotalAmount:      inv.TotalAmount,
		Status:           inv.Status,
		PaymentMethod:    inv.PaymentMethod,
		PaymentReference: inv.PaymentReference,
		IsOverdue:        inv.IsOverdue(time.Now().UTC()),
	}
}

// ToListInvoicesResponse converts a page of invoices to the list DTO.
func ToListInvoicesResponse(invoices []domain.Invoice, nextToken *string) ListInvoicesResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = ToInvoiceResponse(&inv)
	}
	return ListInvoicesResponse{Invoices: out, NextToken: nextToken}
}
