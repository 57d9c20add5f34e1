package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceRefunded  InvoiceStatus = "REFUNDED"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Invoice is the financial document derived from exactly one reservation.
// Number is unique and sequential within its issue day (F<YYYYMMDD><seq>).
// TaxAmount and TotalAmount are always derived from PreTaxAmount and
// TaxRate through the money package; they are stored for querying but the
// computation has a single source of truth.
type Invoice struct {
	InvoiceID        string          `json:"invoiceID"`
	Number           string          `json:"number"`
	ReservationID    string          `json:"reservationID"`
	ClientID         string          `json:"clientID"`
	IssuedAt         time.Time       `json:"issuedAt"`
	DueDate          time.Time       `json:"dueDate"` // issue date + 30 days unless explicit
	PaidAt           *time.Time      `json:"paidAt,omitempty"`
	PreTaxAmount     decimal.Decimal `json:"preTaxAmount"`
	TaxRate          decimal.Decimal `json:"taxRate"` // percent, default 20
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Status           InvoiceStatus   `json:"status"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod,omitempty"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	AuditFields
}

// IsOverdue reports whether the invoice is pending past its due date.
func (i Invoice) IsOverdue(now time.Time) bool {
	return i.Status == InvoicePending && i.DueDate.Before(now)
}
