package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row of the invoices table.
type Invoice struct {
	InvoiceID        string          `db:"invoice_id"`
	Number           string          `db:"number"`
	ReservationID    string          `db:"reservation_id"`
	ClientID         string          `db:"client_id"`
	IssuedAt         time.Time       `db:"issued_at"`
	DueDate          time.Time       `db:"due_date"`
	PaidAt           *time.Time      `db:"paid_at"`
	PreTaxAmount     decimal.Decimal `db:"pre_tax_amount"`
	TaxRate          decimal.Decimal `db:"tax_rate"`
	TaxAmount        decimal.Decimal `db:"tax_amount"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	Status           string          `db:"status"`
	PaymentMethod    string          `db:"payment_method"`
	PaymentReference string          `db:"payment_reference"`
	AuditFields
}
