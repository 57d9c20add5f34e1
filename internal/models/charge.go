package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountingCharge represents a row of the accounting_charges table.
type AccountingCharge struct {
	ChargeID         string          `db:"charge_id"`
	Label            string          `db:"label"`
	Type             string          `db:"type"`
	Description      string          `db:"description"`
	PreTaxAmount     decimal.Decimal `db:"pre_tax_amount"`
	TaxRate          decimal.Decimal `db:"tax_rate"`
	TaxAmount        decimal.Decimal `db:"tax_amount"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	InvoiceDate      time.Time       `db:"invoice_date"`
	DueDate          time.Time       `db:"due_date"`
	PaidAt           *time.Time      `db:"paid_at"`
	Status           string          `db:"status"`
	PaymentMethod    string          `db:"payment_method"`
	Supplier         string          `db:"supplier"`
	InvoiceReference string          `db:"invoice_reference"`
	AuditFields
}
