package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeType categorizes an operating expense.
type ChargeType string

const (
	ChargeMaintenance ChargeType = "MAINTENANCE"
	ChargeInventory   ChargeType = "INVENTORY"
	ChargePersonnel   ChargeType = "PERSONNEL"
	ChargeUtilities   ChargeType = "UTILITIES"
	ChargeInsurance   ChargeType = "INSURANCE"
	ChargeMarketing   ChargeType = "MARKETING"
	ChargeOther       ChargeType = "OTHER"
)

// ChargeStatus is the payment state of an accounting charge.
type ChargeStatus string

const (
	ChargePending   ChargeStatus = "PENDING"
	ChargePaid      ChargeStatus = "PAID"
	ChargeCancelled ChargeStatus = "CANCELLED"
)

// AccountingCharge records an operating expense with its own tax
// computation, either entered by staff or derived automatically from
// maintenance completion and inventory intake.
type AccountingCharge struct {
	ChargeID         string          `json:"chargeID"`
	Label            string          `json:"label"`
	Type             ChargeType      `json:"type"`
	Description      string          `json:"description"`
	PreTaxAmount     decimal.Decimal `json:"preTaxAmount"`
	TaxRate          decimal.Decimal `json:"taxRate"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	InvoiceDate      time.Time       `json:"invoiceDate"`
	DueDate          time.Time       `json:"dueDate"`
	PaidAt           *time.Time      `json:"paidAt,omitempty"`
	Status           ChargeStatus    `json:"status"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod,omitempty"`
	Supplier         string          `json:"supplier"`
	InvoiceReference string          `json:"invoiceReference"`
	AuditFields
}

// IsOverdue reports whether the charge is pending past its due date.
func (c AccountingCharge) IsOverdue(now time.Time) bool {
	return c.Status == ChargePending && c.DueDate.Before(now)
}
