package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayslipStatus is the payment state of a payroll slip.
type PayslipStatus string

const (
	PayslipToPay PayslipStatus = "TO_PAY"
	PayslipPaid  PayslipStatus = "PAID"
	PayslipLate  PayslipStatus = "LATE"
)

// PayrollSlip is the monthly payroll document for one employee. At most
// one slip exists per (employee, month); Month is always the first day of
// the calendar month. Number is sequential within its month
// (FP<YYYYMM><seq>), global across employees.
type PayrollSlip struct {
	PayslipID  string          `json:"payslipID"`
	Number     string          `json:"number"`
	EmployeeID string          `json:"employeeID"`
	Month      time.Time       `json:"month"`

	GrossSalary      decimal.Decimal `json:"grossSalary"`
	SeniorityBonus   decimal.Decimal `json:"seniorityBonus"`
	PerformanceBonus decimal.Decimal `json:"performanceBonus"`
	OtherBonus       decimal.Decimal `json:"otherBonus"`

	SocialContributions decimal.Decimal `json:"socialContributions"`
	IncomeTax           decimal.Decimal `json:"incomeTax"`
	OtherDeductions     decimal.Decimal `json:"otherDeductions"`

	// Derived: TotalBonuses = sum of bonuses, TotalDeductions = sum of
	// deductions, NetSalary = gross + bonuses - deductions.
	TotalBonuses    decimal.Decimal `json:"totalBonuses"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetSalary       decimal.Decimal `json:"netSalary"`

	Status           PayslipStatus `json:"status"`
	PaidAt           *time.Time    `json:"paidAt,omitempty"`
	PaymentMethod    PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentReference string        `json:"paymentReference,omitempty"`
	AuditFields
}

// Recompute refreshes the derived totals from the component amounts.
func (p *PayrollSlip) Recompute() {
	p.TotalBonuses = p.SeniorityBonus.Add(p.PerformanceBonus).Add(p.OtherBonus)
	p.TotalDeductions = p.SocialContributions.Add(p.IncomeTax).Add(p.OtherDeductions)
	p.NetSalary = p.GrossSalary.Add(p.TotalBonuses).Sub(p.TotalDeductions)
}
