package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollSlip represents a row of the payroll_slips table.
type PayrollSlip struct {
	PayslipID  string    `db:"payslip_id"`
	Number     string    `db:"number"`
	EmployeeID string    `db:"employee_id"`
	Month      time.Time `db:"month"`

	GrossSalary      decimal.Decimal `db:"gross_salary"`
	SeniorityBonus   decimal.Decimal `db:"seniority_bonus"`
	PerformanceBonus decimal.Decimal `db:"performance_bonus"`
	OtherBonus       decimal.Decimal `db:"other_bonus"`

	SocialContributions decimal.Decimal `db:"social_contributions"`
	IncomeTax           decimal.Decimal `db:"income_tax"`
	OtherDeductions     decimal.Decimal `db:"other_deductions"`

	TotalBonuses    decimal.Decimal `db:"total_bonuses"`
	TotalDeductions decimal.Decimal `db:"total_deductions"`
	NetSalary       decimal.Decimal `db:"net_salary"`

	Status           string     `db:"status"`
	PaidAt           *time.Time `db:"paid_at"`
	PaymentMethod    string     `db:"payment_method"`
	PaymentReference string     `db:"payment_reference"`
	AuditFields
}
