package dto

import (
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GeneratePayslipRequest asks for a single slip. Month is "YYYY-MM".
// Optional bonus and deduction overrides are added on top of the
// computed seniority bonus and statutory deductions.
type GeneratePayslipRequest struct {
	EmployeeID       string           `json:"employeeID" binding:"required"`
	Month            string           `json:"month" binding:"required"`
	PerformanceBonus *decimal.Decimal `json:"performanceBonus"`
	OtherBonus       *decimal.Decimal `json:"otherBonus"`
	OtherDeductions  *decimal.Decimal `json:"otherDeductions"`
}

// RunMonthlyPayrollRequest triggers slip generation for every active
// employee. Month is "YYYY-MM".
type RunMonthlyPayrollRequest struct {
	Month string `json:"month" binding:"required"`
}

// MonthlyPayrollResponse summarizes a batch run.
type MonthlyPayrollResponse struct {
	Month     string            `json:"month"`
	Generated []PayslipResponse `json:"generated"`
	Skipped   int               `json:"skipped"`
}

// PayPayslipRequest records a payment against a slip.
type PayPayslipRequest struct {
	PaymentMethod    domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CARD CASH TRANSFER CHEQUE MOBILE_MONEY"`
	PaymentReference string               `json:"paymentReference"`
}

// PayslipResponse defines the data returned for a payroll slip.
type PayslipResponse struct {
	PayslipID  string    `json:"payslipID"`
	Number     string    `json:"number"`
	EmployeeID string    `json:"employeeID"`
	Month      time.Time `json:"month"`

	GrossSalary      decimal.Decimal `json:"grossSalary"`
	SeniorityBonus   decimal.Decimal `json:"seniorityBonus"`
	PerformanceBonus decimal.Decimal `json:"performanceBonus"`
	OtherBonus       decimal.Decimal `json:"otherBonus"`

	SocialContributions decimal.Decimal `json:"socialContributions"`
	IncomeTax           decimal.Decimal `json:"incomeTax"`
	OtherDeductions     decimal.Decimal `json:"otherDeductions"`

	TotalBonuses    decimal.Decimal `json:"totalBonuses"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetSalary       decimal.Decimal `json:"netSalary"`

	Status           domain.PayslipStatus `json:"status"`
	PaidAt           *time.Time           `json:"paidAt,omitempty"`
	PaymentMethod    domain.PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentReference string               `json:"paymentReference,omitempty"`
}

// ToPayslipResponse converts a domain.PayrollSlip to PayslipResponse DTO.
func ToPayslipResponse(p *domain.PayrollSlip) PayslipResponse {
	return PayslipResponse{
		PayslipID:           p.PayslipID,
		Number:              p.Number,
		EmployeeID:          p.EmployeeID,
		Month:               p.Month,
		GrossSalary:         p.GrossSalary,
		SeniorityBonus:      p.SeniorityBonus,
		PerformanceBonus:    p.PerformanceBonus,
		OtherBonus:          p.OtherBonus,
		SocialContributions: p.SocialContributions,
		IncomeTax:           p.IncomeTax,
		OtherDeductions:     p.OtherDeductions,
		TotalBonuses:        p.TotalBonuses,
		TotalDeductions:     p.TotalDeductions,
		NetSalary:           p.NetSalary,
		Status:              p.Status,
		PaidAt:              p.PaidAt,
		PaymentMethod:       p.PaymentMethod,
		PaymentReference:    p.PaymentReference,
	}
}

// ToListPayslipsResponse converts a slice of slips to response DTOs.
func ToListPayslipsResponse(slips []domain.PayrollSlip) []PayslipResponse {
	out := make([]PayslipResponse, len(slips))
	for i, p := range slips {
		out[i] = ToPayslipResponse(&p)
	}
	return out
}
