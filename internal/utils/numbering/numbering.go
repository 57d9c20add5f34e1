// Package numbering builds the sequential document references used by the
// accounting engine. Sequence values come from the document_counters table
// (atomic increment per scope); this package only derives scope keys and
// formats the final reference strings.
package numbering

import (
	"fmt"
	"time"
)

// InvoiceScope returns the counter scope for invoices issued on the given
// day, e.g. "invoice:20250114". Counters are day-scoped so the 4-digit
// suffix restarts at 0001 each morning.
func InvoiceScope(issuedAt time.Time) string {
	return "invoice:" + issuedAt.Format("20060102")
}

// PayslipScope returns the counter scope for payslips of the given month,
// e.g. "payslip:202501". The sequence is global per month, not per
// employee.
func PayslipScope(month time.Time) string {
	return "payslip:" + month.Format("200601")
}

// FormatInvoiceNumber renders an invoice reference: F<YYYYMMDD><seq%04d>.
func FormatInvoiceNumber(issuedAt time.Time, seq int64) string {
	return fmt.Sprintf("F%s%04d", issuedAt.Format("20060102"), seq)
}

// FormatPayslipNumber renders a payslip reference: FP<YYYYMM><seq%04d>.
func FormatPayslipNumber(month time.Time, seq int64) string {
	return fmt.Sprintf("FP%s%04d", month.Format("200601"), seq)
}
