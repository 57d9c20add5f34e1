package numbering_test

import (
	"testing"
	"time"

	"github.com/hotelio/hotel_management_app/internal/utils/numbering"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumberFormat(t *testing.T) {
	day := time.Date(2025, time.January, 14, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "F202501140001", numbering.FormatInvoiceNumber(day, 1))
	assert.Equal(t, "F202501140042", numbering.FormatInvoiceNumber(day, 42))
	// Sequences past 9999 widen rather than wrap.
	assert.Equal(t, "F2025011410000", numbering.FormatInvoiceNumber(day, 10000))
}

func TestPayslipNumberFormat(t *testing.T) {
	month := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "FP2025030001", numbering.FormatPayslipNumber(month, 1))
	assert.Equal(t, "FP2025030123", numbering.FormatPayslipNumber(month, 123))
}

func TestScopesAreDistinctPerPeriod(t *testing.T) {
	d1 := time.Date(2025, time.January, 14, 23, 59, 0, 0, time.UTC)
	d2 := time.Date(2025, time.January, 15, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, "invoice:20250114", numbering.InvoiceScope(d1))
	assert.NotEqual(t, numbering.InvoiceScope(d1), numbering.InvoiceScope(d2))

	assert.Equal(t, "payslip:202501", numbering.PayslipScope(d1))
	assert.Equal(t, numbering.PayslipScope(d1), numbering.PayslipScope(d2))
}
