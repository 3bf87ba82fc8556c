package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractGSTIN(t *testing.T) {
	text := `
		Acme Traders Pvt Ltd
		GSTIN: 27AAAPL1234C1Z5
		Invoice No: INV-2024-001
	`

	gstin, ok := ExtractGSTIN(text)

	assert.True(t, ok)
	assert.Equal(t, "27AAAPL1234C1Z5", gstin)
}

func TestExtractGSTINLowercase(t *testing.T) {
	gstin, ok := ExtractGSTIN("gstin: 27aaapl1234c1z5")

	assert.True(t, ok)
	assert.Equal(t, "27AAAPL1234C1Z5", gstin)
}

func TestExtractGSTINTruncated(t *testing.T) {
	gstin, ok := ExtractGSTIN("GSTIN: 27AAAPL1234C1Z\nInvoice No: 42")

	assert.True(t, ok)
	assert.Equal(t, "27AAAPL1234C1Z", gstin)
	assert.Len(t, gstin, 14)
}

func TestExtractGSTINMissing(t *testing.T) {
	_, ok := ExtractGSTIN("Invoice with no tax identifier at all")

	assert.False(t, ok)
}

func TestExtractGSTRate(t *testing.T) {
	rate, ok := ExtractGSTRate("Items taxed at GST @18% as applicable")

	assert.True(t, ok)
	assert.Equal(t, "18", rate)
}

func TestExtractGSTRateWithoutAt(t *testing.T) {
	rate, ok := ExtractGSTRate("gst 12% included")

	assert.True(t, ok)
	assert.Equal(t, "12", rate)
}

func TestExtractGSTRateMissing(t *testing.T) {
	_, ok := ExtractGSTRate("no tax rate mentioned anywhere")

	assert.False(t, ok)
}

func TestExtractAmounts(t *testing.T) {
	text := `
		Sub Total : 100.00
		GST : 18.00
		Total : 118.00
	`

	subtotal, ok := ExtractSubtotal(text)
	assert.True(t, ok)
	assert.Equal(t, 100.00, subtotal)

	tax, ok := ExtractTax(text)
	assert.True(t, ok)
	assert.Equal(t, 18.00, tax)

	total, ok := ExtractTotal(text)
	assert.True(t, ok)
	assert.Equal(t, 118.00, total)
}

func TestExtractTotalIgnoresSubtotalLine(t *testing.T) {
	// "Total" occurs inside "Sub Total"; the parser must not pick up
	// the subtotal amount as the total.
	total, ok := ExtractTotal("Sub Total : 100.00\nTotal : 118.00")

	assert.True(t, ok)
	assert.Equal(t, 118.00, total)
}

func TestExtractTotalMissing(t *testing.T) {
	_, ok := ExtractTotal("Sub Total : 100.00\nGST : 18.00")

	assert.False(t, ok)
}

func TestParseInvoiceFields(t *testing.T) {
	text := `
		Acme Traders Pvt Ltd
		GSTIN: 27AAAPL1234C1Z5
		GST @18%
		Sub Total : 100.00
		GST : 18.00
		Total : 118.00
	`

	fields := ParseInvoiceFields(text)

	assert.True(t, fields.HasGSTIN)
	assert.Equal(t, "27AAAPL1234C1Z5", fields.GSTIN)
	assert.True(t, fields.HasGSTRate)
	assert.Equal(t, "18", fields.GSTRate)
	assert.True(t, fields.HasSubtotal)
	assert.Equal(t, 100.00, fields.Subtotal)
	assert.True(t, fields.HasTax)
	assert.Equal(t, 18.00, fields.Tax)
	assert.True(t, fields.HasTotal)
	assert.Equal(t, 118.00, fields.Total)
}

func TestParseInvoiceFieldsAllMissing(t *testing.T) {
	fields := ParseInvoiceFields("completely unrelated text")

	assert.False(t, fields.HasGSTIN)
	assert.False(t, fields.HasGSTRate)
	assert.False(t, fields.HasSubtotal)
	assert.False(t, fields.HasTax)
	assert.False(t, fields.HasTotal)
}
