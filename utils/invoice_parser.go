package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/priyanshu-sharma/financial-anomaly-detector/dto"
)

var (
	// GSTIN shape: 2-digit state code, 5-letter PAN prefix, 4-digit PAN
	// number, PAN check letter, entity code, literal Z, checksum. The
	// final character is optional so that a truncated GSTIN still
	// surfaces as a candidate and gets flagged by the length check
	// instead of disappearing as "not found".
	gstinRegex = regexp.MustCompile(`[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]?`)

	gstRateRegex  = regexp.MustCompile(`(?i)GST\s*@?\s*(\d+)%`)
	subtotalRegex = regexp.MustCompile(`(?i)Sub\s*Total\s*:\s*(\d+\.\d{2})`)
	taxRegex      = regexp.MustCompile(`(?i)GST\s*:\s*(\d+\.\d{2})`)

	// "Total" also occurs inside "Sub Total", so the subtotal prefix is
	// captured and those matches are skipped.
	totalRegex = regexp.MustCompile(`(?i)(Sub\s*)?Total\s*:\s*(\d+\.\d{2})`)
)

// ExtractGSTIN returns the first GSTIN-shaped token in the text. Input
// is uppercased before matching since OCR output mixes case freely.
func ExtractGSTIN(text string) (string, bool) {
	m := gstinRegex.FindString(strings.ToUpper(text))
	if m == "" {
		return "", false
	}
	return m, true
}

// ExtractGSTRate returns the digit string of a "GST @18%" style rate.
func ExtractGSTRate(text string) (string, bool) {
	if m := gstRateRegex.FindStringSubmatch(text); len(m) > 1 {
		return m[1], true
	}
	return "", false
}

// ExtractSubtotal returns the amount of a "Sub Total : 123.45" line.
func ExtractSubtotal(text string) (float64, bool) {
	return matchAmount(subtotalRegex, text)
}

// ExtractTax returns the amount of a "GST : 123.45" line.
func ExtractTax(text string) (float64, bool) {
	return matchAmount(taxRegex, text)
}

// ExtractTotal returns the amount of a "Total : 123.45" line, ignoring
// subtotal lines.
func ExtractTotal(text string) (float64, bool) {
	for _, m := range totalRegex.FindAllStringSubmatch(text, -1) {
		if m[1] != "" {
			continue
		}
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

func matchAmount(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseInvoiceFields runs every field parser over the text. The parsers
// are independent of each other and a miss on any of them is a normal
// outcome, not an error.
func ParseInvoiceFields(text string) dto.ParsedFields {
	var f dto.ParsedFields
	f.GSTIN, f.HasGSTIN = ExtractGSTIN(text)
	f.GSTRate, f.HasGSTRate = ExtractGSTRate(text)
	f.Subtotal, f.HasSubtotal = ExtractSubtotal(text)
	f.Tax, f.HasTax = ExtractTax(text)
	f.Total, f.HasTotal = ExtractTotal(text)
	return f
}
