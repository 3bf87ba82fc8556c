package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/priyanshu-sharma/financial-anomaly-detector/dto"
)

// Standard GST slabs. Validation compares the captured digit string,
// so "18.0" or "05" never match and are reported non-standard.
var standardGSTRates = map[string]float64{
	"0":  0.0,
	"5":  5.0,
	"12": 12.0,
	"18": 18.0,
	"28": 28.0,
}

const amountTolerance = 0.01

// detectAnomalies runs the four rule checks in fixed order. Each check
// appends at most one entry and none of them short-circuits the others.
func detectAnomalies(fields dto.ParsedFields, duplicate bool) []dto.Anomaly {
	anomalies := []dto.Anomaly{}

	if duplicate {
		anomalies = append(anomalies, dto.Anomaly{
			Severity: dto.SeverityHigh,
			Message:  "Duplicate document detected",
		})
	}

	if !fields.HasGSTIN {
		anomalies = append(anomalies, dto.Anomaly{
			Severity: dto.SeverityHigh,
			Message:  "GSTIN not found in document",
		})
	} else if len(fields.GSTIN) != 15 {
		anomalies = append(anomalies, dto.Anomaly{
			Severity: dto.SeverityHigh,
			Message:  fmt.Sprintf("Invalid GSTIN format: %s", fields.GSTIN),
		})
	}

	if !fields.HasGSTRate {
		anomalies = append(anomalies, dto.Anomaly{
			Severity: dto.SeverityLow,
			Message:  "GST rate not specified",
		})
	} else if _, ok := standardGSTRates[fields.GSTRate]; !ok {
		anomalies = append(anomalies, dto.Anomaly{
			Severity: dto.SeverityMedium,
			Message:  fmt.Sprintf("Non-standard GST rate: %s%%", fields.GSTRate),
		})
	}

	if anomaly, ok := checkCalculation(fields); !ok {
		anomalies = append(anomalies, anomaly)
	}

	return anomalies
}

// checkCalculation verifies subtotal + tax against the stated total
// with an absolute tolerance of 0.01. When the total is present but
// subtotal or tax is not, the check passes silently.
func checkCalculation(fields dto.ParsedFields) (dto.Anomaly, bool) {
	if !fields.HasTotal {
		return dto.Anomaly{
			Severity: dto.SeverityHigh,
			Message:  "Total amount not found",
		}, false
	}

	if fields.HasSubtotal && fields.HasTax {
		if math.Abs(fields.Subtotal+fields.Tax-fields.Total) > amountTolerance {
			return dto.Anomaly{
				Severity: dto.SeverityHigh,
				Message: fmt.Sprintf("Calculation mismatch: %s + %s ≠ %s",
					formatAmount(fields.Subtotal), formatAmount(fields.Tax), formatAmount(fields.Total)),
			}, false
		}
	}

	return dto.Anomaly{}, true
}

// formatAmount renders an amount in minimal decimal form, always with
// at least one fractional digit (100.00 -> "100.0").
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
