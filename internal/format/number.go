// Package format renders prices, percentages, quantities and timestamps as
// display strings using en-US conventions.
//
// The functions never return errors. Malformed input degrades to a
// placeholder ("NaN", "∞", "Invalid Date") instead.
package format

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	nanText = "NaN"
	infText = "∞"
)

var compactUnits = []string{"", "K", "M", "B", "T"}

// Currency renders v as US dollars. Values below 1 keep between 4 and 6
// fraction digits, everything else exactly 2.
func Currency(v float64) string {
	if math.IsNaN(v) {
		return "$" + nanText
	}
	if math.IsInf(v, 0) {
		return signPrefix(v) + "$" + infText
	}

	minDigits, maxDigits := 2, 2
	if v < 1 {
		minDigits, maxDigits = 4, 6
	}

	d := decimal.NewFromFloat(v).Round(int32(maxDigits))
	s := trimFraction(d.Abs().StringFixed(int32(maxDigits)), minDigits)
	return signPrefix(d.InexactFloat64()) + "$" + groupDigits(s)
}

// Percentage renders v, already expressed in percent, with two decimals and
// an explicit sign unless the rounded value is zero.
func Percentage(v float64) string {
	if math.IsNaN(v) {
		return nanText + "%"
	}
	if math.IsInf(v, 0) {
		return forcedSign(v) + infText + "%"
	}

	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if !d.IsZero() {
		sign = forcedSign(d.InexactFloat64())
	}
	return sign + groupDigits(d.Abs().StringFixed(2)) + "%"
}

// CompactNumber abbreviates v with K, M, B or T and at most one fraction
// digit, dropping a trailing zero (1245678900 -> "1.2B").
func CompactNumber(v float64) string {
	if math.IsNaN(v) {
		return nanText
	}
	if math.IsInf(v, 0) {
		return signPrefix(v) + infText
	}

	abs := decimal.NewFromFloat(v).Abs()
	unit := 0
	for unit < len(compactUnits)-1 && abs.GreaterThanOrEqual(decimal.New(1, int32(3*(unit+1)))) {
		unit++
	}

	scaled := abs.Shift(int32(-3 * unit)).Round(1)
	// 999.96K rounds up to 1000K and must be shown as 1M.
	if unit < len(compactUnits)-1 && scaled.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		unit++
		scaled = abs.Shift(int32(-3 * unit)).Round(1)
	}

	s := strings.TrimSuffix(scaled.StringFixed(1), ".0")
	sign := ""
	if v < 0 && !scaled.IsZero() {
		sign = "-"
	}
	// Compact notation groups only from five integer digits: 1500T, 15,000T.
	if dot := strings.IndexByte(s, '.'); dot == 4 || (dot < 0 && len(s) == 4) {
		return sign + s + compactUnits[unit]
	}
	return sign + groupDigits(s) + compactUnits[unit]
}

// Number renders v with en-US grouping and exactly decimals fraction digits.
func Number(v float64, decimals int) string {
	if math.IsNaN(v) {
		return nanText
	}
	if math.IsInf(v, 0) {
		return signPrefix(v) + infText
	}
	if decimals < 0 {
		decimals = 0
	}

	d := decimal.NewFromFloat(v).Round(int32(decimals))
	return signPrefix(d.InexactFloat64()) + groupDigits(d.Abs().StringFixed(int32(decimals)))
}

// QuantityDecimals is the precision used for asset quantities: 6 digits for
// dust amounts below 0.01, 4 otherwise.
func QuantityDecimals(v float64) int {
	if v < 0.01 {
		return 6
	}
	return 4
}

// Quantity is Number with QuantityDecimals applied.
func Quantity(v float64) string {
	return Number(v, QuantityDecimals(v))
}

func signPrefix(v float64) string {
	if v < 0 {
		return "-"
	}
	return ""
}

func forcedSign(v float64) string {
	if v < 0 {
		return "-"
	}
	return "+"
}

// trimFraction drops trailing zeros from the fraction of s while keeping at
// least minDigits of them.
func trimFraction(s string, minDigits int) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+1+minDigits && s[end-1] == '0' {
		end--
	}
	if end == dot+1 {
		end = dot
	}
	return s[:end]
}

// groupDigits inserts thousands separators into the integer part of an
// unsigned decimal string.
func groupDigits(s string) string {
	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}
	if len(intPart) <= 3 {
		return s
	}

	var b strings.Builder
	head := len(intPart) % 3
	if head > 0 {
		b.WriteString(intPart[:head])
	}
	for i := head; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(frac)
	return b.String()
}
