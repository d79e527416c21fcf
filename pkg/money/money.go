package money

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Round rounds a monetary value to the nearest whole đồng, half away from
// zero. VND has no fractional unit, so every derived amount (percentage
// discounts, divisions) goes through here before it is stored.
func Round(x float64) int64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return decimal.NewFromFloat(x).Round(0).IntPart()
}

// LineTotal computes a line item total: quantity * unit price reduced by the
// item discount percent, rounded half-up.
func LineTotal(quantity int, unitPrice int64, discountPercent float64) int64 {
	d := ClampPercent(discountPercent)
	qty := decimal.NewFromInt(int64(quantity))
	price := decimal.NewFromInt(unitPrice)
	factor := decimal.NewFromInt(100).Sub(decimal.NewFromFloat(d)).Div(decimal.NewFromInt(100))
	return qty.Mul(price).Mul(factor).Round(0).IntPart()
}

// PercentOf returns amount * percent / 100, rounded half-up.
func PercentOf(amount int64, percent float64) int64 {
	p := ClampPercent(percent)
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(p)).
		Div(decimal.NewFromInt(100)).
		Round(0).IntPart()
}

// FormatVND formats an amount with dot thousand separators, no decimals.
// 1234567 -> "1.234.567", 0 -> "0".
func FormatVND(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// ClampPercent constrains a discount percent to [0,100]. NaN and infinities
// coerce to 0 so they can never reach a total.
func ClampPercent(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}

// ParsePercent parses a user-entered percent field. Empty or non-numeric
// input coerces to 0 rather than erroring; the result is clamped to [0,100].
func ParsePercent(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return ClampPercent(v)
}
