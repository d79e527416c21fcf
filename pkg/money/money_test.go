package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, int64(0), Round(0))
	assert.Equal(t, int64(2), Round(1.5))
	assert.Equal(t, int64(1), Round(1.4))
	assert.Equal(t, int64(21600), Round(21600.0))
	assert.Equal(t, int64(0), Round(math.NaN()))
	assert.Equal(t, int64(0), Round(math.Inf(1)))
}

func TestLineTotal(t *testing.T) {
	// 2 x 12000, no discount
	assert.Equal(t, int64(24000), LineTotal(2, 12000, 0))
	// 1 x 10000 at 15% off
	assert.Equal(t, int64(8500), LineTotal(1, 10000, 15))
	// half-up rounding: 1 x 333 at 50% = 166.5 -> 167
	assert.Equal(t, int64(167), LineTotal(1, 333, 50))
	// discount out of range is clamped, never negative
	assert.Equal(t, int64(0), LineTotal(3, 5000, 150))
	assert.Equal(t, int64(15000), LineTotal(3, 5000, -20))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, int64(2400), PercentOf(24000, 10))
	assert.Equal(t, int64(0), PercentOf(24000, 0))
	// 333 * 50% = 166.5 -> 167
	assert.Equal(t, int64(167), PercentOf(333, 50))
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0", FormatVND(0))
	assert.Equal(t, "500", FormatVND(500))
	assert.Equal(t, "1.000", FormatVND(1000))
	assert.Equal(t, "21.600", FormatVND(21600))
	assert.Equal(t, "2.500.000", FormatVND(2500000))
	assert.Equal(t, "-12.345", FormatVND(-12345))
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, float64(0), ClampPercent(-5))
	assert.Equal(t, float64(100), ClampPercent(150))
	assert.Equal(t, float64(42.5), ClampPercent(42.5))
	assert.Equal(t, float64(0), ClampPercent(math.NaN()))
}

func TestParsePercent(t *testing.T) {
	assert.Equal(t, float64(10), ParsePercent("10"))
	assert.Equal(t, float64(0), ParsePercent(""))
	assert.Equal(t, float64(0), ParsePercent("abc"))
	assert.Equal(t, float64(100), ParsePercent("999"))
	assert.Equal(t, float64(0), ParsePercent("-3"))
}
