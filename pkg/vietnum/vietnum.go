// Package vietnum converts VND amounts into their Vietnamese written form
// for receipt footers ("Bằng chữ: ...").
package vietnum

import (
	"strings"
	"unicode"
)

var digits = []string{"", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"}

// ToWords renders a non-negative VND amount as a Vietnamese phrase ending in
// "đồng". The conversion is deliberately three-tiered (units, nghìn, triệu)
// and best-effort: in the triệu tier the remainder below one thousand is not
// voiced. Negative input renders as zero.
func ToWords(n int64) string {
	if n <= 0 {
		return "Không đồng"
	}
	return capitalize(phrase(n) + " đồng")
}

func phrase(n int64) string {
	switch {
	case n < 1000:
		return hundreds(n)
	case n < 1000000:
		out := phrase(n/1000) + " nghìn"
		if r := n % 1000; r > 0 {
			out += " " + hundreds(r)
		}
		return out
	default:
		out := phrase(n/1000000) + " triệu"
		if r := (n % 1000000) / 1000; r > 0 {
			out += " " + hundreds(r) + " nghìn"
		}
		return out
	}
}

// hundreds renders 1..999, omitting zero-valued segments.
func hundreds(n int64) string {
	h := n / 100
	t := (n % 100) / 10
	u := n % 10

	var parts []string
	if h > 0 {
		parts = append(parts, digits[h]+" trăm")
	}
	switch {
	case t == 1:
		parts = append(parts, "mười")
	case t > 1:
		parts = append(parts, digits[t]+" mươi")
	}
	if u > 0 {
		parts = append(parts, digits[u])
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
