package common

import (
	"strconv"
	"strings"
)

// FormatRupiah renders an integer IDR amount as "Rp 1.250.000".
// Amounts have no fractional subunits, so there are never decimal places.
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("Rp ")

	rem := len(s) % 3
	if rem > 0 {
		b.WriteString(s[:rem])
		if len(s) > rem {
			b.WriteString(".")
		}
	}
	for i := rem; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteString(".")
		}
	}
	return b.String()
}

// ParseRupiah parses a formatted Rupiah string back to its integer amount.
// Round-tripping FormatRupiah output is loss-free over the integer domain.
func ParseRupiah(s string) (int64, error) {
	neg := strings.HasPrefix(strings.TrimSpace(s), "-")
	digits := nonDigitPattern.ReplaceAllString(s, "")
	if digits == "" {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}
