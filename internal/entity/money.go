package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNaira renders an amount for documents and emails: naira sign, grouped
// thousands, always two decimal places. Negative amounts keep a leading minus.
func FormatNaira(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	b.WriteRune('₦')

	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}
