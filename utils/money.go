package utils

import (
	"strconv"
	"strings"
)

// FormatNaira formats a whole-naira amount as a string like "₦2,500,000",
// matching how the storefront renders prices.
func FormatNaira(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		if neg {
			return "-₦" + s
		}
		return "₦" + s
	}

	var b strings.Builder
	// Pre-allocate: digits + separators + symbol
	b.Grow(len(s) + len(s)/3 + 4)
	if neg {
		b.WriteString("-₦")
	} else {
		b.WriteString("₦")
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
