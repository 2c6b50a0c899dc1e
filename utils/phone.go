package utils

import "strings"

// NormalizePhone normalizes a Nigerian phone number to +234 format.
// Non-digits are stripped; a leading 234 or a leading 0 (local format like
// 070...) is removed before prefixing.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	val := digits.String()
	if strings.HasPrefix(val, "234") {
		val = val[3:]
	}
	if strings.HasPrefix(val, "0") {
		val = val[1:]
	}

	return "+234" + val
}

// IsValidPhone reports whether a normalized number carries an actual
// subscriber part beyond the +234 prefix
func IsValidPhone(normalized string) bool {
	return len(normalized) >= 10 && strings.HasPrefix(normalized, "+234")
}
