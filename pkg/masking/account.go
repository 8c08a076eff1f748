package masking

import (
	"strings"
	"unicode"
)

// AccountStrategy masks account and card numbers. The trailing four
// characters are kept verbatim; every preceding digit is replaced while
// non-digit separators pass through. Values of four characters or fewer
// are returned unchanged, matching the passthrough threshold the other
// strategies use.
type AccountStrategy struct{}

// Matches applies to any field name containing "account" or "card".
func (AccountStrategy) Matches(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	return strings.Contains(lower, "account") || strings.Contains(lower, "card")
}

// Apply masks the leading digits, keeping the last four characters.
func (AccountStrategy) Apply(value string) string {
	runes := []rune(value)
	if len(runes) <= 4 {
		return value
	}

	var b strings.Builder
	for _, r := range runes[:len(runes)-4] {
		if unicode.IsDigit(r) {
			b.WriteRune(maskRune)
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteString(string(runes[len(runes)-4:]))
	return b.String()
}
