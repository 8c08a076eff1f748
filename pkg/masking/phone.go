package masking

import (
	"strings"
	"unicode"
)

// PhoneStrategy masks phone numbers. The trailing three characters are kept
// verbatim; every preceding digit is replaced while non-digit separators
// (dashes, spaces, parentheses) pass through, preserving the number's shape.
type PhoneStrategy struct{}

// Matches applies to any field name containing "phone".
func (PhoneStrategy) Matches(fieldName string) bool {
	return strings.Contains(strings.ToLower(fieldName), "phone")
}

// Apply masks the leading digits. Values of three characters or fewer are
// returned unchanged.
func (PhoneStrategy) Apply(value string) string {
	runes := []rune(value)
	if len(runes) <= 3 {
		return value
	}

	var b strings.Builder
	for _, r := range runes[:len(runes)-3] {
		if unicode.IsDigit(r) {
			b.WriteRune(maskRune)
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteString(string(runes[len(runes)-3:]))
	return b.String()
}
