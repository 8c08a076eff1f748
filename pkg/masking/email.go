package masking

import "strings"

// EmailStrategy masks email addresses. The first local-part character is
// kept, the remaining local-part characters are replaced, and the domain
// (including the @) passes through verbatim.
type EmailStrategy struct{}

// Matches applies to any field name containing "email".
func (EmailStrategy) Matches(fieldName string) bool {
	return strings.Contains(strings.ToLower(fieldName), "email")
}

// Apply masks the local part. Values without an @, or with fewer than two
// characters before it, are returned unchanged.
func (EmailStrategy) Apply(value string) string {
	at := strings.IndexByte(value, '@')
	if at <= 1 {
		return value
	}

	local := []rune(value[:at])
	var b strings.Builder
	b.WriteRune(local[0])
	for range local[1:] {
		b.WriteRune(maskRune)
	}
	b.WriteString(value[at:])
	return b.String()
}
