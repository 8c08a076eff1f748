package masking

import "strings"

// NameStrategy masks person names. Each whitespace-separated token keeps its
// first character; every following character is replaced. Tokens are rejoined
// with a single space, so interior whitespace runs are collapsed.
type NameStrategy struct{}

// Matches applies to any field name containing "name".
func (NameStrategy) Matches(fieldName string) bool {
	return strings.Contains(strings.ToLower(fieldName), "name")
}

// Apply masks the name. Blank input is returned unchanged.
func (NameStrategy) Apply(value string) string {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return value
	}

	var b strings.Builder
	for i, token := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		runes := []rune(token)
		b.WriteRune(runes[0])
		for range runes[1:] {
			b.WriteRune(maskRune)
		}
	}
	return b.String()
}
