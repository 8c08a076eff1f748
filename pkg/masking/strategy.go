package masking

// maskRune is the character substituted for redacted content.
const maskRune = '*'

// Strategy pairs a field-applicability test with a value-masking transform.
// Implementations must be pure and safe for concurrent use: the engine
// shares a single strategy list across all in-flight documents.
type Strategy interface {
	// Matches reports whether this strategy applies to the given field name.
	// The test is case-insensitive and independent of the allowlist gate.
	Matches(fieldName string) bool

	// Apply returns the masked form of value. Values at or below the
	// strategy's minimum length are returned unchanged.
	Apply(value string) string
}

// findStrategy returns the first registered strategy matching the field name,
// or nil. Registration order is the tie-break when several strategies could
// match: earliest wins.
func findStrategy(strategies []Strategy, fieldName string) Strategy {
	for _, strategy := range strategies {
		if strategy.Matches(fieldName) {
			return strategy
		}
	}
	return nil
}
