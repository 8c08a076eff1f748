package config

import "strings"

// MaskingSettings is the configuration surface consumed, not owned, by the
// masking engine. Enabled is a *bool: nil means "use default" (enabled),
// explicit false disables masking.
type MaskingSettings struct {
	Enabled *bool `yaml:"enabled,omitempty"`

	// Fields is a comma-separated list of field names eligible for masking.
	// Empty selects the engine's built-in default set; a non-empty list
	// fully replaces it.
	Fields string `yaml:"fields,omitempty"`
}

// MaskingEnabled returns the effective enable flag (default: enabled).
func (m *MaskingSettings) MaskingEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// FieldList splits the comma-separated Fields value into trimmed entries,
// dropping blanks. Returns nil when no usable entries remain, which tells
// the engine to fall back to its default allowlist.
func (m *MaskingSettings) FieldList() []string {
	if strings.TrimSpace(m.Fields) == "" {
		return nil
	}

	var fields []string
	for _, field := range strings.Split(m.Fields, ",") {
		field = strings.TrimSpace(field)
		if field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// BoolPtr returns a pointer to b. Convenience for *bool struct fields.
func BoolPtr(b bool) *bool { return &b }
