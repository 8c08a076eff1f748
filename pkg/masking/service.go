package masking

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
)

// defaultMaskedFields is the built-in allowlist used when configuration does
// not supply an explicit field list. A non-empty configured list replaces
// this set entirely; there is no union.
var defaultMaskedFields = []string{
	"name",
	"phone",
	"phonenumber",
	"phone_number",
	"email",
	"emailaddress",
	"email_address",
}

// Service masks sensitive field values in JSON payloads crossing the data
// exchange boundary. Created once at application startup and reused for
// every call. Each invocation parses its own private document tree, so
// concurrent callers need no locking; only runtime strategy registration
// takes the mutex, and it swaps in a fresh slice so in-flight walks keep
// observing the list they started with.
type Service struct {
	enabled bool
	fields  map[string]struct{}

	mu         sync.RWMutex
	strategies []Strategy
}

// Stats describes the configured masking surface for logging and diagnostics.
type Stats struct {
	Enabled    bool `json:"enabled"`
	Fields     int  `json:"fields"`
	Strategies int  `json:"strategies"`
}

// NewService builds a masking service from configuration. A non-empty fields
// list replaces the built-in default allowlist; an empty list selects the
// default. Strategy order is significant and fixed at construction:
// evaluation stops at the first match, strategies never combine.
func NewService(enabled bool, fields []string, strategies []Strategy) *Service {
	set := make(map[string]struct{})
	for _, field := range fields {
		field = strings.ToLower(strings.TrimSpace(field))
		if field != "" {
			set[field] = struct{}{}
		}
	}
	if len(set) == 0 {
		for _, field := range defaultMaskedFields {
			set[field] = struct{}{}
		}
	}

	s := &Service{
		enabled:    enabled,
		fields:     set,
		strategies: append([]Strategy(nil), strategies...),
	}

	slog.Info("Masking service initialized",
		"enabled", s.enabled,
		"fields", len(s.fields),
		"strategies", len(s.strategies))

	return s
}

// DefaultStrategies returns the built-in strategy chain in evaluation order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		NameStrategy{},
		EmailStrategy{},
		PhoneStrategy{},
		AccountStrategy{},
	}
}

// Enabled reports whether masking is turned on.
func (s *Service) Enabled() bool {
	return s.enabled
}

// Stats returns the current masking surface.
func (s *Service) Stats() Stats {
	return Stats{
		Enabled:    s.enabled,
		Fields:     len(s.fields),
		Strategies: len(s.snapshot()),
	}
}

// RegisterStrategy appends a strategy to the end of the evaluation order.
// Copy-on-write: concurrent MaskJSON calls observe either the fully-old or
// fully-new list, never a partially updated one.
func (s *Service) RegisterStrategy(strategy Strategy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]Strategy, 0, len(s.strategies)+1)
	next = append(next, s.strategies...)
	next = append(next, strategy)
	s.strategies = next
}

func (s *Service) snapshot() []Strategy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.strategies
}

// FieldEligible reports whether the field is in scope for masking at all.
// The allowlist gate is independent of strategy matching; both must pass
// before a value is rewritten.
func (s *Service) FieldEligible(fieldName string) bool {
	if !s.enabled {
		return false
	}
	_, ok := s.fields[strings.ToLower(fieldName)]
	return ok
}

// MaskJSON masks every eligible string field in a JSON object document and
// returns the re-serialized result. The operation fails open: disabled
// masking, blank input, malformed JSON, a non-object root, and any failure
// during the walk all return the input unchanged — masking failures never
// surface to the caller. Key order and whitespace are not preserved across
// a masked document.
func (s *Service) MaskJSON(text string) (masked string) {
	// A registered strategy is arbitrary code; a panic during the walk
	// must not escape the engine.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Data masking failed, returning payload unmasked", "panic", r)
			masked = text
		}
	}()

	if !s.enabled || strings.TrimSpace(text) == "" {
		return text
	}

	root, err := decodeDocument(text)
	if err != nil {
		slog.Error("Data masking failed, returning payload unmasked", "error", err)
		return text
	}

	obj, ok := root.(map[string]any)
	if !ok {
		// Masking only operates within object graphs; bare arrays and
		// scalars pass through.
		return text
	}

	s.walkObject(obj, s.snapshot())

	out, err := json.Marshal(obj)
	if err != nil {
		slog.Error("Data masking failed, returning payload unmasked", "error", err)
		return text
	}
	return string(out)
}

// MaskValue masks a single field value when the field passes both the
// allowlist gate and a strategy match; otherwise the value is returned
// unchanged. Fails open on a strategy panic.
func (s *Service) MaskValue(fieldName, value string) (masked string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Data masking failed, returning value unmasked",
				"field", fieldName, "panic", r)
			masked = value
		}
	}()

	if !s.FieldEligible(fieldName) {
		return value
	}
	if strategy := findStrategy(s.snapshot(), fieldName); strategy != nil {
		return strategy.Apply(value)
	}
	return value
}

// MaskName masks a name value directly, bypassing the allowlist gate.
// Falls back to the input when no matching strategy is registered.
func (s *Service) MaskName(name string) string {
	return s.maskCategory("name", name)
}

// MaskEmail masks an email value directly, bypassing the allowlist gate.
func (s *Service) MaskEmail(email string) string {
	return s.maskCategory("email", email)
}

// MaskPhoneNumber masks a phone number value directly, bypassing the
// allowlist gate.
func (s *Service) MaskPhoneNumber(phoneNumber string) string {
	return s.maskCategory("phone", phoneNumber)
}

func (s *Service) maskCategory(category, value string) (masked string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Data masking failed, returning value unmasked",
				"category", category, "panic", r)
			masked = value
		}
	}()

	if strategy := findStrategy(s.snapshot(), category); strategy != nil {
		return strategy.Apply(value)
	}
	return value
}

// walkObject rewrites eligible textual leaves in place and recurses into
// nested objects and arrays. Non-textual values at a matched field name
// (numbers, booleans, null, nested objects) are left untouched; raw
// non-object array elements are never masked directly.
func (s *Service) walkObject(obj map[string]any, strategies []Strategy) {
	for name, value := range obj {
		if text, ok := value.(string); ok && s.FieldEligible(name) {
			if strategy := findStrategy(strategies, name); strategy != nil {
				obj[name] = strategy.Apply(text)
			}
		}

		switch child := value.(type) {
		case map[string]any:
			s.walkObject(child, strategies)
		case []any:
			for _, element := range child {
				if elementObj, ok := element.(map[string]any); ok {
					s.walkObject(elementObj, strategies)
				}
			}
		}
	}
}

// decodeDocument parses text into a generic value tree. Numbers decode as
// json.Number so untouched numeric leaves serialize back without losing
// precision.
func decodeDocument(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	return root, nil
}
