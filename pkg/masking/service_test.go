package masking

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(true, nil, DefaultStrategies())
}

func TestNewService_DefaultAllowlist(t *testing.T) {
	svc := NewService(true, nil, DefaultStrategies())

	for _, field := range []string{"name", "phone", "phonenumber", "phone_number", "email", "emailaddress", "email_address"} {
		assert.True(t, svc.FieldEligible(field), "default allowlist should contain %q", field)
	}
	assert.False(t, svc.FieldEligible("address"))
}

func TestNewService_ExplicitFieldsReplaceDefault(t *testing.T) {
	svc := NewService(true, []string{" Name ", "SSN"}, DefaultStrategies())

	assert.True(t, svc.FieldEligible("name"), "configured fields are trimmed and lower-cased")
	assert.True(t, svc.FieldEligible("ssn"))
	// Explicit list replaces the default set entirely, no union.
	assert.False(t, svc.FieldEligible("email"))
	assert.False(t, svc.FieldEligible("phone"))
}

func TestNewService_BlankFieldsFallBackToDefault(t *testing.T) {
	svc := NewService(true, []string{"", "  "}, DefaultStrategies())
	assert.True(t, svc.FieldEligible("email"))
}

func TestMaskJSON_MasksName(t *testing.T) {
	svc := newTestService(t)
	result := svc.MaskJSON(`{"name": "John Smith"}`)
	assert.Contains(t, result, `"name":"J*** S****"`)
}

func TestMaskJSON_MasksEmail(t *testing.T) {
	svc := newTestService(t)
	result := svc.MaskJSON(`{"email": "test@example.com"}`)
	assert.Contains(t, result, `"email":"t***@example.com"`)
}

func TestMaskJSON_MasksPhone(t *testing.T) {
	svc := newTestService(t)
	result := svc.MaskJSON(`{"phone": "123-456-7890"}`)
	assert.Contains(t, result, `"phone":"***-***-*890"`)
}

func TestMaskJSON_NestedObject(t *testing.T) {
	svc := newTestService(t)
	result := svc.MaskJSON(`{"user": {"name": "Jane Doe"}}`)
	assert.Contains(t, result, `"name":"J*** D**"`)
}

func TestMaskJSON_ArrayOfObjects(t *testing.T) {
	svc := newTestService(t)
	result := svc.MaskJSON(`{"users":[{"name":"John Smith"},{"name":"Jane Doe"}]}`)
	assert.Contains(t, result, `"name":"J*** S****"`)
	assert.Contains(t, result, `"name":"J*** D**"`)
}

func TestMaskJSON_DeepNesting(t *testing.T) {
	svc := newTestService(t)
	input := `{"a":{"b":{"c":[{"d":{"email":"deep@example.com"}}]}}}`
	result := svc.MaskJSON(input)
	assert.Contains(t, result, `"email":"d***@example.com"`)
}

func TestMaskJSON_UnconfiguredFieldUntouched(t *testing.T) {
	svc := newTestService(t)
	result := svc.MaskJSON(`{"address": "123 Main St", "name": "John Smith"}`)
	assert.Contains(t, result, `"address":"123 Main St"`)
	assert.Contains(t, result, `"name":"J*** S****"`)
}

func TestMaskJSON_NonTextualMatchedFieldUntouched(t *testing.T) {
	svc := newTestService(t)

	// Numbers, booleans, null, and nested objects at a matched field name
	// are never rewritten; only textual leaves are.
	result := svc.MaskJSON(`{"name": 42, "phone": true, "email": null}`)
	assert.Contains(t, result, `"name":42`)
	assert.Contains(t, result, `"phone":true`)
	assert.Contains(t, result, `"email":null`)
}

func TestMaskJSON_RawArrayElementsNeverMasked(t *testing.T) {
	svc := newTestService(t)
	result := svc.MaskJSON(`{"name":["John Smith","Jane Doe"]}`)
	assert.Contains(t, result, `"John Smith"`)
	assert.Contains(t, result, `"Jane Doe"`)
}

func TestMaskJSON_NumericPrecisionPreserved(t *testing.T) {
	svc := newTestService(t)
	result := svc.MaskJSON(`{"id": 9007199254740993, "name": "Jane Doe"}`)
	assert.Contains(t, result, `"id":9007199254740993`)
}

func TestMaskJSON_Disabled(t *testing.T) {
	svc := NewService(false, nil, DefaultStrategies())
	input := `{"name": "John Smith"}`
	assert.Equal(t, input, svc.MaskJSON(input))
}

func TestMaskJSON_EmptyAndBlankInput(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, "", svc.MaskJSON(""))
	assert.Equal(t, "   ", svc.MaskJSON("   "))
}

func TestMaskJSON_MalformedJSONFailsOpen(t *testing.T) {
	svc := newTestService(t)
	input := `{"name": "John Smith"` // missing closing brace
	assert.Equal(t, input, svc.MaskJSON(input))
}

func TestMaskJSON_NonObjectRootFailsOpen(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		input string
	}{
		{"bare array", `[{"name":"John Smith"}]`},
		{"bare string", `"John Smith"`},
		{"bare number", `42`},
		{"bare null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, svc.MaskJSON(tt.input))
		})
	}
}

func TestMaskJSON_EmptyObject(t *testing.T) {
	svc := newTestService(t)
	assert.JSONEq(t, `{}`, svc.MaskJSON(`{}`))
}

func TestMaskJSON_NullFieldPreserved(t *testing.T) {
	svc := newTestService(t)
	result := svc.MaskJSON(`{"name": null}`)
	assert.JSONEq(t, `{"name": null}`, result)
}

func TestMaskJSON_StructurePreserved(t *testing.T) {
	svc := newTestService(t)
	input := `{
		"name": "John Smith",
		"age": 41,
		"active": true,
		"tags": ["a", "b"],
		"contact": {"email": "test@example.com", "city": "Berlin"}
	}`

	result := svc.MaskJSON(input)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &got))
	assert.Equal(t, "J*** S****", got["name"])
	assert.Equal(t, float64(41), got["age"])
	assert.Equal(t, true, got["active"])
	assert.Equal(t, []any{"a", "b"}, got["tags"])
	contact := got["contact"].(map[string]any)
	assert.Equal(t, "t***@example.com", contact["email"])
	assert.Equal(t, "Berlin", contact["city"])
}

func TestMaskValue(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "J*** S****", svc.MaskValue("name", "John Smith"))
	assert.Equal(t, "t***@example.com", svc.MaskValue("email", "test@example.com"))

	// Field not in the allowlist: value passes through even though a
	// strategy would match the name.
	assert.Equal(t, "John Smith", svc.MaskValue("nickname", "John Smith"))
}

func TestMaskValue_Disabled(t *testing.T) {
	svc := NewService(false, nil, DefaultStrategies())
	assert.Equal(t, "John Smith", svc.MaskValue("name", "John Smith"))
}

func TestDirectAccessors(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "J*** S****", svc.MaskName("John Smith"))
	assert.Equal(t, "t***@example.com", svc.MaskEmail("test@example.com"))
	assert.Equal(t, "***-***-*890", svc.MaskPhoneNumber("123-456-7890"))
}

func TestDirectAccessors_NoStrategiesFallThrough(t *testing.T) {
	svc := NewService(true, nil, nil)

	assert.Equal(t, "John Smith", svc.MaskName("John Smith"))
	assert.Equal(t, "test@example.com", svc.MaskEmail("test@example.com"))
	assert.Equal(t, "123-456-7890", svc.MaskPhoneNumber("123-456-7890"))
}

func TestRegisterStrategy_AppendsToEvaluationOrder(t *testing.T) {
	svc := NewService(true, []string{"name", "account"}, []Strategy{NameStrategy{}})

	// No account strategy registered yet.
	assert.Equal(t, "123456789", svc.MaskValue("account", "123456789"))

	svc.RegisterStrategy(AccountStrategy{})
	assert.Equal(t, "*****6789", svc.MaskValue("account", "123456789"))
}

// panicStrategy stands in for a faulty custom strategy registered at runtime.
type panicStrategy struct{}

func (panicStrategy) Matches(fieldName string) bool { return true }
func (panicStrategy) Apply(value string) string     { panic("strategy blew up") }

func TestMaskJSON_StrategyPanicFailsOpen(t *testing.T) {
	svc := NewService(true, nil, []Strategy{panicStrategy{}})

	input := `{"name": "John Smith"}`
	assert.NotPanics(t, func() {
		assert.Equal(t, input, svc.MaskJSON(input))
	})
}

func TestMaskValue_StrategyPanicFailsOpen(t *testing.T) {
	svc := NewService(true, nil, []Strategy{panicStrategy{}})

	assert.NotPanics(t, func() {
		assert.Equal(t, "John Smith", svc.MaskValue("name", "John Smith"))
		assert.Equal(t, "John Smith", svc.MaskName("John Smith"))
	})
}

func TestRegisterStrategy_ConcurrentWithMasking(t *testing.T) {
	svc := NewService(true, nil, []Strategy{NameStrategy{}})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				result := svc.MaskJSON(`{"name": "John Smith"}`)
				assert.Contains(t, result, `"name":"J*** S****"`)
			}
		}()
	}
	for i := 0; i < 100; i++ {
		svc.RegisterStrategy(PhoneStrategy{})
	}
	wg.Wait()
}
