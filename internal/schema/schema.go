package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"heritage-server/internal/domain"
)

// Schema wraps a compiled JSON Schema together with per-constraint message
// overrides so violations surface in the application's own wording instead of
// the library's default descriptions.
type Schema struct {
	compiled *gojsonschema.Schema
	messages map[string]string
}

// MustCompile compiles the given schema document. The overrides map is keyed
// by "<field>:<violation type>" (gojsonschema type names, e.g. "required",
// "number_lte", "string_gte", "enum", "pattern"); a "<field>:*" key matches
// any violation on that field. Panics on an invalid document, which is a
// programming error: route schemas are fixed at startup.
func MustCompile(doc map[string]any, overrides map[string]string) *Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("schema: compile: %v", err))
	}
	return &Schema{compiled: compiled, messages: overrides}
}

// Validate checks raw JSON against the schema. It returns nil when the
// document is valid, and a validation-classified LookupError whose message
// concatenates every violated constraint otherwise. Malformed JSON is itself
// a validation failure: nothing here ever reaches an upstream service.
func (s *Schema) Validate(raw []byte) *domain.LookupError {
	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return domain.NewValidationError("Validation failed: request body must be a JSON object")
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		msgs = append(msgs, s.message(violation))
	}
	return domain.NewValidationError("Validation failed: " + strings.Join(msgs, ", "))
}

func (s *Schema) message(violation gojsonschema.ResultError) string {
	field := violation.Field()
	if violation.Type() == "required" {
		if prop, ok := violation.Details()["property"].(string); ok {
			field = prop
		}
	}
	if msg, ok := s.messages[field+":"+violation.Type()]; ok {
		return msg
	}
	if msg, ok := s.messages[field+":*"]; ok {
		return msg
	}
	if violation.Type() == "required" {
		return field + " is required"
	}
	return field + ": " + violation.Description()
}
