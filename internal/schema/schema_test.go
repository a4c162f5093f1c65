package schema

import (
	"strings"
	"testing"

	"heritage-server/internal/domain"
)

var profileSchema = MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"age", "symptoms"},
	"properties": map[string]any{
		"age": map[string]any{
			"type":             "integer",
			"minimum":          1,
			"maximum":          150,
			"exclusiveMaximum": true,
		},
		"symptoms": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": 2000,
			"pattern":   `\S`,
		},
		"bodyType": map[string]any{
			"type": "string",
			"enum": []any{"vata", "pitta", "kapha"},
		},
	},
}, map[string]string{
	"age:required":        "Age is required",
	"age:invalid_type":    "Age must be a number",
	"age:number_gte":      "Age must be at least 1",
	"age:number_lt":       "Age must be less than 150",
	"symptoms:required":   "Symptoms are required",
	"symptoms:string_gte": "Symptoms are required",
	"symptoms:pattern":    "Symptoms are required",
	"symptoms:string_lte": "Symptoms must be less than 2000 characters",
	"bodyType:enum":       "Body type must be one of vata, pitta, kapha",
})

func TestValidateAccepts(t *testing.T) {
	if lerr := profileSchema.Validate([]byte(`{"age":30,"symptoms":"fatigue","bodyType":"vata"}`)); lerr != nil {
		t.Fatalf("unexpected error: %v", lerr)
	}
}

func TestValidateRejectsWithOverrideMessages(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"age over limit", `{"age":200,"symptoms":"fatigue"}`, "Age must be less than 150"},
		{"age at exclusive limit", `{"age":150,"symptoms":"fatigue"}`, "Age must be less than 150"},
		{"age below minimum", `{"age":0,"symptoms":"fatigue"}`, "Age must be at least 1"},
		{"age wrong type", `{"age":"thirty","symptoms":"fatigue"}`, "Age must be a number"},
		{"missing symptoms", `{"age":30}`, "Symptoms are required"},
		{"blank symptoms", `{"age":30,"symptoms":"   "}`, "Symptoms are required"},
		{"bad body type", `{"age":30,"symptoms":"fatigue","bodyType":"fire"}`, "Body type must be one of vata, pitta, kapha"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lerr := profileSchema.Validate([]byte(tc.body))
			if lerr == nil {
				t.Fatal("expected a validation error")
			}
			if lerr.Class != domain.ClassValidation {
				t.Fatalf("class = %q, want validation", lerr.Class)
			}
			if !strings.HasPrefix(lerr.Message, "Validation failed: ") {
				t.Fatalf("message %q lacks prefix", lerr.Message)
			}
			if !strings.Contains(lerr.Message, tc.want) {
				t.Fatalf("message %q does not contain %q", lerr.Message, tc.want)
			}
		})
	}
}

func TestValidateJoinsMultipleViolations(t *testing.T) {
	lerr := profileSchema.Validate([]byte(`{}`))
	if lerr == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(lerr.Message, "Age is required") || !strings.Contains(lerr.Message, "Symptoms are required") {
		t.Fatalf("message %q should name both missing fields", lerr.Message)
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	lerr := profileSchema.Validate([]byte(`{"age":`))
	if lerr == nil {
		t.Fatal("expected a validation error")
	}
	if lerr.Class != domain.ClassValidation {
		t.Fatalf("class = %q, want validation", lerr.Class)
	}
}
