package handlers

import (
	"net/http"
	"strings"

	"heritage-server/internal/domain"
	"heritage-server/internal/lookup"
	"heritage-server/internal/prompts"
	"heritage-server/internal/schema"
)

var sanskritRequestSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"text"},
	"properties": map[string]any{
		"text": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": 5000,
			"pattern":   `\S`,
		},
		"language": map[string]any{
			"type":      "string",
			"maxLength": 50,
		},
	},
}, map[string]string{
	"text:required":       "Sanskrit text is required",
	"text:string_gte":     "Sanskrit text is required",
	"text:pattern":        "Sanskrit text is required",
	"text:string_lte":     "Text must be less than 5000 characters",
	"language:string_lte": "Language must be less than 50 characters",
})

type sanskritTranslateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// SanskritTranslate answers POST /v1/sanskrit/translate.
func (a *App) SanskritTranslate(w http.ResponseWriter, r *http.Request) {
	var req sanskritTranslateRequest
	if lerr := readRequest(r, sanskritRequestSchema, &req); lerr != nil {
		a.lookupError(w, lerr)
		return
	}
	req.Text = strings.TrimSpace(req.Text)

	text, lerr := a.Proxy.Text(r.Context(), lookup.Query{
		Kind:           "translate-sanskrit",
		Prompt:         prompts.SanskritTranslation(req.Text, req.Language),
		FailureMessage: "Failed to translate Sanskrit text",
	})
	if lerr != nil {
		a.lookupError(w, lerr)
		return
	}

	result := domain.Translation{Translation: text}
	a.record(r, "translate-sanskrit", req, &result)
	a.json(w, http.StatusOK, &result)
}
