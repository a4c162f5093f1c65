package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"heritage-server/internal/domain"
	"heritage-server/internal/lookup"
	"heritage-server/internal/prompts"
	"heritage-server/internal/schema"
)

var holyBookRequestSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"bookName"},
	"properties": map[string]any{
		"bookName": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": 200,
			"pattern":   `\S`,
		},
	},
}, map[string]string{
	"bookName:required":   "Book name is required",
	"bookName:string_gte": "Book name is required",
	"bookName:pattern":    "Book name is required",
	"bookName:string_lte": "Book name must be less than 200 characters",
})

var holyBookResultSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"title", "originalLanguage", "period", "overview", "keyTeachings", "chapters", "culturalSignificance"},
	"properties": map[string]any{
		"title":                map[string]any{"type": "string"},
		"originalLanguage":     map[string]any{"type": "string"},
		"period":               map[string]any{"type": "string"},
		"overview":             map[string]any{"type": "string"},
		"keyTeachings":         map[string]any{"type": "array"},
		"chapters":             map[string]any{"type": "array"},
		"culturalSignificance": map[string]any{"type": "string"},
	},
}, nil)

type holyBookSearchRequest struct {
	BookName string `json:"bookName"`
}

// HolyBookSearch answers POST /v1/holy-books/search. No image enrichment:
// the page renders the text content only.
func (a *App) HolyBookSearch(w http.ResponseWriter, r *http.Request) {
	var req holyBookSearchRequest
	if lerr := readRequest(r, holyBookRequestSchema, &req); lerr != nil {
		a.lookupError(w, lerr)
		return
	}
	req.BookName = strings.TrimSpace(req.BookName)

	raw, lerr := a.Proxy.Structured(r.Context(), lookup.Query{
		Kind:           "holy-book-search",
		Prompt:         prompts.HolyBookSearch(req.BookName),
		ResultSchema:   holyBookResultSchema,
		FailureMessage: "Failed to get book information",
	})
	if lerr != nil {
		a.lookupError(w, lerr)
		return
	}

	var result domain.HolyBookResult
	if err := json.Unmarshal(raw, &result); err != nil {
		a.lookupError(w, domain.NewParseError(err))
		return
	}

	a.record(r, "holy-book-search", req, &result)
	a.json(w, http.StatusOK, &result)
}
