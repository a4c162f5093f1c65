package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"heritage-server/internal/domain"
	"heritage-server/internal/enrich"
	"heritage-server/internal/lookup"
	"heritage-server/internal/prompts"
	"heritage-server/internal/schema"
)

var templeRequestSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"templeName"},
	"properties": map[string]any{
		"templeName": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": 200,
			"pattern":   `\S`,
		},
	},
}, map[string]string{
	"templeName:required":   "Temple name is required",
	"templeName:string_gte": "Temple name is required",
	"templeName:pattern":    "Temple name is required",
	"templeName:string_lte": "Temple name must be less than 200 characters",
})

var templeResultSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"name", "location", "period", "history", "architecture", "features"},
	"properties": map[string]any{
		"name":         map[string]any{"type": "string"},
		"location":     map[string]any{"type": "string"},
		"period":       map[string]any{"type": "string"},
		"history":      map[string]any{"type": "string"},
		"architecture": map[string]any{"type": "string"},
		"features":     map[string]any{"type": "array"},
	},
}, nil)

type templeSearchRequest struct {
	TempleName string `json:"templeName"`
}

// TempleSearch answers POST /v1/architecture/search.
func (a *App) TempleSearch(w http.ResponseWriter, r *http.Request) {
	var req templeSearchRequest
	if lerr := readRequest(r, templeRequestSchema, &req); lerr != nil {
		a.lookupError(w, lerr)
		return
	}
	req.TempleName = strings.TrimSpace(req.TempleName)

	raw, lerr := a.Proxy.Structured(r.Context(), lookup.Query{
		Kind:           "temple-search",
		Prompt:         prompts.TempleSearch(req.TempleName),
		ResultSchema:   templeResultSchema,
		FailureMessage: "Failed to get temple information",
	})
	if lerr != nil {
		a.lookupError(w, lerr)
		return
	}

	var result domain.TempleResult
	if err := json.Unmarshal(raw, &result); err != nil {
		a.lookupError(w, domain.NewParseError(err))
		return
	}

	a.Enricher.Illustrate(r.Context(), enrich.StrategyEncyclopedia, &result, "")
	a.record(r, "temple-search", req, &result)
	a.json(w, http.StatusOK, &result)
}
