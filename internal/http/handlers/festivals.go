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

var festivalRequestSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"festivalName"},
	"properties": map[string]any{
		"festivalName": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": 200,
			"pattern":   `\S`,
		},
	},
}, map[string]string{
	"festivalName:required":   "Festival name is required",
	"festivalName:string_gte": "Festival name is required",
	"festivalName:pattern":    "Festival name is required",
	"festivalName:string_lte": "Festival name must be less than 200 characters",
})

var festivalResultSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"name", "religion", "region", "timeOfYear", "history", "significance", "howToCelebrate", "traditions", "specialFoods"},
	"properties": map[string]any{
		"name":           map[string]any{"type": "string"},
		"religion":       map[string]any{"type": "string"},
		"region":         map[string]any{"type": "string"},
		"timeOfYear":     map[string]any{"type": "string"},
		"history":        map[string]any{"type": "string"},
		"significance":   map[string]any{"type": "string"},
		"howToCelebrate": map[string]any{"type": "string"},
		"traditions":     map[string]any{"type": "array"},
		"specialFoods":   map[string]any{"type": "string"},
	},
}, nil)

type festivalSearchRequest struct {
	FestivalName string `json:"festivalName"`
}

// FestivalSearch answers POST /v1/festivals/search.
func (a *App) FestivalSearch(w http.ResponseWriter, r *http.Request) {
	var req festivalSearchRequest
	if lerr := readRequest(r, festivalRequestSchema, &req); lerr != nil {
		a.lookupError(w, lerr)
		return
	}
	req.FestivalName = strings.TrimSpace(req.FestivalName)

	raw, lerr := a.Proxy.Structured(r.Context(), lookup.Query{
		Kind:           "festival-search",
		Prompt:         prompts.FestivalSearch(req.FestivalName),
		ResultSchema:   festivalResultSchema,
		FailureMessage: "Failed to get festival information",
	})
	if lerr != nil {
		a.lookupError(w, lerr)
		return
	}

	var result domain.FestivalResult
	if err := json.Unmarshal(raw, &result); err != nil {
		a.lookupError(w, domain.NewParseError(err))
		return
	}

	a.Enricher.Illustrate(r.Context(), enrich.StrategyEncyclopedia, &result, "")
	a.record(r, "festival-search", req, &result)
	a.json(w, http.StatusOK, &result)
}
