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

const museumNotFoundMessage = "This is not a museum in India. Please search for museums only."

var museumRequestSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"query"},
	"properties": map[string]any{
		"query": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": 200,
			"pattern":   `\S`,
		},
	},
}, map[string]string{
	"query:required":   "Query is required",
	"query:string_gte": "Query is required",
	"query:pattern":    "Query is required",
	"query:string_lte": "Query must be less than 200 characters",
})

var museumResultSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"name", "location", "period", "history", "collections", "culturalSignificance", "type"},
	"properties": map[string]any{
		"name":                 map[string]any{"type": "string"},
		"location":             map[string]any{"type": "string"},
		"period":               map[string]any{"type": "string"},
		"history":              map[string]any{"type": "string"},
		"collections":          map[string]any{"type": "string"},
		"culturalSignificance": map[string]any{"type": "string"},
		"type":                 map[string]any{"type": "string"},
	},
}, nil)

type museumSearchRequest struct {
	Query string `json:"query"`
}

// MuseumSearch answers POST /v1/museums/search. The reply is accepted only
// when the model classified the subject as a museum; anything else is a
// domain not-found. The image prefers a generated exterior render and falls
// back to the encyclopedia lookup.
func (a *App) MuseumSearch(w http.ResponseWriter, r *http.Request) {
	var req museumSearchRequest
	if lerr := readRequest(r, museumRequestSchema, &req); lerr != nil {
		a.lookupError(w, lerr)
		return
	}
	req.Query = strings.TrimSpace(req.Query)

	raw, lerr := a.Proxy.Structured(r.Context(), lookup.Query{
		Kind:           "museum-search",
		Prompt:         prompts.MuseumSearch(req.Query),
		ResultSchema:   museumResultSchema,
		FailureMessage: "Failed to get museum information",
	})
	if lerr != nil {
		a.lookupError(w, lerr)
		return
	}

	var result domain.MuseumResult
	if err := json.Unmarshal(raw, &result); err != nil {
		a.lookupError(w, domain.NewParseError(err))
		return
	}
	if !strings.EqualFold(strings.TrimSpace(result.Type), "museum") {
		a.lookupError(w, domain.NewNotFoundError(museumNotFoundMessage))
		return
	}

	imagePrompt := prompts.MuseumImage(result.Name, result.Location, result.Period, result.Architecture, result.ImageDescription)
	a.Enricher.Illustrate(r.Context(), enrich.StrategyGenerative, &result, imagePrompt)
	a.record(r, "museum-search", req, &result)
	a.json(w, http.StatusOK, &result)
}
