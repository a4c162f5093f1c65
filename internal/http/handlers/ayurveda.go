package handlers

import (
	"net/http"
	"strings"

	"heritage-server/internal/domain"
	"heritage-server/internal/lookup"
	"heritage-server/internal/prompts"
	"heritage-server/internal/schema"
)

var ayurvedaRequestSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"age", "symptoms"},
	"properties": map[string]any{
		"age": map[string]any{
			"type":             "integer",
			"minimum":          1,
			"maximum":          150,
			"exclusiveMaximum": true,
		},
		"weight": map[string]any{
			"type":    "number",
			"minimum": 1,
			"maximum": 500,
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
	"weight:invalid_type": "Weight must be a number",
	"weight:number_gte":   "Weight must be at least 1",
	"weight:number_lte":   "Weight must be less than 500",
	"symptoms:required":   "Symptoms are required",
	"symptoms:string_gte": "Symptoms are required",
	"symptoms:pattern":    "Symptoms are required",
	"symptoms:string_lte": "Symptoms must be less than 2000 characters",
	"bodyType:enum":       "Body type must be one of vata, pitta, kapha",
})

type ayurvedaRequest struct {
	Age      float64 `json:"age"`
	Weight   float64 `json:"weight"`
	Symptoms string  `json:"symptoms"`
	BodyType string  `json:"bodyType"`
}

// AyurvedaRecommendations answers POST /v1/ayurveda/recommendations. The
// reply is free text for direct display, not a structured object.
func (a *App) AyurvedaRecommendations(w http.ResponseWriter, r *http.Request) {
	var req ayurvedaRequest
	if lerr := readRequest(r, ayurvedaRequestSchema, &req); lerr != nil {
		a.lookupError(w, lerr)
		return
	}
	req.Symptoms = strings.TrimSpace(req.Symptoms)

	text, lerr := a.Proxy.Text(r.Context(), lookup.Query{
		Kind: "ayurvedic-recommendations",
		Prompt: prompts.AyurvedaRecommendation(prompts.AyurvedaVars{
			Age:      int(req.Age),
			Weight:   req.Weight,
			BodyType: req.BodyType,
			Symptoms: req.Symptoms,
		}),
		FailureMessage: "Failed to generate recommendations",
	})
	if lerr != nil {
		a.lookupError(w, lerr)
		return
	}

	result := domain.Recommendation{Recommendations: text}
	a.record(r, "ayurvedic-recommendations", req, &result)
	a.json(w, http.StatusOK, &result)
}
