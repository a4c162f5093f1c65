package prompts

import (
	"fmt"
	"strings"
)

const ayurvedaSystem = `You are an expert Ayurvedic practitioner with deep knowledge of ancient Indian medicine, herbs, and holistic healing practices. Provide accurate, safe, and traditional Ayurvedic recommendations.`

// AyurvedaVars holds the validated patient fields interpolated into the
// recommendation prompt. Weight and BodyType are optional.
type AyurvedaVars struct {
	Age      int
	Weight   float64
	BodyType string
	Symptoms string
}

// AyurvedaRecommendation renders the personalized recommendation prompt. The
// answer is free text meant for direct display, not JSON.
func AyurvedaRecommendation(vars AyurvedaVars) Prompt {
	weight := "Not specified"
	if vars.Weight > 0 {
		weight = fmt.Sprintf("%g kg", vars.Weight)
	}
	bodyType := strings.TrimSpace(vars.BodyType)
	if bodyType == "" {
		bodyType = "Not specified"
	}

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "As an Ayurvedic health expert, provide personalized recommendations based on:\n")
	fmt.Fprintf(sb, "- Age: %d years\n", vars.Age)
	fmt.Fprintf(sb, "- Weight: %s\n", weight)
	fmt.Fprintf(sb, "- Body Type (Dosha): %s\n", bodyType)
	fmt.Fprintf(sb, "- Symptoms: %s\n\n", vars.Symptoms)
	sb.WriteString(`Please provide:
1. Dosha analysis and balance recommendations
2. Herbal remedies (with Sanskrit and English names)
3. Dietary suggestions (foods to include/avoid)
4. Lifestyle recommendations (daily routine, yoga, meditation)
5. Seasonal considerations

Format the response in a clear, structured manner suitable for a health dashboard.`)

	return Prompt{System: ayurvedaSystem, User: sb.String()}
}
