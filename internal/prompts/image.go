package prompts

import (
	"fmt"
	"strings"
)

// MuseumImage renders the generative image prompt for an already-resolved
// museum. The negative constraints keep the generated picture tied to the
// real building: exterior only, no invented features.
func MuseumImage(name, location, period, architecture, description string) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "A photorealistic exterior photograph of %s in %s, India.", name, location)
	if period != "" {
		fmt.Fprintf(sb, " Established %s.", period)
	}
	if architecture != "" {
		fmt.Fprintf(sb, " Architecture: %s.", architecture)
	}
	if description != "" {
		fmt.Fprintf(sb, " %s", description)
	}
	sb.WriteString(" Daylight, realistic colors, no people in the foreground.")
	sb.WriteString(" Do not invent features that do not exist; exterior view only; photorealistic, not an illustration.")
	return sb.String()
}
