package prompts

import (
	"fmt"
	"strings"
)

const sanskritSystem = `You are an expert in Sanskrit language and ancient Indian texts. Translate Sanskrit text accurately, preserving the cultural and philosophical context. Provide clear, poetic translations that capture the essence of the original text.`

// SanskritTranslation renders the translation prompt. The target language
// defaults to English when empty.
func SanskritTranslation(text, language string) Prompt {
	language = strings.TrimSpace(language)
	if language == "" {
		language = "English"
	}
	return Prompt{
		System: sanskritSystem,
		User:   fmt.Sprintf("Translate this Sanskrit text to %s:\n\n%s", language, text),
	}
}
