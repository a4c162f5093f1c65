package prompts

import "fmt"

const festivalSystem = `You are an expert on Indian festivals, culture, and religious traditions across all faiths. You provide accurate, detailed, and respectful information in JSON format.`

const festivalUserTemplate = `As a cultural expert on Indian festivals, provide detailed information about the festival: %q.

This can be ANY festival from ANY religion celebrated in India, including:
- Hindu festivals (Diwali, Holi, Navaratri, Pongal, Onam, Durga Puja, Ganesh Chaturthi, etc.)
- Islamic festivals (Eid ul-Fitr, Eid ul-Adha, Muharram, Ramadan, etc.)
- Christian festivals (Christmas, Easter, Good Friday, etc.)
- Sikh festivals (Baisakhi, Guru Nanak Jayanti, Lohri, etc.)
- Buddhist festivals (Buddha Purnima, Losar, Hemis Festival, etc.)
- Jain festivals (Mahavir Jayanti, Paryushana, Diwali, etc.)
- Regional festivals (Bihu, Makar Sankranti, Ugadi, etc.)
- National festivals (Republic Day, Independence Day, Gandhi Jayanti, etc.)

Please provide:
1. Full name of the festival
2. Religion/origin
3. Main regions where celebrated in India
4. Time of year (specific dates or period)
5. Historical background and origin story (2-3 paragraphs)
6. Religious/cultural significance
7. How to celebrate (detailed description of customs and rituals)
8. Key traditions and practices (list format)
9. Special foods prepared during the festival

Format the response as a JSON object with these exact fields:
{
  "name": "Festival name",
  "religion": "Religion/origin",
  "region": "Main regions",
  "timeOfYear": "When celebrated",
  "history": "Historical background and origin",
  "significance": "Religious/cultural significance",
  "howToCelebrate": "How people celebrate",
  "traditions": ["Tradition 1", "Tradition 2", ...],
  "specialFoods": "Special foods and their significance"
}

If this is not a recognized festival in India, return: { "error": "Festival not found or not celebrated in India" }`

// FestivalSearch renders the festival lookup prompt.
func FestivalSearch(festivalName string) Prompt {
	return Prompt{
		System: festivalSystem,
		User:   fmt.Sprintf(festivalUserTemplate, festivalName),
	}
}
