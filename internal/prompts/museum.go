package prompts

import "fmt"

const museumSystem = `You are an expert on Indian museums and cultural institutions. You provide accurate, detailed information ONLY about museums in India in JSON format. If asked about temples, monuments, or other non-museum sites, you return an error.`

const museumUserTemplate = `As a museum expert, provide detailed information about: %q.

This should ONLY be a MUSEUM in India, including:

MUSEUMS IN INDIA:
- National Museum (New Delhi) - India's largest museum with artifacts from prehistoric to modern times
- Indian Museum (Kolkata) - Oldest museum in India with rare collections
- Chhatrapati Shivaji Maharaj Vastu Sangrahalaya / CSMVS (Mumbai) - Art, archaeology, natural history
- Salar Jung Museum (Hyderabad) - One of the largest museums with global art collections
- National Gallery of Modern Art / NGMA (Delhi, Mumbai, Bangalore) - Modern and contemporary Indian art
- Dr. Bhau Daji Lad Museum (Mumbai) - Decorative arts and industrial arts
- Government Museum (Chennai/Egmore Museum) - Bronze gallery, archaeological artifacts
- Shankar's International Dolls Museum (Delhi) - Dolls from around the world
- Victoria Memorial Hall (Kolkata) - British colonial history and art
- Birla Industrial & Technological Museum (Kolkata) - Science and technology
- Tribal Museums (Bhopal, Odisha, Chhattisgarh) - Indigenous cultures
- Railway Museums (Delhi, Mysore) - Railway heritage
- Regional museums, specialized museums, art galleries
- State museums, archaeological museums, folk art museums

If the query is NOT a museum in India, return: { "error": "This is not a museum in India. Please search for museums only." }

Please provide:
1. Full name and location in India
2. Establishment year and historical period
3. Detailed history (2-3 paragraphs about its origins, significance, and evolution)
4. Collections and exhibits (describe major galleries, notable artifacts, and special collections)
5. Architectural style of the building (if notable)
6. Cultural and historical significance
7. Founder or key benefactors
8. Visiting information (timings, entry fees if known)

Format the response as a JSON object with these exact fields:
{
  "name": "Full name",
  "location": "City, State",
  "period": "Establishment year",
  "history": "Detailed history text",
  "collections": "Description of collections, exhibits, and galleries",
  "architecture": "Architectural description of the museum building",
  "culturalSignificance": "Cultural/historical significance",
  "founder": "Founder or key benefactors",
  "type": "Museum",
  "imageDescription": "A detailed description for generating an image"
}

If this is not a museum in India, return: { "error": "This is not a museum in India. Please search for museums only." }`

// MuseumSearch renders the museum lookup prompt.
func MuseumSearch(query string) Prompt {
	return Prompt{
		System: museumSystem,
		User:   fmt.Sprintf(museumUserTemplate, query),
	}
}
