package domain

// Illustrable is implemented by results that carry an optional image resolved
// by the enrichment step. SearchTerm is the subject handed to the
// encyclopedia lookup; SetImage attaches the resolved URL. A nil image is
// valid and means enrichment found nothing.
type Illustrable interface {
	SearchTerm() string
	SetImage(url string)
}

// TempleResult describes an architectural site, monument or temple.
type TempleResult struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	History      string   `json:"history"`
	Architecture string   `json:"architecture"`
	Deity        string   `json:"deity,omitempty"`
	Features     []string `json:"features"`
	Timings      string   `json:"timings,omitempty"`
	ImageURL     *string  `json:"imageUrl"`
}

func (t *TempleResult) SearchTerm() string { return t.Name }

func (t *TempleResult) SetImage(url string) { t.ImageURL = &url }

// FestivalResult describes a festival celebrated in India.
type FestivalResult struct {
	Name           string   `json:"name"`
	Religion       string   `json:"religion"`
	Region         string   `json:"region"`
	TimeOfYear     string   `json:"timeOfYear"`
	History        string   `json:"history"`
	Significance   string   `json:"significance"`
	HowToCelebrate string   `json:"howToCelebrate"`
	Traditions     []string `json:"traditions"`
	SpecialFoods   string   `json:"specialFoods"`
	ImageURL       *string  `json:"imageUrl"`
}

func (f *FestivalResult) SearchTerm() string { return f.Name + " festival" }

func (f *FestivalResult) SetImage(url string) { f.ImageURL = &url }

// Chapter is one section summary inside a holy book result.
type Chapter struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// HolyBookResult describes a religious or spiritual text.
type HolyBookResult struct {
	Title                string    `json:"title"`
	OriginalLanguage     string    `json:"originalLanguage"`
	Period               string    `json:"period"`
	Overview             string    `json:"overview"`
	KeyTeachings         []string  `json:"keyTeachings"`
	Chapters             []Chapter `json:"chapters"`
	CulturalSignificance string    `json:"culturalSignificance"`
}

// MuseumResult describes a museum in India. The image field is named
// imageData for compatibility with the page that renders it.
type MuseumResult struct {
	Name                 string  `json:"name"`
	Location             string  `json:"location"`
	Period               string  `json:"period"`
	History              string  `json:"history"`
	Collections          string  `json:"collections"`
	Architecture         string  `json:"architecture"`
	CulturalSignificance string  `json:"culturalSignificance"`
	Founder              string  `json:"founder"`
	Type                 string  `json:"type"`
	ImageDescription     string  `json:"imageDescription"`
	ImageData            *string `json:"imageData"`
}

func (m *MuseumResult) SearchTerm() string { return m.Name + " museum" }

func (m *MuseumResult) SetImage(url string) { m.ImageData = &url }

// Recommendation is the free-text Ayurvedic answer.
type Recommendation struct {
	Recommendations string `json:"recommendations"`
}

// Translation is the free-text Sanskrit translation answer.
type Translation struct {
	Translation string `json:"translation"`
}
