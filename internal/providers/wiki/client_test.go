package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// wikiFixture serves the MediaWiki query API shapes the client depends on.
type wikiFixture struct {
	searchTitle string
	thumbnail   string
	original    string
}

func (f wikiFixture) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("list") == "search":
			resp := map[string]any{"query": map[string]any{"search": []any{}}}
			if f.searchTitle != "" {
				resp = map[string]any{"query": map[string]any{
					"search": []map[string]any{{"title": f.searchTitle}},
				}}
			}
			_ = json.NewEncoder(w).Encode(resp)
		case q.Get("prop") == "pageimages" && q.Get("piprop") == "original":
			page := map[string]any{}
			if f.original != "" {
				page["original"] = map[string]any{"source": f.original}
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"query": map[string]any{"pages": map[string]any{"1": page}},
			})
		case q.Get("prop") == "pageimages":
			page := map[string]any{}
			if f.thumbnail != "" {
				page["thumbnail"] = map[string]any{"source": f.thumbnail}
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"query": map[string]any{"pages": map[string]any{"1": page}},
			})
		default:
			http.NotFound(w, r)
		}
	}
}

type commonsFixture struct {
	fileTitle string
	fileURL   string
}

func (f commonsFixture) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("list") == "search":
			resp := map[string]any{"query": map[string]any{"search": []any{}}}
			if f.fileTitle != "" {
				resp = map[string]any{"query": map[string]any{
					"search": []map[string]any{{"title": f.fileTitle}},
				}}
			}
			_ = json.NewEncoder(w).Encode(resp)
		case q.Get("prop") == "imageinfo":
			page := map[string]any{}
			if f.fileURL != "" {
				page["imageinfo"] = []map[string]any{{"url": f.fileURL}}
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"query": map[string]any{"pages": map[string]any{"1": page}},
			})
		default:
			http.NotFound(w, r)
		}
	}
}

func newTestClient(t *testing.T, wikipedia, commons http.HandlerFunc) *Client {
	t.Helper()
	wikiSrv := httptest.NewServer(wikipedia)
	t.Cleanup(wikiSrv.Close)
	commonsSrv := httptest.NewServer(commons)
	t.Cleanup(commonsSrv.Close)
	return NewClient(Options{
		WikipediaBaseURL: wikiSrv.URL,
		CommonsBaseURL:   commonsSrv.URL,
		HTTPClient:       wikiSrv.Client(),
	})
}

func TestFindImagePrefersPageThumbnail(t *testing.T) {
	client := newTestClient(t,
		wikiFixture{
			searchTitle: "Brihadisvara Temple",
			thumbnail:   "https://upload.example/thumb.jpg",
		}.handler(),
		commonsFixture{}.handler(),
	)
	url, err := client.FindImage(context.Background(), "Brihadeeswara Temple")
	if err != nil {
		t.Fatalf("FindImage: %v", err)
	}
	if url != "https://upload.example/thumb.jpg" {
		t.Fatalf("url = %q", url)
	}
}

func TestFindImageFallsBackToOriginal(t *testing.T) {
	client := newTestClient(t,
		wikiFixture{
			searchTitle: "Brihadisvara Temple",
			original:    "https://upload.example/full.jpg",
		}.handler(),
		commonsFixture{}.handler(),
	)
	url, err := client.FindImage(context.Background(), "Brihadeeswara Temple")
	if err != nil {
		t.Fatalf("FindImage: %v", err)
	}
	if url != "https://upload.example/full.jpg" {
		t.Fatalf("url = %q", url)
	}
}

func TestFindImageFallsBackToCommons(t *testing.T) {
	client := newTestClient(t,
		wikiFixture{}.handler(),
		commonsFixture{
			fileTitle: "File:Diwali lamps.jpg",
			fileURL:   "https://upload.example/commons.jpg",
		}.handler(),
	)
	url, err := client.FindImage(context.Background(), "Diwali festival")
	if err != nil {
		t.Fatalf("FindImage: %v", err)
	}
	if url != "https://upload.example/commons.jpg" {
		t.Fatalf("url = %q", url)
	}
}

func TestFindImageReportsNoImage(t *testing.T) {
	client := newTestClient(t, wikiFixture{}.handler(), commonsFixture{}.handler())
	_, err := client.FindImage(context.Background(), "Brihadeeswara Temple")
	if !errors.Is(err, ErrNoImage) {
		t.Fatalf("err = %v, want ErrNoImage", err)
	}
}

func TestFindImageEmptySubject(t *testing.T) {
	client := newTestClient(t, wikiFixture{}.handler(), commonsFixture{}.handler())
	if _, err := client.FindImage(context.Background(), "   "); !errors.Is(err, ErrNoImage) {
		t.Fatalf("err = %v, want ErrNoImage", err)
	}
}

func TestNormalizeSubject(t *testing.T) {
	client := NewClient(Options{})
	cases := []struct{ in, want string }{
		{"brihadeeswara  temple", "Brihadeeswara Temple"},
		{"Konark Sun Temple", "Konark Sun Temple"},
		{"TAJ Mahal", "TAJ Mahal"},
	}
	for _, tc := range cases {
		if got := client.normalizeSubject(tc.in); got != tc.want {
			t.Errorf("normalizeSubject(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
