package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"heritage-server/internal/domain"
	"heritage-server/internal/providers/imagegen"
	"heritage-server/internal/providers/wiki"
)

func stubWiki(t *testing.T, imageURL string) *wiki.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("list") == "search" {
			if imageURL == "" {
				_ = json.NewEncoder(w).Encode(map[string]any{"query": map[string]any{"search": []any{}}})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"query": map[string]any{
				"search": []map[string]any{{"title": "Some Page"}},
			}})
			return
		}
		page := map[string]any{}
		if imageURL != "" {
			page["thumbnail"] = map[string]any{"source": imageURL}
			page["original"] = map[string]any{"source": imageURL}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"query": map[string]any{"pages": map[string]any{"1": page}},
		})
	}))
	t.Cleanup(srv.Close)
	return wiki.NewClient(wiki.Options{
		WikipediaBaseURL: srv.URL,
		CommonsBaseURL:   srv.URL,
		HTTPClient:       srv.Client(),
	})
}

func stubImageGen(t *testing.T, imageURL string, status int) *imagegen.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != 0 {
			w.WriteHeader(status)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"url": imageURL}},
		})
	}))
	t.Cleanup(srv.Close)
	client, err := imagegen.NewClient(imagegen.Options{
		APIKey:     "k",
		Model:      "m",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("imagegen.NewClient: %v", err)
	}
	return client
}

func TestIllustrateNoneLeavesImageUnset(t *testing.T) {
	e := &Enricher{Wiki: stubWiki(t, "https://upload.example/x.jpg"), Log: zerolog.Nop()}
	result := &domain.TempleResult{Name: "Virupaksha Temple"}
	e.Illustrate(context.Background(), StrategyNone, result, "")
	if result.ImageURL != nil {
		t.Fatalf("image = %q, want nil", *result.ImageURL)
	}
}

func TestIllustrateEncyclopedia(t *testing.T) {
	e := &Enricher{Wiki: stubWiki(t, "https://upload.example/temple.jpg"), Log: zerolog.Nop()}
	result := &domain.TempleResult{Name: "Virupaksha Temple"}
	e.Illustrate(context.Background(), StrategyEncyclopedia, result, "")
	if result.ImageURL == nil || *result.ImageURL != "https://upload.example/temple.jpg" {
		t.Fatalf("image = %v", result.ImageURL)
	}
}

func TestIllustrateFailureLeavesResultIntact(t *testing.T) {
	e := &Enricher{Wiki: stubWiki(t, ""), Log: zerolog.Nop()}
	result := &domain.TempleResult{Name: "Virupaksha Temple", Location: "Hampi"}
	e.Illustrate(context.Background(), StrategyEncyclopedia, result, "")
	if result.ImageURL != nil {
		t.Fatalf("image = %q, want nil", *result.ImageURL)
	}
	if result.Location != "Hampi" {
		t.Fatalf("location mutated: %q", result.Location)
	}
}

func TestIllustrateGenerative(t *testing.T) {
	e := &Enricher{
		Wiki:     stubWiki(t, ""),
		ImageGen: stubImageGen(t, "https://images.example/museum.png", 0),
		Log:      zerolog.Nop(),
	}
	result := &domain.MuseumResult{Name: "National Museum"}
	e.Illustrate(context.Background(), StrategyGenerative, result, "exterior view")
	if result.ImageData == nil || *result.ImageData != "https://images.example/museum.png" {
		t.Fatalf("image = %v", result.ImageData)
	}
}

func TestIllustrateGenerativeFallsBackToEncyclopedia(t *testing.T) {
	e := &Enricher{
		Wiki:     stubWiki(t, "https://upload.example/museum.jpg"),
		ImageGen: stubImageGen(t, "", http.StatusInternalServerError),
		Log:      zerolog.Nop(),
	}
	result := &domain.MuseumResult{Name: "National Museum"}
	e.Illustrate(context.Background(), StrategyGenerative, result, "exterior view")
	if result.ImageData == nil || *result.ImageData != "https://upload.example/museum.jpg" {
		t.Fatalf("image = %v", result.ImageData)
	}
}

func TestIllustrateGenerativeWithoutGenerator(t *testing.T) {
	e := &Enricher{Wiki: stubWiki(t, "https://upload.example/museum.jpg"), Log: zerolog.Nop()}
	result := &domain.MuseumResult{Name: "National Museum"}
	e.Illustrate(context.Background(), StrategyGenerative, result, "exterior view")
	if result.ImageData == nil || *result.ImageData != "https://upload.example/museum.jpg" {
		t.Fatalf("image = %v", result.ImageData)
	}
}
