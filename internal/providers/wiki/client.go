// Package wiki resolves a real photograph for a named subject through the
// public MediaWiki APIs: Wikipedia page search and page images first, then a
// Wikimedia Commons file search as fallback. Every failure is reported to the
// caller, who treats the image as optional.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultTimeout = 10 * time.Second

// ErrNoImage is returned when neither Wikipedia nor Commons has a usable image.
var ErrNoImage = errors.New("wiki: no image found")

type Options struct {
	WikipediaBaseURL string
	CommonsBaseURL   string
	HTTPClient       *http.Client
}

type Client struct {
	wikipediaURL string
	commonsURL   string
	client       *http.Client
	titler       cases.Caser
}

func NewClient(opts Options) *Client {
	wikipediaURL := strings.TrimSpace(opts.WikipediaBaseURL)
	if wikipediaURL == "" {
		wikipediaURL = "https://en.wikipedia.org/w/api.php"
	}
	commonsURL := strings.TrimSpace(opts.CommonsBaseURL)
	if commonsURL == "" {
		commonsURL = "https://commons.wikimedia.org/w/api.php"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		wikipediaURL: wikipediaURL,
		commonsURL:   commonsURL,
		client:       client,
		titler:       cases.Title(language.English),
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type pagesResponse struct {
	Query struct {
		Pages map[string]struct {
			Thumbnail *struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
			Original *struct {
				Source string `json:"source"`
			} `json:"original"`
			ImageInfo []struct {
				URL string `json:"url"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

// FindImage returns a direct image URL for the subject, preferring a
// Wikipedia page thumbnail, then the page's original image, then the first
// Commons file hit. Returns ErrNoImage when everything comes up empty.
func (c *Client) FindImage(ctx context.Context, subject string) (string, error) {
	subject = c.normalizeSubject(subject)
	if subject == "" {
		return "", ErrNoImage
	}

	title, err := c.searchTitle(ctx, subject)
	if err == nil && title != "" {
		if src, err := c.pageThumbnail(ctx, title); err == nil && src != "" {
			return src, nil
		}
	}
	if src, err := c.pageOriginal(ctx, subject); err == nil && src != "" {
		return src, nil
	}
	return c.commonsImage(ctx, subject)
}

// normalizeSubject collapses whitespace and title-cases an all-lowercase
// query so it matches encyclopedia page naming.
func (c *Client) normalizeSubject(subject string) string {
	subject = strings.Join(strings.Fields(subject), " ")
	if subject != "" && subject == strings.ToLower(subject) {
		subject = c.titler.String(subject)
	}
	return subject
}

func (c *Client) searchTitle(ctx context.Context, subject string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", subject)
	params.Set("format", "json")
	params.Set("origin", "*")

	var out searchResponse
	if err := c.get(ctx, c.wikipediaURL, params, &out); err != nil {
		return "", err
	}
	if len(out.Query.Search) == 0 {
		return "", ErrNoImage
	}
	return out.Query.Search[0].Title, nil
}

func (c *Client) pageThumbnail(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "pageimages")
	params.Set("pithumbsize", "1200")
	params.Set("format", "json")
	params.Set("origin", "*")

	var out pagesResponse
	if err := c.get(ctx, c.wikipediaURL, params, &out); err != nil {
		return "", err
	}
	for _, page := range out.Query.Pages {
		if page.Thumbnail != nil && page.Thumbnail.Source != "" {
			return page.Thumbnail.Source, nil
		}
	}
	return "", ErrNoImage
}

func (c *Client) pageOriginal(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "pageimages")
	params.Set("piprop", "original")
	params.Set("format", "json")
	params.Set("origin", "*")

	var out pagesResponse
	if err := c.get(ctx, c.wikipediaURL, params, &out); err != nil {
		return "", err
	}
	for _, page := range out.Query.Pages {
		if page.Original != nil && page.Original.Source != "" {
			return page.Original.Source, nil
		}
	}
	return "", ErrNoImage
}

func (c *Client) commonsImage(ctx context.Context, subject string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", subject)
	params.Set("srnamespace", "6")
	params.Set("srlimit", "1")
	params.Set("format", "json")
	params.Set("origin", "*")

	var search searchResponse
	if err := c.get(ctx, c.commonsURL, params, &search); err != nil {
		return "", err
	}
	if len(search.Query.Search) == 0 {
		return "", ErrNoImage
	}
	fileTitle := search.Query.Search[0].Title

	params = url.Values{}
	params.Set("action", "query")
	params.Set("titles", fileTitle)
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")
	params.Set("format", "json")
	params.Set("origin", "*")

	var info pagesResponse
	if err := c.get(ctx, c.commonsURL, params, &info); err != nil {
		return "", err
	}
	for _, page := range info.Query.Pages {
		if len(page.ImageInfo) > 0 && page.ImageInfo[0].URL != "" {
			return page.ImageInfo[0].URL, nil
		}
	}
	return "", ErrNoImage
}

func (c *Client) get(ctx context.Context, baseURL string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("wiki: status %d from %s", resp.StatusCode, baseURL)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
