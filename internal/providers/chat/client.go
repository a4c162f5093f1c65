// Package chat implements the client for the upstream chat-completions
// gateway. One request per lookup, no retries: rate-limit and payment
// statuses are surfaced as classified errors so the HTTP layer can pass them
// through.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"heritage-server/internal/domain"
)

const defaultTimeout = 55 * time.Second

// Options configures a Client. APIKey may be empty when KeyLookup is set; the
// key is then resolved per call (e.g. from the credentials table).
type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	KeyLookup  func(ctx context.Context) (string, error)
}

// Client talks to a chat-completions endpoint using the OpenAI wire shape.
type Client struct {
	apiKey    string
	model     string
	baseURL   string
	client    *http.Client
	keyLookup func(ctx context.Context) (string, error)
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" && opts.KeyLookup == nil {
		return nil, errors.New("chat: api key or key lookup is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		return nil, errors.New("chat: base url is required")
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		return nil, errors.New("chat: model is required")
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		apiKey:    strings.TrimSpace(opts.APIKey),
		model:     model,
		baseURL:   baseURL,
		client:    client,
		keyLookup: opts.KeyLookup,
	}, nil
}

// Complete sends one system+user message pair and returns the completion
// text. Failures come back as classified LookupErrors: 429 rate-limited, 402
// unavailable, anything else upstream.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	key, err := c.resolveKey(ctx)
	if err != nil {
		return "", domain.NewUpstreamError("gateway api key is not configured", err)
	}
	payload := chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", domain.NewUpstreamError("encode gateway request", err)
	}
	endpoint := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", domain.NewUpstreamError("build gateway request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+key)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", domain.NewUpstreamError("gateway request failed", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", domain.NewRateLimitedError()
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", domain.NewUnavailableError()
	case resp.StatusCode >= 300:
		return "", domain.NewUpstreamError(fmt.Sprintf("gateway status %d", resp.StatusCode), nil)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", domain.NewUpstreamError("decode gateway response", err)
	}
	if len(out.Choices) == 0 {
		return "", domain.NewUpstreamError("no response from AI", nil)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", domain.NewUpstreamError("no response from AI", nil)
	}
	return content, nil
}

func (c *Client) resolveKey(ctx context.Context) (string, error) {
	if c.apiKey != "" {
		return c.apiKey, nil
	}
	key, err := c.keyLookup(ctx)
	if err != nil {
		return "", err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("chat: no api key available")
	}
	return key, nil
}
