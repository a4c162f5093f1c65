// Package lookup implements the request/prompt/parse pipeline shared by
// every search route: render a prompt, call the chat gateway once, strip
// markdown fences, parse and check the reply. Validation happens before the
// proxy is called; enrichment and persistence happen after.
package lookup

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"heritage-server/internal/domain"
	"heritage-server/internal/prompts"
	"heritage-server/internal/schema"
)

// Completer is the chat gateway surface the proxy depends on.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Query is one parameterized lookup: the rendered prompt plus the contract
// the reply must satisfy.
type Query struct {
	Kind   string
	Prompt prompts.Prompt
	// ResultSchema validates the parsed reply's field set. Optional.
	ResultSchema *schema.Schema
	// FailureMessage is the user-facing message for unclassified upstream
	// and internal failures on this route.
	FailureMessage string
}

// Proxy shields callers from the variability of the text-generation gateway.
type Proxy struct {
	Chat Completer
	Log  zerolog.Logger
}

type domainError struct {
	Error string `json:"error"`
}

// Structured performs the lookup and returns the reply as validated JSON.
// The reply is fence-stripped and parsed; a reply carrying an "error" key is
// propagated as a domain not-found result, never as success.
func (p *Proxy) Structured(ctx context.Context, q Query) (json.RawMessage, *domain.LookupError) {
	content, lerr := p.complete(ctx, q)
	if lerr != nil {
		return nil, lerr
	}

	cleaned := ExtractJSON(content)
	var fields map[string]any
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		p.Log.Error().Str("kind", q.Kind).Msg("gateway reply is not valid JSON")
		return nil, domain.NewParseError(err)
	}

	var de domainError
	if err := json.Unmarshal([]byte(cleaned), &de); err == nil && de.Error != "" {
		return nil, domain.NewNotFoundError(de.Error)
	}

	if q.ResultSchema != nil {
		if err := q.ResultSchema.Validate([]byte(cleaned)); err != nil {
			p.Log.Error().Str("kind", q.Kind).Str("detail", err.Message).Msg("gateway reply missing required fields")
			return nil, domain.NewParseError(err)
		}
	}
	return json.RawMessage(cleaned), nil
}

// Text performs the lookup and returns the completion verbatim, for routes
// whose answer is display text rather than a structured object.
func (p *Proxy) Text(ctx context.Context, q Query) (string, *domain.LookupError) {
	return p.complete(ctx, q)
}

func (p *Proxy) complete(ctx context.Context, q Query) (string, *domain.LookupError) {
	content, err := p.Chat.Complete(ctx, q.Prompt.System, q.Prompt.User)
	if err != nil {
		lerr := domain.AsLookupError(err, q.FailureMessage)
		if lerr.Class == domain.ClassUpstream {
			p.Log.Error().Err(lerr).Str("kind", q.Kind).Msg("gateway call failed")
			lerr = domain.NewUpstreamError(q.FailureMessage, lerr)
		}
		return "", lerr
	}
	return content, nil
}
