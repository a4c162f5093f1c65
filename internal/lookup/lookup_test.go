package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"heritage-server/internal/domain"
	"heritage-server/internal/prompts"
	"heritage-server/internal/schema"
)

type fakeCompleter struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newProxy(chat *fakeCompleter) *Proxy {
	return &Proxy{Chat: chat, Log: zerolog.Nop()}
}

var testResultSchema = schema.MustCompile(map[string]any{
	"type":     "object",
	"required": []any{"name", "location"},
	"properties": map[string]any{
		"name":     map[string]any{"type": "string"},
		"location": map[string]any{"type": "string"},
	},
}, nil)

func testQuery() Query {
	return Query{
		Kind:           "temple-search",
		Prompt:         prompts.TempleSearch("Hampi"),
		ResultSchema:   testResultSchema,
		FailureMessage: "Failed to get temple information",
	}
}

func TestStructuredParsesFencedReply(t *testing.T) {
	chat := &fakeCompleter{reply: "```json\n{\"name\":\"Virupaksha Temple\",\"location\":\"Hampi\"}\n```"}
	raw, lerr := newProxy(chat).Structured(context.Background(), testQuery())
	if lerr != nil {
		t.Fatalf("unexpected error: %v", lerr)
	}
	var got map[string]string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if got["name"] != "Virupaksha Temple" {
		t.Fatalf("name = %q", got["name"])
	}
	if chat.calls != 1 {
		t.Fatalf("gateway called %d times, want 1", chat.calls)
	}
}

func TestStructuredPlainReplyMatchesFenced(t *testing.T) {
	body := `{"name":"Virupaksha Temple","location":"Hampi"}`
	plain := &fakeCompleter{reply: body}
	fenced := &fakeCompleter{reply: "```json\n" + body + "\n```"}

	rawPlain, lerr := newProxy(plain).Structured(context.Background(), testQuery())
	if lerr != nil {
		t.Fatalf("plain reply: %v", lerr)
	}
	rawFenced, lerr := newProxy(fenced).Structured(context.Background(), testQuery())
	if lerr != nil {
		t.Fatalf("fenced reply: %v", lerr)
	}
	if string(rawPlain) != string(rawFenced) {
		t.Fatalf("plain %q != fenced %q", rawPlain, rawFenced)
	}
}

func TestStructuredErrorKeyBecomesNotFound(t *testing.T) {
	chat := &fakeCompleter{reply: `{"error":"Book not found. Please search for Indian holy books only."}`}
	_, lerr := newProxy(chat).Structured(context.Background(), testQuery())
	if lerr == nil {
		t.Fatal("expected an error")
	}
	if lerr.Class != domain.ClassNotFound {
		t.Fatalf("class = %q, want not_found", lerr.Class)
	}
	if lerr.Message != "Book not found. Please search for Indian holy books only." {
		t.Fatalf("message = %q", lerr.Message)
	}
	if lerr.HTTPStatus() != 200 {
		t.Fatalf("status = %d, want 200", lerr.HTTPStatus())
	}
}

func TestStructuredInvalidJSONIsParseFailure(t *testing.T) {
	chat := &fakeCompleter{reply: "I am sorry, I cannot answer that."}
	_, lerr := newProxy(chat).Structured(context.Background(), testQuery())
	if lerr == nil {
		t.Fatal("expected an error")
	}
	if lerr.Class != domain.ClassParse {
		t.Fatalf("class = %q, want parse", lerr.Class)
	}
	if lerr.Message != domain.MsgParseFailure {
		t.Fatalf("message = %q", lerr.Message)
	}
}

func TestStructuredMissingFieldsIsParseFailure(t *testing.T) {
	chat := &fakeCompleter{reply: `{"name":"Virupaksha Temple"}`}
	_, lerr := newProxy(chat).Structured(context.Background(), testQuery())
	if lerr == nil {
		t.Fatal("expected an error")
	}
	if lerr.Class != domain.ClassParse {
		t.Fatalf("class = %q, want parse", lerr.Class)
	}
}

func TestStructuredPropagatesRateLimit(t *testing.T) {
	chat := &fakeCompleter{err: domain.NewRateLimitedError()}
	_, lerr := newProxy(chat).Structured(context.Background(), testQuery())
	if lerr == nil {
		t.Fatal("expected an error")
	}
	if lerr.Class != domain.ClassRateLimited {
		t.Fatalf("class = %q, want rate_limited", lerr.Class)
	}
	if lerr.Message != domain.MsgRateLimited {
		t.Fatalf("message = %q", lerr.Message)
	}
}

func TestStructuredRewrapsUpstreamWithRouteMessage(t *testing.T) {
	chat := &fakeCompleter{err: errors.New("connection refused")}
	_, lerr := newProxy(chat).Structured(context.Background(), testQuery())
	if lerr == nil {
		t.Fatal("expected an error")
	}
	if lerr.Class != domain.ClassUpstream {
		t.Fatalf("class = %q, want upstream", lerr.Class)
	}
	if lerr.Message != "Failed to get temple information" {
		t.Fatalf("message = %q", lerr.Message)
	}
}

func TestTextReturnsCompletionVerbatim(t *testing.T) {
	chat := &fakeCompleter{reply: "Drink warm water with ginger in the morning."}
	text, lerr := newProxy(chat).Text(context.Background(), Query{
		Kind:           "ayurvedic-recommendations",
		Prompt:         prompts.AyurvedaRecommendation(prompts.AyurvedaVars{Age: 30, Symptoms: "fatigue"}),
		FailureMessage: "Failed to generate recommendations",
	})
	if lerr != nil {
		t.Fatalf("unexpected error: %v", lerr)
	}
	if text != chat.reply {
		t.Fatalf("text = %q", text)
	}
}
