// Package enrich attaches an illustrative image to a resolved lookup result.
// Enrichment is strictly best-effort: whatever goes wrong, the result is
// returned without an image and the lookup itself never fails.
package enrich

import (
	"context"

	"github.com/rs/zerolog"

	"heritage-server/internal/domain"
	"heritage-server/internal/providers/imagegen"
	"heritage-server/internal/providers/wiki"
)

// Strategy selects how a route resolves its image.
type Strategy int

const (
	// StrategyNone skips enrichment entirely.
	StrategyNone Strategy = iota
	// StrategyEncyclopedia looks up a real photograph via Wikipedia/Commons.
	StrategyEncyclopedia
	// StrategyGenerative renders an image from a prompt, falling back to the
	// encyclopedia lookup when no generator is configured or it fails.
	StrategyGenerative
)

// Enricher runs the configured strategy. ImageGen may be nil; the generative
// strategy then degrades to the encyclopedia lookup.
type Enricher struct {
	Wiki     *wiki.Client
	ImageGen *imagegen.Client
	Log      zerolog.Logger
}

// Illustrate resolves an image for the target and attaches it. The
// generative prompt is only consulted by StrategyGenerative; an empty prompt
// skips the generator. Never returns an error.
func (e *Enricher) Illustrate(ctx context.Context, strategy Strategy, target domain.Illustrable, generativePrompt string) {
	switch strategy {
	case StrategyNone:
		return
	case StrategyGenerative:
		if e.ImageGen != nil && generativePrompt != "" {
			url, err := e.ImageGen.Generate(ctx, generativePrompt)
			if err == nil && url != "" {
				target.SetImage(url)
				return
			}
			e.Log.Debug().Err(err).Msg("image generation failed, falling back to encyclopedia")
		}
		e.fromEncyclopedia(ctx, target)
	case StrategyEncyclopedia:
		e.fromEncyclopedia(ctx, target)
	}
}

func (e *Enricher) fromEncyclopedia(ctx context.Context, target domain.Illustrable) {
	if e.Wiki == nil {
		return
	}
	url, err := e.Wiki.FindImage(ctx, target.SearchTerm())
	if err != nil || url == "" {
		e.Log.Debug().Err(err).Str("subject", target.SearchTerm()).Msg("no encyclopedia image")
		return
	}
	target.SetImage(url)
}
