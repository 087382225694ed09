// Package summarize turns an extracted article into a bullet-point summary,
// preferring a remote chat model and falling back to a local extractive
// summarizer.
package summarize

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosummarize/internal/extract"
)

// Attribution is appended to every summary.
const Attribution = "— Summarized by Tahira Nawab"

// Summary sources reported in Result.Source.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Generator produces a finished summary, attribution included.
type Generator interface {
	Generate(ctx context.Context, a extract.Article) (string, error)
}

// Result is a rendered summary and the generator that produced it.
type Result struct {
	Text   string
	Source string
}

// Summarizer tries Remote when set and absorbs any failure by running Local
// within the same call.
type Summarizer struct {
	Remote Generator
	Local  Generator
}

func (s *Summarizer) Summarize(ctx context.Context, a extract.Article) Result {
	if s.Remote != nil {
		text, err := s.Remote.Generate(ctx, a)
		if err == nil {
			return Result{Text: text, Source: SourceRemote}
		}
		log.Warn().Err(err).Str("url", a.URL).Str("stage", "generate").Msg("remote summary failed; falling back to local summarizer")
	} else {
		log.Debug().Str("url", a.URL).Msg("remote summarizer not configured; using local summarizer")
	}

	local := s.Local
	if local == nil {
		local = LocalGenerator{}
	}
	text, err := local.Generate(ctx, a)
	if err != nil {
		// LocalGenerator never fails; a custom Local may.
		log.Error().Err(err).Str("url", a.URL).Str("stage", "generate").Msg("local summary failed")
		text = localSummary(a)
	}
	return Result{Text: text, Source: SourceLocal}
}
