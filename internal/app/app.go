// Package app wires fetching, extraction and summarization into a single
// request pipeline and maps failures to user-facing errors.
package app

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosummarize/internal/extract"
	"github.com/hyperifyio/gosummarize/internal/fetch"
	"github.com/hyperifyio/gosummarize/internal/llm"
	"github.com/hyperifyio/gosummarize/internal/summarize"
)

// Result is a successful summarization of one URL.
type Result struct {
	Title   string
	Summary string
	Article extract.Article
	// Source is summarize.SourceRemote or summarize.SourceLocal.
	Source string
}

// pageFetcher is the subset of fetch.Client used by the pipeline.
type pageFetcher interface {
	Get(ctx context.Context, rawURL string) (*fetch.Page, error)
}

type App struct {
	cfg        Config
	fetcher    pageFetcher
	extractor  extract.Extractor
	summarizer *summarize.Summarizer
}

func New(ctx context.Context, cfg Config) (*App, error) {
	cfg.applyDefaults()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	ex, err := extract.New(cfg.ExtractMode)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg: cfg,
		fetcher: &fetch.Client{
			HTTPClient:        newHTTPClient(2*cfg.FetchTimeout, cfg.FetchMaxConcurrent),
			UserAgent:         cfg.UserAgent,
			PerRequestTimeout: cfg.FetchTimeout,
			RedirectMaxHops:   5,
			MaxBodyBytes:      cfg.MaxBodyBytes,
			MaxConcurrent:     cfg.FetchMaxConcurrent,
		},
		extractor:  ex,
		summarizer: &summarize.Summarizer{Local: summarize.LocalGenerator{}},
	}

	if !summarize.APIKeyConfigured(cfg.LLMAPIKey) {
		log.Info().Msg("no LLM API key configured; summaries use the local summarizer")
		return a, nil
	}
	provider := llm.NewOpenAI(cfg.LLMAPIKey, cfg.LLMBaseURL, newHTTPClient(2*cfg.LLMTimeout, 0))
	a.summarizer.Remote = &summarize.RemoteGenerator{
		Client:  provider,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	}
	preflight(ctx, provider)
	return a, nil
}

// preflight lists models as a quick connectivity check. It is best-effort:
// an unreachable endpoint only means requests will fall back to the local
// summarizer.
func preflight(ctx context.Context, lister llm.ModelLister) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	models, err := lister.ListModels(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("LLM model list failed; continuing")
		return
	}
	if len(models.Models) > 0 {
		log.Info().Int("count", len(models.Models)).Msg("LLM models available")
	} else {
		log.Warn().Msg("LLM returned zero models")
	}
}

// Config returns the effective configuration with defaults applied.
func (a *App) Config() Config { return a.cfg }

// Summarize validates rawURL, fetches and extracts the page and summarizes
// it. Failures are returned as *Error. A failed remote summary is not an
// error; the local summarizer answers instead.
func (a *App) Summarize(ctx context.Context, rawURL string) (Result, error) {
	start := time.Now()
	target, err := validateURL(rawURL)
	if err != nil {
		return Result{}, a.fail(KindInvalidInput, "validate", rawURL, err)
	}

	page, err := a.fetcher.Get(ctx, target)
	if err != nil {
		if errors.Is(err, fetch.ErrUnsupportedContentType) {
			return Result{}, a.fail(KindExtraction, "fetch", target, err)
		}
		return Result{}, a.fail(KindFetch, "fetch", target, err)
	}
	log.Debug().Str("url", page.URL).Int("bytes", len(page.Body)).Str("content_type", page.ContentType).Msg("fetched")

	article, err := a.extractor.Extract(page.Body, page.URL)
	if err != nil {
		if errors.Is(err, extract.ErrInsufficientContent) {
			return Result{}, a.fail(KindExtraction, "extract", page.URL, err)
		}
		return Result{}, a.fail(KindUnexpected, "extract", page.URL, err)
	}
	log.Debug().Str("url", page.URL).Str("title", article.Title).Int("chars", len([]rune(article.Content))).Msg("extracted")

	sum := a.summarizer.Summarize(ctx, article)
	log.Info().
		Str("url", article.URL).
		Str("source", sum.Source).
		Dur("elapsed", time.Since(start)).
		Msg("summarized")
	return Result{
		Title:   article.Title,
		Summary: sum.Text,
		Article: article,
		Source:  sum.Source,
	}, nil
}

func (a *App) fail(kind Kind, stage, rawURL string, err error) *Error {
	e := &Error{Kind: kind, Stage: stage, URL: rawURL, Err: err}
	ev := log.Warn()
	if kind == KindUnexpected {
		ev = log.Error()
	}
	ev.Err(err).Str("url", rawURL).Str("stage", stage).Str("kind", kind.String()).Msg("summarize failed")
	return e
}

// validateURL accepts absolute http(s) URLs with a host.
func validateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrURLRequired
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "", ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrUnsupportedScheme
	}
	if u.Host == "" {
		return "", ErrInvalidURL
	}
	return u.String(), nil
}
