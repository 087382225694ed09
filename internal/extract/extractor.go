package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Extractor defines a minimal interface for content extraction strategies.
// Implementations can swap readability tactics without changing callers.
type Extractor interface {
	// Extract converts raw HTML bytes fetched from pageURL into an Article.
	// Implementations should be deterministic and avoid side effects.
	Extract(input []byte, pageURL string) (Article, error)
}

// Extraction modes accepted by New.
const (
	ModeHeuristic   = "heuristic"
	ModeReadability = "readability"
)

// New returns the Extractor for mode. An empty mode selects the heuristic.
func New(mode string) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeHeuristic:
		return HeuristicExtractor{}, nil
	case ModeReadability:
		return ReadabilityExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extract mode %q", mode)
	}
}

// HeuristicExtractor strips boilerplate and scores candidate containers by
// text density with paragraph-scan and block-scan fallbacks.
type HeuristicExtractor struct{}

func (HeuristicExtractor) Extract(input []byte, pageURL string) (Article, error) {
	return FromHTML(input, pageURL)
}

// ReadabilityExtractor delegates to go-readability and applies the same
// boilerplate removal, normalization, caps and minimum length as the
// heuristic.
type ReadabilityExtractor struct{}

func (ReadabilityExtractor) Extract(input []byte, pageURL string) (Article, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return Article{}, fmt.Errorf("parse page url: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
	if err != nil {
		return Article{}, fmt.Errorf("parse html: %w", err)
	}
	stripBoilerplate(doc)

	ra, err := readability.FromDocument(doc.Get(0), u)
	if err != nil {
		return Article{}, fmt.Errorf("readability: %w", err)
	}
	content := cleanText(ra.TextContent)
	if charLen(content) < MinContentChars {
		return Article{}, fmt.Errorf("%w: readability found no article body", ErrInsufficientContent)
	}
	siteName := collapse(ra.SiteName)
	if siteName == "" {
		siteName = hostName(pageURL)
	}
	var published string
	if ra.PublishedTime != nil {
		published = ra.PublishedTime.UTC().Format(time.RFC3339)
	}
	a := Article{
		Title:       collapse(ra.Title),
		Content:     content,
		URL:         pageURL,
		Author:      collapse(ra.Byline),
		PublishDate: published,
		SiteName:    siteName,
	}
	return a.capped(), nil
}
