// Package extract isolates the main article text and metadata of a web page.
package extract

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// ErrInsufficientContent is returned when no region with enough text survives
// all extraction passes.
var ErrInsufficientContent = errors.New("insufficient content")

// FromHTML parses input, removes boilerplate, resolves metadata and selects
// the article body. pageURL should be the final URL after redirects.
func FromHTML(input []byte, pageURL string) (Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
	if err != nil {
		return Article{}, fmt.Errorf("parse html: %w", err)
	}
	stripBoilerplate(doc)

	md := extractMetadata(doc, pageURL)
	content := selectContent(doc)
	if charLen(content) < MinContentChars {
		return Article{}, fmt.Errorf("%w: the page may require script-rendered content or may not be an article", ErrInsufficientContent)
	}

	a := Article{
		Title:       md.Title,
		Content:     content,
		URL:         pageURL,
		Author:      md.Author,
		PublishDate: md.PublishDate,
		SiteName:    md.SiteName,
	}
	return a.capped(), nil
}
