package extract

import "unicode/utf8"

// Field caps applied to every extracted Article, in characters.
const (
	MaxTitleChars       = 200
	MaxContentChars     = 10_000
	MaxAuthorChars      = 100
	MaxPublishDateChars = 50
	MaxSiteNameChars    = 100

	// MinContentChars is the floor below which extraction is a failure.
	MinContentChars = 100
)

// UntitledArticle is used when no title rule matches.
const UntitledArticle = "Untitled Article"

// Article is the normalized result of extracting a single web page.
type Article struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Author      string `json:"author,omitempty"`
	PublishDate string `json:"publishDate,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
}

// capped returns a copy with every field truncated to its limit.
func (a Article) capped() Article {
	if a.Title == "" {
		a.Title = UntitledArticle
	}
	a.Title = truncate(a.Title, MaxTitleChars)
	a.Content = truncate(a.Content, MaxContentChars)
	a.Author = truncate(a.Author, MaxAuthorChars)
	a.PublishDate = truncate(a.PublishDate, MaxPublishDateChars)
	a.SiteName = truncate(a.SiteName, MaxSiteNameChars)
	return a
}

// truncate cuts s to at most n runes without splitting a multi-byte sequence.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func charLen(s string) int { return utf8.RuneCountInString(s) }
