package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// rule reads one candidate value from the document: the attribute attr of
// the first match, or its trimmed text when attr is empty.
type rule struct {
	matcher cascadia.Selector
	attr    string
}

func textRule(sel string) rule       { return rule{matcher: cascadia.MustCompile(sel)} }
func attrRule(sel, attr string) rule { return rule{matcher: cascadia.MustCompile(sel), attr: attr} }

func (r rule) eval(doc *goquery.Document) string {
	s := doc.FindMatcher(r.matcher).First()
	if s.Length() == 0 {
		return ""
	}
	if r.attr == "" {
		return collapse(s.Text())
	}
	v, _ := s.Attr(r.attr)
	return collapse(v)
}

// firstMatch evaluates rules in order and returns the first non-empty value.
func firstMatch(doc *goquery.Document, rules []rule) string {
	for _, r := range rules {
		if v := r.eval(doc); v != "" {
			return v
		}
	}
	return ""
}

// The rule lists below are preference rankings, most reliable first.

var titleRules = []rule{
	textRule(`h1[class*="title"]`),
	textRule(`h1[class*="post"]`),
	textRule(`h1[class*="article"]`),
	textRule("article h1"),
	textRule(".post-title"),
	textRule(".entry-title"),
	textRule(".article-title"),
	textRule(".story-title"),
	textRule(".headline"),
	textRule("h1"),
	attrRule(`[property="og:title"]`, "content"),
	attrRule(`[name="twitter:title"]`, "content"),
	textRule("title"),
}

var authorRules = []rule{
	textRule(`[rel="author"]`),
	textRule(`[itemprop="author"]`),
	attrRule(`[property="article:author"]`, "content"),
	textRule(".author-name"),
	textRule(".byline"),
	textRule(".author"),
	attrRule(`[name="author"]`, "content"),
	textRule(".writer"),
	textRule(".journalist"),
	attrRule("[data-author]", "data-author"),
}

var publishDateRules = []rule{
	attrRule(`[itemprop="datePublished"]`, "content"),
	attrRule(`[property="article:published_time"]`, "content"),
	attrRule(`[name="date"]`, "content"),
	attrRule(`[name="pubdate"]`, "content"),
	textRule(".publish-date"),
	textRule(".post-date"),
	textRule(".entry-date"),
	textRule(".article-date"),
	textRule(".story-date"),
	attrRule("time", "datetime"),
	textRule("time"),
}

var siteNameRules = []rule{
	attrRule(`[property="og:site_name"]`, "content"),
	attrRule(`[name="application-name"]`, "content"),
}

type metadata struct {
	Title       string
	Author      string
	PublishDate string
	SiteName    string
}

func extractMetadata(doc *goquery.Document, pageURL string) metadata {
	md := metadata{
		Title:       firstMatch(doc, titleRules),
		Author:      firstMatch(doc, authorRules),
		PublishDate: firstMatch(doc, publishDateRules),
		SiteName:    firstMatch(doc, siteNameRules),
	}
	if md.SiteName == "" {
		md.SiteName = hostName(pageURL)
	}
	if md.Title == "" {
		md.Title = UntitledArticle
	}
	return md
}

// hostName returns the URL host with the first "www." removed.
func hostName(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return strings.Replace(u.Hostname(), "www.", "", 1)
}
