package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// boilerplateSelectors are removed from the document before any scoring:
// non-content elements, interactive widgets, page chrome and common
// advertising/promotional containers.
var boilerplateSelectors = []string{
	"script", "style", "noscript", "iframe", "embed", "object", "svg", "canvas",
	"video", "audio", "picture", "source", "track", "map", "area",
	"form", "input", "textarea", "button", "select", "optgroup", "option",
	"label", "fieldset", "legend", "dialog", "details", "summary",
	"menu", "menuitem", "template", "slot", "shadow", "comment",
	".advertisement", ".ad", ".ads", ".social-share", ".share-buttons",
	".comments", ".comment-section", ".related-posts", ".recommended",
	".sidebar", ".widget", ".popup", ".modal", ".overlay",
	".cookie-notice", ".newsletter", ".subscribe", ".subscription",
	"[role='complementary']", "[role='navigation']",
	"nav", "header", "footer", "aside",
	".nav", ".navigation", ".menu", ".footer", ".header",
	".copyright", ".credits", ".author-bio", ".bio",
	".promo", ".promotion", ".cta", ".call-to-action",
}

// boilerplateMarkers are substrings of class and id attributes that mark a
// container as a cookie notice, newsletter or social widget. Order matters:
// each group is removed in turn.
var boilerplateMarkers = []string{
	"[class*='cookie']",
	"[class*='newsletter']",
	"[class*='subscribe']",
	"[class*='social']",
	"[id*='cookie']",
	"[id*='newsletter']",
	"[id*='subscribe']",
}

var (
	boilerplateMatcher = cascadia.MustCompile(strings.Join(boilerplateSelectors, ", "))
	markerMatchers     = compileAll(boilerplateMarkers)
)

// stripBoilerplate detaches every boilerplate subtree from doc. It is the only
// mutation applied to the document; all later passes are read-only.
func stripBoilerplate(doc *goquery.Document) {
	doc.FindMatcher(boilerplateMatcher).Remove()
	for _, m := range markerMatchers {
		doc.FindMatcher(m).Remove()
	}
}

func compileAll(selectors []string) []cascadia.Selector {
	out := make([]cascadia.Selector, len(selectors))
	for i, s := range selectors {
		out[i] = cascadia.MustCompile(s)
	}
	return out
}
