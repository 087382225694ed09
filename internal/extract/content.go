package extract

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// contentSelectors lists likely article containers. Order is a priority
// signal: specific article containers come before generic main/#content.
var contentSelectors = []string{
	"article",
	`[role="article"]`,
	`[role="main"]`,
	`[itemprop="articleBody"]`,
	".post-content",
	".entry-content",
	".article-content",
	".article-body",
	".post-body",
	".story-body",
	".blog-content",
	".blog-post",
	".content-body",
	".post-full",
	".article-full",
	".single-content",
	".single-post",
	".page-content",
	".text-content",
	".story-content",
	".entry-body",
	"main",
	"#content",
	"#main",
	"#article",
	"#post-content",
	"#entry-content",
	".main-content",
	".primary-content",
	".Medium-article",
	".articleBody",
	".ArticleBody",
	".postArticle-content",
	".story__content",
	".caas-body",
	".entry-content-content",
}

// boilerplatePhrases disqualify a fragment in the paragraph scan.
var boilerplatePhrases = []string{
	"copyright",
	"subscribe",
	"newsletter",
	"follow us",
	"share this",
	"read more",
	"click here",
	"sign up",
	"all rights reserved",
	"privacy policy",
	"terms of",
	"cookie",
}

const (
	candidateMinChars = 200 // a container must hold more than this to be a candidate
	acceptChars       = 300 // primary pass stops once the best content exceeds this
	fragmentSeenChars = 50
	fragmentMinChars  = 80
	fragmentMinScore  = 100
	maxFragments      = 20
)

var (
	contentMatchers = compileAll(contentSelectors)
	fragmentMatcher = cascadia.MustCompile("p, div, section")
	blockMatcher    = cascadia.MustCompile("div, section")
)

// picker tracks the best candidate region seen so far. The tertiary pass
// continues from the state left by the primary pass.
type picker struct {
	bestScore   float64
	bestContent string
}

func (p *picker) consider(s *goquery.Selection) {
	text := cleanText(s.Text())
	score := textDensity(s)
	if score > p.bestScore && charLen(text) > candidateMinChars {
		p.bestScore = score
		p.bestContent = text
	}
}

// selectContent runs the three extraction tiers and returns the best content
// found, which may be shorter than MinContentChars.
func selectContent(doc *goquery.Document) string {
	var p picker
	content := p.primary(doc)
	if charLen(content) < acceptChars {
		content = fragments(doc)
	}
	if charLen(content) < MinContentChars {
		content = p.tertiary(doc)
	}
	return content
}

// primary walks contentSelectors in order and accepts the first selector
// after which the running best exceeds acceptChars.
func (p *picker) primary(doc *goquery.Document) string {
	for _, m := range contentMatchers {
		matches := doc.FindMatcher(m)
		if matches.Length() == 0 {
			continue
		}
		matches.Each(func(_ int, s *goquery.Selection) { p.consider(s) })
		if charLen(p.bestContent) > acceptChars {
			return p.bestContent
		}
	}
	return ""
}

type fragment struct {
	text  string
	score float64
}

// fragments scans paragraph-like nodes, keeps dense non-boilerplate ones and
// ranks them by substance and closeness to the top of the document.
func fragments(doc *goquery.Document) string {
	seen := make(map[string]struct{})
	var kept []string
	doc.FindMatcher(fragmentMatcher).Each(func(_ int, s *goquery.Selection) {
		text := cleanText(s.Text())
		lower := strings.ToLower(text)
		if _, dup := seen[lower]; dup || charLen(text) < fragmentSeenChars {
			return
		}
		seen[lower] = struct{}{}
		if charLen(lower) < fragmentMinChars || containsAny(lower, boilerplatePhrases) {
			return
		}
		if textDensity(s) > fragmentMinScore && charLen(text) > fragmentMinChars {
			kept = append(kept, text)
		}
	})

	ranked := make([]fragment, len(kept))
	for i, text := range kept {
		ranked[i] = fragment{text: text, score: float64(charLen(text))*0.5 + 1000/float64(i+1)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > maxFragments {
		ranked = ranked[:maxFragments]
	}
	parts := make([]string, len(ranked))
	for i, f := range ranked {
		parts[i] = f.text
	}
	return cleanText(strings.Join(parts, " "))
}

// tertiary picks the single densest div/section regardless of selector.
func (p *picker) tertiary(doc *goquery.Document) string {
	doc.FindMatcher(blockMatcher).Each(func(_ int, s *goquery.Selection) { p.consider(s) })
	return p.bestContent
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
