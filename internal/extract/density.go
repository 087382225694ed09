package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// maxLinkRatio caps the link penalty so legitimate link-heavy prose keeps
// at least half of its weight.
const maxLinkRatio = 0.5

var anchorMatcher = cascadia.MustCompile("a")

// textDensity scores a node by how much of its text is prose rather than
// link text: textLen * (1 - min(linkLen/textLen, 0.5)).
func textDensity(s *goquery.Selection) float64 {
	text := strings.TrimSpace(s.Text())
	textLen := charLen(text)
	if textLen == 0 {
		return 0
	}
	if inner, err := s.Html(); err != nil || inner == "" {
		return 0
	}
	var links strings.Builder
	s.FindMatcher(anchorMatcher).Each(func(_ int, a *goquery.Selection) {
		links.WriteString(a.Text())
	})
	return densityScore(textLen, charLen(links.String()))
}

func densityScore(textLen, linkLen int) float64 {
	if textLen <= 0 {
		return 0
	}
	ratio := float64(linkLen) / float64(textLen)
	if ratio > maxLinkRatio {
		ratio = maxLinkRatio
	}
	return float64(textLen) * (1 - ratio)
}
