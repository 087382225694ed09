package summarize

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hyperifyio/gosummarize/internal/extract"
)

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	wordPattern      = regexp.MustCompile(`\b[a-z]{4,}\b`)
)

const (
	minSentenceChars = 30  // exclusive
	maxSentenceChars = 300 // exclusive
	minBulletChars   = 40  // exclusive
	maxBullets       = 6
	minBullets       = 3
)

// LocalGenerator is a frequency-based extractive summarizer. It needs no
// network access and is deterministic for a given input.
type LocalGenerator struct{}

type scoredSentence struct {
	text  string
	score float64
}

// Generate never returns an error; degraded inputs yield a fixed message.
func (LocalGenerator) Generate(_ context.Context, a extract.Article) (string, error) {
	return localSummary(a), nil
}

func localSummary(a extract.Article) string {
	sentences := splitSentences(a.Content)
	if len(sentences) == 0 {
		return fmt.Sprintf("• Unable to generate summary from the provided content.\n• Title: %s\n• Source: %s\n\n%s", a.Title, a.URL, Attribution)
	}

	freq := termFrequencies(a.Content)
	ranked := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		ranked[i] = scoredSentence{text: s, score: scoreSentence(s, i, freq)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > maxBullets {
		ranked = ranked[:maxBullets]
	}

	top := make([]string, 0, maxBullets)
	for _, r := range ranked {
		if charLen(r.text) > minBulletChars {
			top = append(top, r.text)
		}
	}
	top = backfill(top, sentences)

	unique := dedupe(top)
	if len(unique) == 0 {
		return fmt.Sprintf("• This article discusses: %s\n• Content extracted from: %s\n• Summary generation requires OpenAI API key for detailed analysis.\n\n%s", a.Title, a.URL, Attribution)
	}
	return renderBullets(unique)
}

// splitSentences splits on runs of terminal punctuation and keeps trimmed
// sentences strictly between the length bounds.
func splitSentences(content string) []string {
	var out []string
	for _, part := range sentenceBoundary.Split(content, -1) {
		s := strings.TrimSpace(part)
		if n := charLen(s); n > minSentenceChars && n < maxSentenceChars {
			out = append(out, s)
		}
	}
	return out
}

// termFrequencies counts lowercase words of four or more letters, minus stop words.
func termFrequencies(content string) map[string]int {
	freq := make(map[string]int)
	for _, w := range wordPattern.FindAllString(strings.ToLower(content), -1) {
		if !stopWords.has(w) {
			freq[w]++
		}
	}
	return freq
}

// scoreSentence sums the frequencies of the sentence's unique words, scaled
// down for short sentences and up for sentences near the start.
func scoreSentence(s string, index int, freq map[string]int) float64 {
	seen := make(wordSet)
	total := 0
	for _, w := range wordPattern.FindAllString(strings.ToLower(s), -1) {
		if seen.has(w) || stopWords.has(w) {
			continue
		}
		seen[w] = struct{}{}
		total += freq[w]
	}
	lengthFactor := float64(charLen(s)) / 100
	if lengthFactor > 1 {
		lengthFactor = 1
	}
	positionBonus := 1 + 1/float64(index+1)
	return float64(total) * lengthFactor * positionBonus
}

// backfill tops up short selections with unused sentences in document order.
func backfill(top, sentences []string) []string {
	if len(top) >= minBullets {
		return top
	}
	used := make(map[string]struct{}, len(top))
	for _, s := range top {
		used[s] = struct{}{}
	}
	for _, s := range sentences {
		if len(top) >= minBullets {
			break
		}
		if _, ok := used[s]; !ok {
			top = append(top, s)
		}
	}
	return top
}

func renderBullets(sentences []string) string {
	var b strings.Builder
	for i, s := range sentences {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(s)
	}
	b.WriteString("\n\n")
	b.WriteString(Attribution)
	return b.String()
}

func charLen(s string) int { return utf8.RuneCountInString(s) }
