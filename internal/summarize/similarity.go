package summarize

import "strings"

// duplicateThreshold is the Jaccard similarity above which two sentences are
// treated as the same point.
const duplicateThreshold = 0.7

// jaccard returns the intersection-over-union of the lowercased
// whitespace-separated word sets of a and b.
func jaccard(a, b string) float64 {
	setA := newWordSet(strings.Fields(strings.ToLower(a))...)
	setB := newWordSet(strings.Fields(strings.ToLower(b))...)
	intersection := 0
	for w := range setA {
		if setB.has(w) {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// dedupe keeps sentences in order, dropping any that is a near-duplicate of
// one already kept.
func dedupe(sentences []string) []string {
	kept := make([]string, 0, len(sentences))
	for _, s := range sentences {
		dup := false
		for _, k := range kept {
			if jaccard(s, k) > duplicateThreshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, s)
		}
	}
	return kept
}
