package summarize

// stopWords are high-frequency English function words excluded from term
// frequency scoring. Words shorter than four letters never reach the table
// but are listed for completeness.
var stopWords = newWordSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "having", "do", "does", "did",
	"doing", "will", "would", "could", "should", "may", "might", "must",
	"shall", "can", "need", "this", "that", "these", "those", "what",
	"which", "who", "whom", "whose", "where", "when", "why", "how",
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her",
	"us", "them", "my", "your", "his", "its", "our", "their", "mine",
	"yours", "hers", "ours", "theirs", "here", "there", "all", "each",
	"every", "both", "few", "more", "most", "other", "some", "such",
	"no", "not", "only", "same", "so", "than", "too", "very", "just",
	"also", "now", "then", "once", "about", "after", "before", "between",
	"into", "through", "during", "above", "below", "up", "down", "out",
	"off", "over", "under", "again", "further", "any",
	"because", "unless", "until", "while", "upon", "within",
	"without", "according", "however", "therefore", "otherwise", "else",
	"get", "got", "going", "come", "came", "make", "made", "take", "took",
	"see", "saw", "know", "knew", "think", "thought", "want", "wanted",
	"use", "used", "find", "found", "give", "gave", "tell", "told",
	"say", "said", "many", "much", "own", "still", "even", "back",
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}
