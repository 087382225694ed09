// Package budget estimates token usage so that summarization prompts fit the
// remote model's context window.
package budget

import (
	"math"
	"strings"
	"unicode/utf8"
)

// charsPerToken is a conservative heuristic for English text.
const charsPerToken = 4.0

// EstimateTokensFromChars converts a character count into an estimated token
// count. The result is always at least 1 when chars > 0.
func EstimateTokensFromChars(charCount int) int {
	if charCount <= 0 {
		return 0
	}
	return int(math.Ceil(float64(charCount) / charsPerToken))
}

// EstimateTokens returns the estimated token count of a string.
func EstimateTokens(s string) int {
	return EstimateTokensFromChars(utf8.RuneCountInString(s))
}

// ModelContextTokens returns an estimated maximum context window for a given
// model name. Unknown models fall back to a conservative default.
func ModelContextTokens(modelName string) int {
	name := strings.ToLower(strings.TrimSpace(modelName))
	if name == "" {
		return 8192
	}
	if v, ok := knownModelMax[name]; ok {
		return v
	}
	switch {
	case strings.HasSuffix(name, "1m"):
		return 1_000_000
	case strings.HasSuffix(name, "200k"):
		return 200_000
	case strings.HasSuffix(name, "128k"):
		return 128_000
	case strings.HasSuffix(name, "32k"):
		return 32_768
	case strings.Contains(name, "-mini"):
		return 128_000
	}
	return 8192
}

// HeadroomTokens is subtracted from the context window to absorb tokenizer
// and message framing error: the larger of 5% of the window or 512 tokens.
func HeadroomTokens(modelName string) int {
	dyn := int(math.Ceil(float64(ModelContextTokens(modelName)) * 0.05))
	if dyn < 512 {
		return 512
	}
	return dyn
}

// ContentCharBudget returns how many characters of article content fit into
// the model context next to the fixed prompt text and the output reservation.
// The result is never negative.
func ContentCharBudget(modelName string, fixedPrompt string, reservedOutput int) int {
	remaining := ModelContextTokens(modelName) - HeadroomTokens(modelName) - reservedOutput - EstimateTokens(fixedPrompt)
	if remaining <= 0 {
		return 0
	}
	return int(float64(remaining) * charsPerToken)
}

// Clip truncates s to at most maxChars characters, cutting at the last space
// when one is close to the limit.
func Clip(s string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:maxChars])
	if i := strings.LastIndexByte(cut, ' '); i > len(cut)*3/4 {
		cut = cut[:i]
	}
	return cut
}

// knownModelMax contains rough context sizes for common model identifiers.
// These are best-effort and do not need to be exhaustive.
var knownModelMax = map[string]int{
	"gpt-4o":             128_000,
	"gpt-4o-mini":        128_000,
	"gpt-4-turbo":        128_000,
	"gpt-4.1":            1_000_000,
	"gpt-4.1-mini":       1_000_000,
	"gpt-3.5-turbo":      16_384,
	"llama-3":            8_192,
	"llama-3.1":          128_000,
	"openai/gpt-oss-20b": 4_096,
	"gpt-oss-20b":        4_096,
}
