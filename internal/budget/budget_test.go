package budget

import (
	"strings"
	"testing"
)

func TestEstimateTokensFromChars(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 0},
		{1, 1}, // ceil(1/4)=1
		{4, 1},
		{5, 2},
		{400, 100},
	}
	for _, c := range cases {
		if got := EstimateTokensFromChars(c.in); got != c.want {
			t.Fatalf("EstimateTokensFromChars(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestModelContextTokens(t *testing.T) {
	if ModelContextTokens("") != 8192 {
		t.Fatal("empty model should default to 8192")
	}
	if ModelContextTokens("GPT-4o-mini") < 100_000 {
		t.Fatal("case-insensitive match for gpt-4o-mini should be ~128k")
	}
	if ModelContextTokens("mystery-32k") != 32_768 {
		t.Fatal("numeric suffix heuristic 32k should map to 32768 tokens")
	}
	if ModelContextTokens("gpt-oss-20b") != 4_096 {
		t.Fatal("small OSS model should be 4096")
	}
}

func TestHeadroomTokens(t *testing.T) {
	if HeadroomTokens("") != 512 { // 5% of 8192 is 410, floor is 512
		t.Fatalf("default model headroom should floor to 512")
	}
	if h := HeadroomTokens("gpt-4o"); h < 6400 || h > 6401 {
		t.Fatalf("expected 5%% headroom for gpt-4o, got %d", h)
	}
}

func TestContentCharBudget(t *testing.T) {
	// 4096 - 512 headroom - 1000 output - 25 prompt tokens = 2559 tokens
	prompt := strings.Repeat("p", 100)
	if got := ContentCharBudget("gpt-oss-20b", prompt, 1000); got != 2559*4 {
		t.Fatalf("ContentCharBudget = %d, want %d", got, 2559*4)
	}
	if got := ContentCharBudget("gpt-oss-20b", prompt, 10_000); got != 0 {
		t.Fatalf("expected zero budget on overflow, got %d", got)
	}
}

func TestClip(t *testing.T) {
	if got := Clip("short text", 100); got != "short text" {
		t.Fatalf("expected unchanged, got %q", got)
	}
	if got := Clip("alpha beta gamma delta", 20); got != "alpha beta gamma" {
		t.Fatalf("expected cut at word boundary, got %q", got)
	}
	if got := Clip("abcdefghij", 4); got != "abcd" {
		t.Fatalf("expected hard cut, got %q", got)
	}
	if got := Clip("anything", 0); got != "" {
		t.Fatalf("expected empty string for zero budget, got %q", got)
	}
}
