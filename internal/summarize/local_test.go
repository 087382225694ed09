package summarize

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/hyperifyio/gosummarize/internal/extract"
)

var solarSentences = []string{
	"Solar panels convert sunlight into electricity using photovoltaic cells.",
	"Modern photovoltaic cells reach efficiencies above twenty percent in field conditions.",
	"Battery storage lets households keep solar electricity for use after sunset.",
	"Grid operators balance supply and demand as rooftop solar adoption grows quickly.",
	"Installation costs have fallen sharply over the last decade across most markets.",
	"Researchers are testing perovskite materials to push efficiency even higher.",
	"Local incentives still shape how quickly homeowners decide to install panels.",
}

func article(content string) extract.Article {
	return extract.Article{Title: "Test Title", Content: content, URL: "https://example.com/post"}
}

func bullets(summary string) []string {
	body := strings.TrimSuffix(summary, "\n\n"+Attribution)
	return strings.Split(body, "\n")
}

func TestLocalSummary_BulletsAndAttribution(t *testing.T) {
	out, err := LocalGenerator{}.Generate(context.Background(), article(strings.Join(solarSentences, " ")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(out, "\n\n"+Attribution) {
		t.Fatalf("expected attribution suffix, got %q", out)
	}
	lines := bullets(out)
	if len(lines) < 3 || len(lines) > 6 {
		t.Fatalf("expected 3-6 bullets, got %d: %q", len(lines), out)
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "• ") {
			t.Fatalf("expected bullet prefix, got %q", l)
		}
	}
}

func TestLocalSummary_Deterministic(t *testing.T) {
	a := article(strings.Join(solarSentences, " "))
	first := localSummary(a)
	for i := 0; i < 5; i++ {
		if got := localSummary(a); got != first {
			t.Fatalf("expected identical output on run %d", i)
		}
	}
}

func TestLocalSummary_SuppressesNearDuplicates(t *testing.T) {
	keep := "The old cat sat on the warm mat very quietly today"
	drop := "The old cat sat on the warm mat very happily today"
	content := keep + ". " + drop + ". " +
		"Veterinarians recommend regular checkups for older household pets. " +
		"Indoor cats often live longer than cats that roam outside freely."

	out := localSummary(article(content))
	if !strings.Contains(out, keep) {
		t.Fatalf("expected higher-scored sentence to be kept: %q", out)
	}
	if strings.Contains(out, drop) {
		t.Fatalf("expected near-duplicate to be dropped: %q", out)
	}
}

func TestLocalSummary_BackfillsShortSentences(t *testing.T) {
	content := "Rivers carry sediment toward the sea. Forests store carbon in their trunks. " +
		"Deserts receive little annual rainfall. Glaciers slowly reshape mountain valleys."
	want := "• Rivers carry sediment toward the sea\n" +
		"• Forests store carbon in their trunks\n" +
		"• Deserts receive little annual rainfall\n\n" + Attribution

	if got := localSummary(article(content)); got != want {
		t.Fatalf("unexpected backfill output\nwant: %q\ngot:  %q", want, got)
	}
}

func TestLocalSummary_NoUsableSentences(t *testing.T) {
	out := localSummary(article("Tiny. Also tiny! Still tiny?"))
	if !strings.HasPrefix(out, "• Unable to generate summary from the provided content.") {
		t.Fatalf("expected degraded message, got %q", out)
	}
	if !strings.Contains(out, "• Title: Test Title") || !strings.Contains(out, "• Source: https://example.com/post") {
		t.Fatalf("expected title and source in degraded message, got %q", out)
	}
	if !strings.HasSuffix(out, Attribution) {
		t.Fatalf("expected attribution, got %q", out)
	}
}

func TestSplitSentences_Bounds(t *testing.T) {
	exactly30 := strings.Repeat("a", 30)
	exactly31 := strings.Repeat("b", 31)
	long := strings.Repeat("c", 300)
	got := splitSentences(exactly30 + ". " + exactly31 + "!! " + long + "?")
	if len(got) != 1 || got[0] != exactly31 {
		t.Fatalf("expected only the 31-char sentence, got %q", got)
	}
}

func TestTermFrequencies_SkipsStopWordsAndShortWords(t *testing.T) {
	freq := termFrequencies("Would the river flow? The river would flow into the delta, said Ann.")
	if freq["river"] != 2 || freq["flow"] != 2 || freq["delta"] != 1 {
		t.Fatalf("unexpected counts: %v", freq)
	}
	for _, w := range []string{"would", "said", "the", "ann", "into"} {
		if _, ok := freq[w]; ok {
			t.Fatalf("did not expect %q in table", w)
		}
	}
}

func TestScoreSentence(t *testing.T) {
	freq := map[string]int{"river": 3, "delta": 2}
	// unique words only: river counted once; 50 chars -> factor 0.5; index 0 -> bonus 2
	s := "River river delta flows onward past many old towns"
	got := scoreSentence(s, 0, freq)
	want := float64(3+2) * (float64(len(s)) / 100) * 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("scoreSentence = %v, want %v", got, want)
	}
	if later := scoreSentence(s, 3, freq); later >= got {
		t.Fatalf("expected position bonus to favor earlier sentences: %v >= %v", later, got)
	}
}

func TestJaccard(t *testing.T) {
	got := jaccard("The cat sat on the mat quietly", "The cat sat on the mat today")
	if math.Abs(got-5.0/7.0) > 1e-9 {
		t.Fatalf("jaccard = %v, want 5/7", got)
	}
	if jaccard("", "") != 0 {
		t.Fatalf("expected zero similarity for empty inputs")
	}
	if jaccard("Alpha Beta", "beta alpha") != 1 {
		t.Fatalf("expected case-insensitive identical sets")
	}
}

func TestDedupe(t *testing.T) {
	in := []string{
		"The cat sat on the mat quietly",
		"The cat sat on the mat today",
		"Dogs bark at the mail carrier",
	}
	got := dedupe(in)
	if len(got) != 2 || got[0] != in[0] || got[1] != in[2] {
		t.Fatalf("unexpected dedupe result %q", got)
	}
}

func TestBackfill(t *testing.T) {
	sentences := []string{"alpha", "bravo", "charlie", "delta"}
	got := backfill([]string{"charlie"}, sentences)
	want := []string{"charlie", "alpha", "bravo"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("backfill = %q, want %q", got, want)
	}
	full := []string{"x", "y", "z"}
	if got := backfill(full, sentences); strings.Join(got, ",") != "x,y,z" {
		t.Fatalf("expected full selection untouched, got %q", got)
	}
}
