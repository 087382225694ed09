package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/gosummarize/internal/extract"
)

type fakeChat struct {
	resp  openai.ChatCompletionResponse
	err   error
	calls int
	last  openai.ChatCompletionRequest
	dl    bool
}

func (f *fakeChat) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.last = req
	_, f.dl = ctx.Deadline()
	return f.resp, f.err
}

func completion(text string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{{
		Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: text},
	}}}
}

func TestAPIKeyConfigured(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"your_openai_api_key_here", false},
		{"your_openai_key", false},
		{"sk-test-123", true},
		{"test-key", true},
	}
	for _, c := range cases {
		if got := APIKeyConfigured(c.key); got != c.want {
			t.Fatalf("APIKeyConfigured(%q) = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestRemoteGenerator_AppendsAttribution(t *testing.T) {
	fc := &fakeChat{resp: completion("  • Point one\n• Point two\n")}
	g := &RemoteGenerator{Client: fc, Timeout: time.Second}
	out, err := g.Generate(context.Background(), article(strings.Join(solarSentences, " ")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "• Point one\n• Point two\n\n" + Attribution
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
	if fc.last.Model != DefaultModel || fc.last.MaxTokens != DefaultMaxTokens {
		t.Fatalf("expected defaults, got model=%q max=%d", fc.last.Model, fc.last.MaxTokens)
	}
	if len(fc.last.Messages) != 2 || fc.last.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("expected system and user messages, got %+v", fc.last.Messages)
	}
	if !fc.dl {
		t.Fatalf("expected timeout to set a deadline")
	}
}

func TestRemoteGenerator_Errors(t *testing.T) {
	a := article("content")
	if _, err := (&RemoteGenerator{}).Generate(context.Background(), a); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	empty := &RemoteGenerator{Client: &fakeChat{}}
	if _, err := empty.Generate(context.Background(), a); !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion for no choices, got %v", err)
	}
	blank := &RemoteGenerator{Client: &fakeChat{resp: completion("   ")}}
	if _, err := blank.Generate(context.Background(), a); !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion for blank text, got %v", err)
	}
	failing := &RemoteGenerator{Client: &fakeChat{err: errors.New("401 unauthorized")}}
	if _, err := failing.Generate(context.Background(), a); err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestBuildUserMessage_IncludesMetadata(t *testing.T) {
	a := extract.Article{
		Title:       "Solar Outlook",
		Author:      "Jane Doe",
		PublishDate: "2024-03-01",
		SiteName:    "Energy Weekly",
		URL:         "https://example.com/solar",
		Content:     "Body text.",
	}
	msg := buildUserMessage(a, DefaultModel, DefaultMaxTokens)
	for _, want := range []string{
		"Title: Solar Outlook\n",
		"By: Jane Doe\n",
		"Published: 2024-03-01\n",
		"Source: Energy Weekly\n",
		"URL: https://example.com/solar\n",
		"Content:\nBody text.",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_OmitsEmptyFieldsAndClips(t *testing.T) {
	a := extract.Article{Title: "T", URL: "https://example.com", Content: strings.Repeat("word ", 20000)}
	msg := buildUserMessage(a, "unknown-small-model", DefaultMaxTokens)
	if strings.Contains(msg, "By: ") || strings.Contains(msg, "Published: ") {
		t.Fatalf("did not expect empty metadata lines:\n%.200s", msg)
	}
	if len(msg) >= len(a.Content) {
		t.Fatalf("expected content to be clipped to the model budget, got %d chars", len(msg))
	}
}

func TestSummarizer_PrefersRemote(t *testing.T) {
	fc := &fakeChat{resp: completion("• Remote bullet")}
	s := &Summarizer{Remote: &RemoteGenerator{Client: fc}}
	res := s.Summarize(context.Background(), article(strings.Join(solarSentences, " ")))
	if res.Source != SourceRemote {
		t.Fatalf("expected remote source, got %q", res.Source)
	}
	if res.Text != "• Remote bullet\n\n"+Attribution {
		t.Fatalf("unexpected text %q", res.Text)
	}
}

func TestSummarizer_FallsBackToLocal(t *testing.T) {
	a := article(strings.Join(solarSentences, " "))
	want := localSummary(a)
	cases := map[string]*fakeChat{
		"provider error": {err: errors.New("rate limited")},
		"no choices":     {},
	}
	for name, fc := range cases {
		s := &Summarizer{Remote: &RemoteGenerator{Client: fc}}
		res := s.Summarize(context.Background(), a)
		if fc.calls != 1 {
			t.Fatalf("%s: expected one remote attempt, got %d", name, fc.calls)
		}
		if res.Source != SourceLocal || res.Text != want {
			t.Fatalf("%s: expected local fallback, got %+v", name, res)
		}
	}
}

func TestSummarizer_LocalOnly(t *testing.T) {
	a := article(strings.Join(solarSentences, " "))
	res := (&Summarizer{}).Summarize(context.Background(), a)
	if res.Source != SourceLocal || res.Text != localSummary(a) {
		t.Fatalf("expected local summary, got %+v", res)
	}
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, extract.Article) (string, error) {
	return "", errors.New("boom")
}

func TestSummarizer_CustomLocalFailureStillSummarizes(t *testing.T) {
	a := article(strings.Join(solarSentences, " "))
	res := (&Summarizer{Local: failingGenerator{}}).Summarize(context.Background(), a)
	if res.Text != localSummary(a) {
		t.Fatalf("expected built-in local summary, got %q", res.Text)
	}
}
