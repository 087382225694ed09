package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/gosummarize/internal/budget"
	"github.com/hyperifyio/gosummarize/internal/extract"
	"github.com/hyperifyio/gosummarize/internal/llm"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// DefaultMaxTokens bounds the length of a remote summary.
const DefaultMaxTokens = 1000

var (
	// ErrNotConfigured means no usable credential or client was provided.
	ErrNotConfigured = errors.New("remote summarizer not configured")
	// ErrEmptyCompletion means the model returned no usable text.
	ErrEmptyCompletion = errors.New("empty completion")
)

const systemPrompt = `You are an expert content summarizer. Your task is to create clear, accurate, and concise summaries of articles and blog posts.

Guidelines:
- Create a summary that captures the main points and key insights
- Format as 4-6 bullet points for comprehensive coverage
- Each bullet point should be complete and informative (1-3 sentences)
- Focus on actionable insights, main arguments, and key findings
- Use simple, clear language that anyone can understand
- Prioritize quality over quantity
- Do NOT use numbered lists - use bullet points with "•" symbol
- Start each bullet with a strong keyword or phrase
- Avoid repeating information across bullet points
- If the article is about code or technical content, include key technical concepts
- For news articles, focus on the who, what, when, where, why
- For how-to articles, capture the main steps or key tips`

// APIKeyConfigured reports whether key looks like a real credential rather
// than an empty value or a template placeholder.
func APIKeyConfigured(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" || key == "your_openai_api_key_here" {
		return false
	}
	return !strings.HasPrefix(key, "your_ope")
}

// RemoteGenerator asks an OpenAI-compatible chat model for the summary.
type RemoteGenerator struct {
	Client    llm.Client
	Model     string
	MaxTokens int
	// Timeout bounds the completion call. Zero leaves it to the caller's context.
	Timeout time.Duration
}

func (g *RemoteGenerator) Generate(ctx context.Context, a extract.Article) (string, error) {
	if g == nil || g.Client == nil {
		return "", ErrNotConfigured
	}
	model := g.Model
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	maxTokens := g.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(a, model, maxTokens)},
		},
		MaxTokens: maxTokens,
		N:         1,
	}
	resp, err := g.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyCompletion
	}
	return out + "\n\n" + Attribution, nil
}

func buildUserMessage(a extract.Article, model string, maxTokens int) string {
	var head strings.Builder
	head.WriteString("Summarize the following article. Focus on the most important points and key insights:\n\n")
	if a.Title != "" {
		head.WriteString("Title: " + a.Title + "\n")
	}
	if a.Author != "" {
		head.WriteString("By: " + a.Author + "\n")
	}
	if a.PublishDate != "" {
		head.WriteString("Published: " + a.PublishDate + "\n")
	}
	if a.SiteName != "" {
		head.WriteString("Source: " + a.SiteName + "\n")
	}
	head.WriteString("URL: " + a.URL + "\n\nContent:\n")
	tail := "\n\nProvide a clean, well-structured summary with clear bullet points (using • symbol). Each point should capture a key insight or main point from the article."

	fixed := systemPrompt + head.String() + tail
	content := budget.Clip(a.Content, budget.ContentCharBudget(model, fixed, maxTokens))
	return head.String() + content + tail
}
