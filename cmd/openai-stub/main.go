package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxStubBullets caps the number of bullets in a stub completion.
const maxStubBullets = 4

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "test-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8081"
	}

	log.Info().Str("addr", addr).Str("model", model).Msg("openai-stub listening")
	if err := http.ListenAndServe(addr, newMux(model)); err != nil {
		log.Fatal().Err(err).Msg("serve")
	}
}

func newMux(model string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data":   []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) < 2 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if !strings.Contains(req.Messages[0].Content, "content summarizer") {
			http.Error(w, "unexpected system", http.StatusBadRequest)
			return
		}
		content := stubSummary(req.Messages[1].Content)
		log.Debug().Str("model", req.Model).Int("chars", len(content)).Msg("chat completion")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-stub",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]any{
				{"index": 0, "finish_reason": "stop", "message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	})
	return mux
}

// stubSummary turns the leading sentences of the article content into
// bullets, headed by the title when one is present.
func stubSummary(user string) string {
	var title, content string
	lines := strings.Split(user, "\n")
	for i, line := range lines {
		if t, ok := strings.CutPrefix(line, "Title: "); ok && title == "" {
			title = strings.TrimSpace(t)
		}
		if strings.TrimSpace(line) == "Content:" {
			content = strings.Join(lines[i+1:], " ")
			break
		}
	}

	bullets := make([]string, 0, maxStubBullets+1)
	if title != "" {
		bullets = append(bullets, "• Topic: "+title)
	}
	for _, s := range strings.SplitAfter(content, ". ") {
		if len(bullets) > maxStubBullets {
			break
		}
		s = strings.TrimSpace(s)
		if len(s) < 20 || strings.HasPrefix(s, "Provide a clean") {
			continue
		}
		bullets = append(bullets, "• "+s)
	}
	if len(bullets) == 0 {
		bullets = append(bullets, "• No content provided.")
	}
	return strings.Join(bullets, "\n")
}
