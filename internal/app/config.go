package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hyperifyio/gosummarize/internal/extract"
)

// Defaults applied by (*Config).applyDefaults for zero-valued fields.
const (
	DefaultFetchTimeout   = 20 * time.Second
	DefaultLLMTimeout     = 45 * time.Second
	DefaultRequestTimeout = 75 * time.Second
	DefaultListenAddr     = ":8080"
)

// Config holds runtime configuration for the application.
type Config struct {
	// Fetch
	FetchTimeout time.Duration
	UserAgent    string
	MaxBodyBytes int64
	// FetchMaxConcurrent bounds in-flight page fetches across all requests.
	// Zero means unlimited.
	FetchMaxConcurrent int

	// Extraction strategy: "heuristic" (default) or "readability".
	ExtractMode string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string
	LLMTimeout time.Duration

	// Server
	ListenAddr     string
	RequestTimeout time.Duration

	// Output
	OutputPDFPath string
	Verbose       bool
}

func (c *Config) applyDefaults() {
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.LLMTimeout <= 0 {
		c.LLMTimeout = DefaultLLMTimeout
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if strings.TrimSpace(c.ExtractMode) == "" {
		c.ExtractMode = extract.ModeHeuristic
	}
}

// ValidateConfig performs minimal schema validation. LLM settings are
// optional: without a usable key the local summarizer is used.
func ValidateConfig(cfg Config) error {
	if cfg.FetchTimeout < 0 || cfg.LLMTimeout < 0 || cfg.RequestTimeout < 0 {
		return errors.New("config: negative timeouts are not allowed")
	}
	if cfg.MaxBodyBytes < 0 || cfg.FetchMaxConcurrent < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	if _, err := extract.New(cfg.ExtractMode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
