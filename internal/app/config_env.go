package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	setString := func(dst *string, envKeys ...string) {
		if *dst != "" {
			return
		}
		for _, k := range envKeys {
			if v := strings.TrimSpace(os.Getenv(k)); v != "" {
				*dst = v
				return
			}
		}
	}
	setString(&cfg.LLMBaseURL, "LLM_BASE_URL")
	setString(&cfg.LLMModel, "LLM_MODEL")
	// OPENAI_API_KEY is accepted for compatibility with the OpenAI tooling
	setString(&cfg.LLMAPIKey, "LLM_API_KEY", "OPENAI_API_KEY")
	setString(&cfg.ExtractMode, "EXTRACT_MODE")
	setString(&cfg.ListenAddr, "LISTEN_ADDR")
	setString(&cfg.UserAgent, "USER_AGENT")

	setDuration := func(dst *time.Duration, envKey string) {
		if *dst != 0 {
			return
		}
		if s := strings.TrimSpace(os.Getenv(envKey)); s != "" {
			if d, err := time.ParseDuration(s); err == nil && d > 0 {
				*dst = d
			}
		}
	}
	setDuration(&cfg.FetchTimeout, "FETCH_TIMEOUT")
	setDuration(&cfg.LLMTimeout, "LLM_TIMEOUT")

	if cfg.FetchMaxConcurrent == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("FETCH_MAX_CONCURRENT"))); err == nil && n > 0 {
			cfg.FetchMaxConcurrent = n
		}
	}

	if !cfg.Verbose {
		switch strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))) {
		case "1", "true", "yes", "on":
			cfg.Verbose = true
		}
	}
}
