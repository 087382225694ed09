package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
// Nested sections map naturally to flags/env.
type FileConfig struct {
	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`
	Verbose   bool   `yaml:"verbose" json:"verbose"`

	LLM struct {
		BaseURL string        `yaml:"base" json:"base"`
		Model   string        `yaml:"model" json:"model"`
		APIKey  string        `yaml:"key" json:"key"`
		Timeout time.Duration `yaml:"timeout" json:"timeout"`
	} `yaml:"llm" json:"llm"`

	Fetch struct {
		Timeout       time.Duration `yaml:"timeout" json:"timeout"`
		UserAgent     string        `yaml:"userAgent" json:"userAgent"`
		MaxBodyBytes  int64         `yaml:"maxBodyBytes" json:"maxBodyBytes"`
		MaxConcurrent int           `yaml:"maxConcurrent" json:"maxConcurrent"`
	} `yaml:"fetch" json:"fetch"`

	Extract struct {
		Mode string `yaml:"mode" json:"mode"`
	} `yaml:"extract" json:"extract"`

	Server struct {
		Listen         string        `yaml:"listen" json:"listen"`
		RequestTimeout time.Duration `yaml:"requestTimeout" json:"requestTimeout"`
	} `yaml:"server" json:"server"`
}

// LoadConfigFile reads YAML or JSON into FileConfig. Durations in JSON files
// are integer nanoseconds; YAML accepts strings such as "20s".
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset/zero in cfg. Flags and env should already have been
// applied; the file only supplies what they left empty.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.OutputPDFPath == "" && fc.OutputPDF != "" {
		cfg.OutputPDFPath = fc.OutputPDF
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}

	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.LLMTimeout == 0 && fc.LLM.Timeout > 0 {
		cfg.LLMTimeout = fc.LLM.Timeout
	}

	if cfg.FetchTimeout == 0 && fc.Fetch.Timeout > 0 {
		cfg.FetchTimeout = fc.Fetch.Timeout
	}
	if cfg.UserAgent == "" && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.MaxBodyBytes == 0 && fc.Fetch.MaxBodyBytes > 0 {
		cfg.MaxBodyBytes = fc.Fetch.MaxBodyBytes
	}

	if cfg.FetchMaxConcurrent == 0 && fc.Fetch.MaxConcurrent > 0 {
		cfg.FetchMaxConcurrent = fc.Fetch.MaxConcurrent
	}

	if cfg.ExtractMode == "" && fc.Extract.Mode != "" {
		cfg.ExtractMode = fc.Extract.Mode
	}

	if cfg.ListenAddr == "" && fc.Server.Listen != "" {
		cfg.ListenAddr = fc.Server.Listen
	}
	if cfg.RequestTimeout == 0 && fc.Server.RequestTimeout > 0 {
		cfg.RequestTimeout = fc.Server.RequestTimeout
	}
}
