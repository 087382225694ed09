package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosummarize/internal/app"
	"github.com/hyperifyio/gosummarize/internal/server"
)

// shutdownGrace bounds how long in-flight requests may drain on SIGINT/SIGTERM.
const shutdownGrace = 15 * time.Second

type options struct {
	url    string
	asJSON bool
}

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := app.LoadEnvFiles(app.DefaultEnvFiles...); err != nil {
		log.Warn().Err(err).Msg("dotenv load failed")
	}

	var (
		opts               options
		configPath         string
		listenAddr         string
		outputPDF          string
		llmBaseURL         string
		llmModel           string
		llmKey             string
		extractMode        string
		userAgent          string
		fetchTimeout       time.Duration
		fetchMaxConcurrent int
		llmTimeout         time.Duration
		verbose            bool
		showVersion        bool
	)

	flag.StringVar(&opts.url, "url", "", "Summarize a single URL and exit")
	flag.BoolVar(&opts.asJSON, "json", false, "Print the one-shot result as JSON")
	flag.StringVar(&outputPDF, "output.pdf", "", "Also write the one-shot summary to this PDF file")
	flag.StringVar(&listenAddr, "serve", "", "HTTP listen address when -url is not given (default :8080, env LISTEN_ADDR)")
	flag.StringVar(&configPath, "config", os.Getenv("GOSUMMARIZE_CONFIG"), "Path to YAML or JSON config file")
	flag.StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL (env LLM_BASE_URL)")
	flag.StringVar(&llmModel, "llm.model", "", "Model name (env LLM_MODEL, default gpt-4o-mini)")
	flag.StringVar(&llmKey, "llm.key", "", "API key for the OpenAI-compatible server (env LLM_API_KEY or OPENAI_API_KEY)")
	flag.DurationVar(&llmTimeout, "llm.timeout", 0, "Timeout for the summary completion (env LLM_TIMEOUT, default 45s)")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 0, "Timeout for fetching the page (env FETCH_TIMEOUT, default 20s)")
	flag.IntVar(&fetchMaxConcurrent, "fetch.maxConcurrent", 0, "Maximum in-flight page fetches, 0 for unlimited (env FETCH_MAX_CONCURRENT)")
	flag.StringVar(&extractMode, "extract.mode", "", "Extraction strategy: heuristic or readability (env EXTRACT_MODE)")
	flag.StringVar(&userAgent, "ua", "", "User-Agent for page fetches (env USER_AGENT)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(app.VersionString())
		return
	}

	// Precedence: flags > env > config file > defaults
	cfg := app.Config{
		FetchTimeout:       fetchTimeout,
		FetchMaxConcurrent: fetchMaxConcurrent,
		UserAgent:          userAgent,
		ExtractMode:        extractMode,
		LLMBaseURL:         llmBaseURL,
		LLMModel:           llmModel,
		LLMAPIKey:          llmKey,
		LLMTimeout:         llmTimeout,
		ListenAddr:         listenAddr,
		OutputPDFPath:      outputPDF,
		Verbose:            verbose,
	}
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if opts.url != "" {
		err = run(ctx, cfg, opts, os.Stdout)
	} else {
		err = serve(ctx, cfg)
	}
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps caller-side problems (bad URL, unreadable page) to 2 and
// everything else to 1.
func exitCode(err error) int {
	var ae *app.Error
	if errors.As(err, &ae) && ae.Status() < 500 {
		return 2
	}
	return 1
}

type jsonResult struct {
	Success bool   `json:"success"`
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
	URL     string `json:"url,omitempty"`
	Source  string `json:"source,omitempty"`
	Error   string `json:"error,omitempty"`
}

// run summarizes one URL and prints the result to out.
func run(ctx context.Context, cfg app.Config, opts options, out io.Writer) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	res, err := a.Summarize(ctx, opts.url)
	if err != nil {
		if opts.asJSON {
			_ = writeJSON(out, jsonResult{Error: app.MessageOf(err)})
		} else {
			fmt.Fprintln(out, app.MessageOf(err))
		}
		return err
	}

	if opts.asJSON {
		if err := writeJSON(out, jsonResult{Success: true, Title: res.Title, Summary: res.Summary, URL: res.Article.URL, Source: res.Source}); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	} else {
		fmt.Fprintf(out, "%s\n\n%s\n", res.Title, res.Summary)
	}

	if path := a.Config().OutputPDFPath; path != "" {
		if err := app.WriteSummaryPDF(res, path); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", path).Msg("wrote pdf")
	}
	return nil
}

func serve(ctx context.Context, cfg app.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	effective := a.Config()
	srv, err := server.New(a, effective.RequestTimeout)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx, effective.ListenAddr, shutdownGrace)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
