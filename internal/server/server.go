// Package server exposes the summarizer as a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosummarize/internal/app"
)

// maxRequestBytes bounds the JSON request body.
const maxRequestBytes = 64 << 10

// Summarizer is the pipeline the server drives; *app.App implements it.
type Summarizer interface {
	Summarize(ctx context.Context, rawURL string) (app.Result, error)
}

type Server struct {
	summarizer     Summarizer
	requestTimeout time.Duration
}

// New returns a server. A zero requestTimeout leaves requests bounded only by
// the pipeline's own fetch and LLM timeouts.
func New(s Summarizer, requestTimeout time.Duration) (*Server, error) {
	if s == nil {
		return nil, errors.New("summarizer required")
	}
	return &Server{summarizer: s, requestTimeout: requestTimeout}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/summarize", s.handleSummarize)
	mux.HandleFunc("/healthz", s.handleHealth)
	return logMiddleware(mux)
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests for up to shutdownGrace.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownGrace time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// --- Handlers ---

type summarizeReq struct {
	URL string `json:"url"`
}

type summarizeResp struct {
	Success bool   `json:"success"`
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, summarizeResp{Error: "Method not allowed"})
		return
	}
	var req summarizeReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("decode request")
		writeJSON(w, http.StatusBadRequest, summarizeResp{Error: "Invalid request body"})
		return
	}

	ctx := r.Context()
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}
	res, err := s.summarizer.Summarize(ctx, req.URL)
	if err != nil {
		writeJSON(w, app.StatusOf(err), summarizeResp{Error: app.MessageOf(err)})
		return
	}
	writeJSON(w, http.StatusOK, summarizeResp{Success: true, Title: res.Title, Summary: res.Summary})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": app.BuildVersion})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		ev := log.Info()
		if rec.status >= 500 {
			ev = log.Warn()
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}
