package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"

	"github.com/hyperifyio/gosummarize/internal/fetch"
)

// Kind classifies a pipeline failure for callers.
type Kind int

const (
	KindUnexpected Kind = iota
	KindInvalidInput
	KindFetch
	KindExtraction
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindFetch:
		return "fetch"
	case KindExtraction:
		return "extraction"
	default:
		return "unexpected"
	}
}

// Input validation failures.
var (
	ErrURLRequired       = errors.New("url is required")
	ErrInvalidURL        = errors.New("invalid url format")
	ErrUnsupportedScheme = errors.New("unsupported url scheme")
)

// User-facing messages.
const (
	msgURLRequired       = "URL is required"
	msgInvalidURL        = "Invalid URL format. Please include http:// or https://"
	msgUnsupportedScheme = "Only HTTP and HTTPS URLs are supported"
	msgUnreachable       = "Could not reach the website. The URL may be invalid or the site may be blocking requests."
	msgTimeout           = "The website took too long to respond. Please try again or use a different URL."
	msgForbidden         = "Access to this URL is forbidden. The site may be blocking automated requests."
	msgNotFound          = "The requested page was not found. Please check the URL."
	msgFetchFailed       = "Failed to fetch content from the provided URL. Please try again later."
	msgInsufficient      = "Could not extract sufficient content from this URL. The page may not contain readable article content."
	msgUnexpected        = "An unexpected error occurred"
)

// Error is returned by App.Summarize. Err keeps the internal detail for logs;
// Message is what callers may show.
type Error struct {
	Kind  Kind
	Stage string
	URL   string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the kind to an HTTP status. Only caller input and content
// quality problems are 4xx; every fetch failure, a 404 from the target
// included, is reported as 500.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidInput, KindExtraction:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns a humanized description that never includes internal detail.
func (e *Error) Message() string {
	switch e.Kind {
	case KindInvalidInput:
		switch {
		case errors.Is(e.Err, ErrURLRequired):
			return msgURLRequired
		case errors.Is(e.Err, ErrUnsupportedScheme):
			return msgUnsupportedScheme
		}
		return msgInvalidURL
	case KindFetch:
		return fetchMessage(e.Err)
	case KindExtraction:
		return msgInsufficient
	default:
		return msgUnexpected
	}
}

func fetchMessage(err error) string {
	var se *fetch.StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusForbidden:
			return msgForbidden
		case http.StatusNotFound:
			return msgNotFound
		}
		return msgFetchFailed
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return msgTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return msgTimeout
	}
	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) || errors.Is(err, syscall.ECONNREFUSED) {
		return msgUnreachable
	}
	return msgFetchFailed
}

// StatusOf returns the HTTP status for any error returned by the app.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status()
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message for any error returned by the app.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message()
	}
	return msgUnexpected
}
