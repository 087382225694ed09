package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// DefaultUserAgent mimics a desktop Chrome browser. Many publishers serve a
// stripped or blocked page to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes = 5 << 20

// ErrUnsupportedContentType is returned when the response is clearly not a
// web page (images, PDFs, archives).
var ErrUnsupportedContentType = errors.New("unsupported content type")

// StatusError reports a non-2xx response from the target site.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Page is a fetched HTML document. URL is the final URL after redirects.
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client wraps http.Client with a browser-like request signature, a bounded
// redirect policy and a per-request timeout. It never retries.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// PerRequestTimeout bounds each request including body read. Zero disables.
	PerRequestTimeout time.Duration
	// RedirectMaxHops caps redirect following to avoid loops. Zero means default (5).
	RedirectMaxHops int
	// MaxBodyBytes caps the body read. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	// MaxConcurrent limits concurrent in-flight requests per client instance.
	// Zero means unlimited.
	MaxConcurrent int

	// internal limiter initialized on first use when MaxConcurrent > 0
	limiter     chan struct{}
	limiterOnce sync.Once
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating caller's client
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{CheckRedirect: c.checkRedirectFunc()}
}

// Get issues a single GET for rawURL and returns the decoded page.
func (c *Client) Get(ctx context.Context, rawURL string) (*Page, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()

	if c.PerRequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.PerRequestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	// Reject non-HTTP(S) schemes early
	if !isHTTPScheme(req.URL) {
		return nil, fmt.Errorf("unsupported URL scheme: %q", req.URL.Scheme)
	}
	c.setBrowserHeaders(req)

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: finalURL}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isAllowedContentType(contentType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, contentType)
	}

	limit := c.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	body, err := decodeBody(io.LimitReader(resp.Body, limit), contentType)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Page{URL: finalURL, StatusCode: resp.StatusCode, ContentType: contentType, Body: body}, nil
}

func (c *Client) setBrowserHeaders(req *http.Request) {
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	// Accept-Encoding is left to the transport so gzip is decoded transparently.
}

// decodeBody converts the body to UTF-8 using the declared or sniffed charset
// and normalizes it to NFC.
func decodeBody(r io.Reader, contentType string) ([]byte, error) {
	utf8Reader, err := charset.NewReader(r, contentType)
	if err != nil {
		// Unknown charset label: fall back to the raw bytes.
		utf8Reader = r
	}
	b, err := io.ReadAll(utf8Reader)
	if err != nil {
		return nil, err
	}
	return norm.NFC.Bytes(b), nil
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		// Only allow http/https during redirects
		if !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// isAllowedContentType accepts HTML, XHTML, XML and plain text, and a missing
// header, since many small sites omit it.
func isAllowedContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if ct == "" {
		return true
	}
	return strings.HasPrefix(ct, "text/") ||
		strings.HasPrefix(ct, "application/xhtml+xml") ||
		strings.HasPrefix(ct, "application/xml")
}

func (c *Client) acquire(ctx context.Context) error {
	if c.MaxConcurrent <= 0 {
		return nil
	}
	c.limiterOnce.Do(func() {
		c.limiter = make(chan struct{}, c.MaxConcurrent)
	})
	select {
	case c.limiter <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) release() {
	if c.MaxConcurrent <= 0 || c.limiter == nil {
		return
	}
	select {
	case <-c.limiter:
	default:
		// should not happen, but avoid blocking
	}
}
