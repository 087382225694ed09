package app

import (
	"net"
	"net/http"
	"time"
)

// defaultIdleConnsPerHost is the idle pool size per host when the caller
// sets no connection bound.
const defaultIdleConnsPerHost = 8

// newHTTPClient returns a client with its own pooled transport. Per-call
// deadlines come from contexts; timeout is only a backstop for calls made
// without one. A positive maxConnsPerHost caps connections to any single
// host and sizes the idle pool to match.
func newHTTPClient(timeout time.Duration, maxConnsPerHost int) *http.Client {
	idle := defaultIdleConnsPerHost
	if maxConnsPerHost > 0 {
		idle = maxConnsPerHost
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxConnsPerHost:     maxConnsPerHost,
		MaxIdleConnsPerHost: idle,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}
