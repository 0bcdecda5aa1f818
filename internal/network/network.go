// Package network builds the http clients used to talk to the Wargaming API.
package network

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 15 * time.Second
	dialTimeout    = 10 * time.Second
	keepAlive      = 30 * time.Second
)

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// ClientOpts controls how NewHTTPClient configures its transport.
type ClientOpts struct {
	// VerifyTLS toggles certificate verification. Only turn this off for debugging
	// proxies or broken local trust stores.
	VerifyTLS bool
	Timeout   time.Duration
}

// NewHTTPClient creates a client with a single dedicated transport so connections are
// reused between calls on the same API client.
func NewHTTPClient(opts ClientOpts) *http.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: keepAlive,
		}).DialContext,
		TLSClientConfig:       &tls.Config{InsecureSkipVerify: !opts.VerifyTLS}, //nolint:gosec
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: 6 * time.Second,
		MaxIdleConnsPerHost:   1,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// CloseIdle releases any idle connections held by doer when it supports it.
func CloseIdle(doer HTTPDoer) {
	if closer, ok := doer.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}
