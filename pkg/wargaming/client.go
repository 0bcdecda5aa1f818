// Package wargaming is a small client for the Wargaming.net public API.
//
// Every API method returns the same JSON envelope, so a single Get call covers all of
// them: the namespace selects the method (eg: wot/account/list) and Options carries its
// parameters.
//
//	server, _ := wargaming.ServerByName("eu", "")
//	client, _ := wargaming.New(appID, wargaming.English, server)
//	resp, err := client.Get(ctx, "wot/account/list", wargaming.Options{"search": "tanker"})
package wargaming

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/leighmacdonald/wgapi/internal/encoding"
	"github.com/leighmacdonald/wgapi/internal/network"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

var (
	// ErrNotModified is returned by GetAs when the server answers a conditional request
	// with 304. Get reports this through Response.NotModified instead.
	ErrNotModified = errors.New("not modified")

	errUnexpectedShape = errors.New("response is not a JSON object")
)

// HTTPDoer is the transport used by the client. *http.Client satisfies it.
type HTTPDoer = network.HTTPDoer

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the lazily created transport. SetSSLVerification and
// WithTimeout have no effect on a caller supplied client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.httpClient = doer
		c.customClient = true
	}
}

// WithSSLVerification toggles TLS certificate verification, enabled by default.
func WithSSLVerification(state bool) Option {
	return func(c *Client) {
		c.verifyTLS = state
	}
}

// WithTimeout sets the request timeout of the lazily created transport, 15s by default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// CallOption configures a single Get call.
type CallOption func(*callSettings)

type callSettings struct {
	etag       string
	etagSet    bool
	captureHdr bool
}

// WithETag makes the request conditional. The tag is given without quotes. When the data
// did not change since the tag was issued the response has NotModified set.
func WithETag(tag string) CallOption {
	return func(s *callSettings) {
		s.etag = tag
		s.etagSet = true
	}
}

// WithResponseHeaders captures the raw response headers into Response.Headers.
func WithResponseHeaders() CallOption {
	return func(s *callSettings) {
		s.captureHdr = true
	}
}

// Client performs requests against a single API server. The underlying transport is
// created on first use and reused for all following calls. All per call state lives on
// the request so a Client can be shared between goroutines.
type Client struct {
	applicationID string
	language      Language
	server        Server
	verifyTLS     bool
	timeout       time.Duration

	mu           sync.Mutex
	httpClient   HTTPDoer
	customClient bool
}

// New creates a client. When applicationID is empty the id stored on the server is used.
// An invalid server is reported as ErrConfig. A missing application id is ErrConfig as
// well, the API itself would only fail each request with INVALID_APPLICATION_ID.
func New(applicationID string, language Language, server Server, opts ...Option) (*Client, error) {
	if !server.Valid() {
		return nil, newError(ErrConfig, 0, errMissingURL.Error(), errMissingURL)
	}

	if applicationID == "" {
		applicationID = server.ApplicationID()
	}

	if applicationID == "" {
		return nil, newError(ErrConfig, 0, errMissingApplicationID.Error(), errMissingApplicationID)
	}

	if language == "" {
		language = DefaultLanguage
	}

	client := &Client{
		applicationID: applicationID,
		language:      language,
		server:        server,
		verifyTLS:     true,
		timeout:       network.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func (c *Client) ApplicationID() string {
	return c.applicationID
}

func (c *Client) Language() Language {
	return c.language
}

func (c *Client) Server() Server {
	return c.server
}

// SetSSLVerification changes certificate verification. The current transport is
// discarded so the next call picks up the new setting.
func (c *Client) SetSSLVerification(state bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.verifyTLS = state
	if c.customClient || c.httpClient == nil {
		return
	}

	network.CloseIdle(c.httpClient)
	c.httpClient = nil
}

func (c *Client) transport() HTTPDoer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient == nil {
		c.httpClient = network.NewHTTPClient(network.ClientOpts{VerifyTLS: c.verifyTLS, Timeout: c.timeout})
	}

	return c.httpClient
}

// URL builds the request url for namespace. The url always carries exactly one
// application_id and language parameter, followed by the encoded options.
func (c *Client) URL(namespace string, options Options) (string, error) {
	namespace = strings.Trim(strings.TrimSpace(namespace), "/")
	if namespace == "" {
		return "", notFoundError(namespace)
	}

	var builder strings.Builder
	builder.WriteString(c.server.baseURL())
	builder.WriteString("/")
	builder.WriteString(namespace)
	builder.WriteString("/?" + paramApplicationID + "=")
	builder.WriteString(c.applicationID)
	builder.WriteString("&" + paramLanguage + "=")
	builder.WriteString(c.language.String())

	if query := options.Encode(); query != "" {
		builder.WriteString("&")
		builder.WriteString(query)
	}

	return builder.String(), nil
}

// Get fetches namespace. Exactly one of these happens: a Response with data is returned,
// a Response with NotModified set is returned, or an *Error is returned.
func (c *Client) Get(ctx context.Context, namespace string, options Options, callOpts ...CallOption) (*Response, error) {
	var settings callSettings
	for _, opt := range callOpts {
		opt(&settings)
	}

	namespace = strings.Trim(strings.TrimSpace(namespace), "/")

	reqURL, errURL := c.URL(namespace, options)
	if errURL != nil {
		return nil, errURL
	}

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if errReq != nil {
		return nil, transportError(errReq)
	}

	req.Header.Set("Accept", "application/json")
	if settings.etagSet {
		req.Header.Set("If-None-Match", `"`+settings.etag+`"`)
	}

	slog.Debug("Requesting API data", slog.String("namespace", namespace), slog.String("url", c.redact(reqURL)))

	resp, errResp := c.transport().Do(req)
	if errResp != nil {
		return nil, transportError(errResp)
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	response := &Response{
		StatusCode: resp.StatusCode,
		ETag:       parseETag(resp.Header.Get("ETag")),
	}

	if settings.captureHdr {
		response.Headers = captureHeaders(resp)
	}

	if resp.StatusCode == http.StatusNotModified {
		response.NotModified = true

		return response, nil
	}

	body, errBody := io.ReadAll(resp.Body)
	if errBody != nil {
		return nil, transportError(errBody)
	}

	return interpret(namespace, body, response)
}

func interpret(namespace string, body []byte, response *Response) (*Response, error) {
	switch encoding.Detect(body) {
	case encoding.ShapeObject:
	case encoding.ShapeArray:
		// Arrays carry no status, same as an object with an unknown status.
		return nil, notFoundError(namespace)
	case encoding.ShapeScalar, encoding.ShapeInvalid:
		return nil, formatError(errUnexpectedShape)
	}

	env, errDecode := encoding.Decode[envelope](bytes.NewReader(body))
	if errDecode != nil {
		return nil, formatError(errDecode)
	}

	switch env.status() {
	case statusOK:
		response.Data = Value(env.Data)
		response.Meta = env.meta()

		return response, nil
	case statusError:
		return nil, applicationError(namespace, env.apiError())
	default:
		return nil, notFoundError(namespace)
	}
}

func (c *Client) redact(reqURL string) string {
	return strings.Replace(reqURL, paramApplicationID+"="+c.applicationID, paramApplicationID+"=redacted", 1)
}

// GetAs fetches namespace and decodes its data into T.
func GetAs[T any](ctx context.Context, client *Client, namespace string, options Options, callOpts ...CallOption) (T, error) {
	var value T

	resp, errGet := client.Get(ctx, namespace, options, callOpts...)
	if errGet != nil {
		return value, errGet
	}

	if resp.NotModified {
		return value, ErrNotModified
	}

	if errDecode := resp.Data.Decode(&value); errDecode != nil {
		return value, formatError(errDecode)
	}

	return value, nil
}
