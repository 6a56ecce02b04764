/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

var (
	// ErrClientClosed is returned by any call made after Close.
	ErrClientClosed = errors.New("http client is closed")
)

// TransportError is returned when a request did not produce a response,
// e.g. on connection, TLS or timeout failures.
type TransportError struct {
	Method  string
	URL     string
	TraceID string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: http request failed (trace ID: %s): %v", e.Method, e.URL, e.TraceID, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Response is a fully buffered HTTP response.
type Response struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	// Elapsed is the time between sending the request and receiving
	// the response headers.
	Elapsed time.Duration
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// ContentType returns the Content-Type header, or an empty string.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshaling %s %s response: %w", r.Method, r.URL, err)
	}

	return nil
}

// RequestOption modifies an outgoing request after all defaults are applied.
type RequestOption func(*http.Request)

// WithHeader sets a header on a single request.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// HTTPClient issues requests against a single base URL with shared headers.
// It is not safe for concurrent use, parallel workers should each create
// their own.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	headers http.Header
	config  *TestConfig
	closed  bool
}

// NewHTTPClient creates a client for baseURL, falling back to config.BaseURL
// when baseURL is empty.
func NewHTTPClient(config *TestConfig, baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newHTTPClientWithConfig(config, baseURL)
}

func NewHTTPClientWithConfig(config *TestConfig) *HTTPClient {
	return newHTTPClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newHTTPClientWithConfig(config *TestConfig, baseURL string) *HTTPClient {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // stdlib default

	if config.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // explicitly requested by configuration
		}
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")

	c := &HTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   config.RequestTimeout,
			Transport: transport,
		},
		headers: headers,
		config:  config,
	}

	if config.AuthToken != "" {
		c.SetAuthToken(config.AuthToken)
	}

	return c
}

// BaseURL returns the URL every endpoint is appended to.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per request timeout.
func (c *HTTPClient) Timeout() time.Duration {
	return c.client.Timeout
}

// SetAuthToken attaches a bearer token to all subsequent requests.
func (c *HTTPClient) SetAuthToken(token string) {
	c.headers.Set("Authorization", "Bearer "+token)
}

// Close releases pooled connections. The client cannot be used afterwards.
func (c *HTTPClient) Close() error {
	if c.closed {
		return ErrClientClosed
	}

	c.closed = true
	c.client.CloseIdleConnections()

	return nil
}

func (c *HTTPClient) Get(ctx context.Context, endpoint string, params url.Values, opts ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, endpoint, params, nil, "", opts)
}

// Post sends form data when form is non-nil, otherwise body encoded as JSON.
func (c *HTTPClient) Post(ctx context.Context, endpoint string, form url.Values, body any, opts ...RequestOption) (*Response, error) {
	return c.doRequestWithPayload(ctx, http.MethodPost, endpoint, form, body, opts)
}

// Put sends form data when form is non-nil, otherwise body encoded as JSON.
func (c *HTTPClient) Put(ctx context.Context, endpoint string, form url.Values, body any, opts ...RequestOption) (*Response, error) {
	return c.doRequestWithPayload(ctx, http.MethodPut, endpoint, form, body, opts)
}

func (c *HTTPClient) Delete(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, endpoint, nil, nil, "", opts)
}

func (c *HTTPClient) doRequestWithPayload(ctx context.Context, method, endpoint string, form url.Values, body any, opts []RequestOption) (*Response, error) {
	switch {
	case form != nil:
		return c.doRequest(ctx, method, endpoint, nil, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", opts)
	case body != nil:
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		return c.doRequest(ctx, method, endpoint, nil, bytes.NewReader(bodyBytes), "application/json", opts)
	default:
		return c.doRequest(ctx, method, endpoint, nil, nil, "", opts)
	}
}

// logError logs a generic error with trace context.
func (c *HTTPClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *HTTPClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// Each request gets its own so a failure can be found in the server logs.
func generateTraceID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

//nolint:cyclop // test code complexity is acceptable
func (c *HTTPClient) doRequest(ctx context.Context, method, endpoint string, params url.Values, body io.Reader, contentType string, opts []RequestOption) (*Response, error) {
	if c.closed {
		return nil, ErrClientClosed
	}

	fullURL := c.baseURL + endpoint

	if len(params) > 0 {
		separator := "?"
		if strings.Contains(fullURL, "?") {
			separator = "&"
		}

		fullURL += separator + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header = c.headers.Clone()

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, endpoint, duration, traceParent, err, "http request failed")

		return nil, &TransportError{Method: method, URL: fullURL, TraceID: extractTraceID(traceParent), Err: err}
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, endpoint, duration, traceParent, err, "reading response body")

		return nil, &TransportError{Method: method, URL: fullURL, TraceID: extractTraceID(traceParent), Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, endpoint, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, endpoint, string(respBody))
	}

	return &Response{
		Method:     method,
		URL:        fullURL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Elapsed:    duration,
	}, nil
}
