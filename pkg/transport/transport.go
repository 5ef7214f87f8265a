/*
 * Copyright 2026 The Draftable Compare API Go Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package transport sends authenticated requests to the Draftable API.
//
// POST bodies are sent as JSON unless they carry a File, in which case the
// nested payload is flattened into dotted keys and sent as multipart form
// data. Responses other than 2xx become *errors.HTTPError and failures to
// reach the API become connection errors. Requests are never retried.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/xid"
	"golang.org/x/net/http2"

	"github.com/draftable/compare-api-go/pkg/errors"
	"github.com/draftable/compare-api-go/pkg/logging"
	"github.com/draftable/compare-api-go/pkg/metrics/prometheus"
)

// Option configures Options.
type Option func(*Options)

// WithToken configures the auth token sent with every request.
func WithToken(token string) Option {
	return func(o *Options) { o.Token = token }
}

// WithInsecureSkipVerify configures whether TLS certificates of the API are
// left unverified, e.g. for self-hosted deployments with self-signed
// certificates.
func WithInsecureSkipVerify(skip bool) Option {
	return func(o *Options) { o.InsecureSkipVerify = skip }
}

// WithLogger configures the Logger of the client.
func WithLogger(logger logging.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithMetrics configures the Metrics of the client.
func WithMetrics(metrics *prometheus.Metrics) Option {
	return func(o *Options) { o.Metrics = metrics }
}

// WithHTTPClient configures the HTTP client requests are sent with. Its
// transport is used as is, so InsecureSkipVerify does not apply to it.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) { o.HTTPClient = client }
}

// Options configures how we set up the client.
type Options struct {
	// Token is the auth token of the account.
	Token string

	// InsecureSkipVerify is whether to skip verifying TLS certificates.
	InsecureSkipVerify bool

	// Logger is the Logger of the client. Requests are logged at debug level
	// and failures at warn level. A logger stored in the context of a call
	// with logging.With takes its place for that call.
	Logger logging.Logger

	// Metrics records every request when set.
	Metrics *prometheus.Metrics

	// HTTPClient is the HTTP client to send requests with.
	HTTPClient *http.Client
}

// Client sends authenticated requests to the API. It is safe for concurrent
// use.
type Client struct {
	conn    *http.Client
	logger  logging.Logger
	metrics *prometheus.Metrics
}

// New creates an instance of Client.
func New(opts ...Option) (*Client, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	var base http.RoundTripper
	conn := &http.Client{}
	if options.HTTPClient != nil {
		*conn = *options.HTTPClient
		base = options.HTTPClient.Transport
	} else {
		transport := &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion:         tls.VersionTLS12,
				InsecureSkipVerify: options.InsecureSkipVerify, // #nosec G402
			},
		}
		if err := http2.ConfigureTransport(transport); err != nil {
			return nil, fmt.Errorf("configure http2: %w", err)
		}
		base = transport
	}
	conn.Transport = NewAuthTransport(options.Token, base)

	logger := options.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	return &Client{
		conn:    conn,
		logger:  logger,
		metrics: options.Metrics,
	}, nil
}

// Get sends a GET request with the given query parameters and returns the
// JSON response body.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) (json.RawMessage, error) {
	if len(params) > 0 {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidArgument, "parse url")
		}
		query := u.Query()
		for key, values := range params {
			for _, value := range values {
				query.Add(key, value)
			}
		}
		u.RawQuery = query.Encode()
		rawURL = u.String()
	}

	body, err := c.do(ctx, http.MethodGet, rawURL, nil, "", 0)
	if err != nil {
		return nil, err
	}
	return asJSON(body)
}

// Post sends the payload and returns the JSON response body. The payload is
// sent as multipart form data when it carries a File and as JSON otherwise.
func (c *Client) Post(ctx context.Context, rawURL string, payload Payload) (json.RawMessage, error) {
	var body io.Reader
	var contentType string
	files := 0

	if HasFile(payload) {
		for _, f := range Flatten(payload) {
			switch f.Value.(type) {
			case File, *File:
				files++
			}
		}

		reader, writer := io.Pipe()
		form := multipart.NewWriter(writer)
		go func() {
			_, err := writeMultipart(form, payload)
			writer.CloseWithError(err)
		}()

		body = reader
		contentType = form.FormDataContentType()
	} else {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidArgument, "marshal payload")
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	data, err := c.do(ctx, http.MethodPost, rawURL, body, contentType, files)
	if err != nil {
		return nil, err
	}
	return asJSON(data)
}

// Delete sends a DELETE request. The response body is discarded.
func (c *Client) Delete(ctx context.Context, rawURL string) error {
	_, err := c.do(ctx, http.MethodDelete, rawURL, nil, "", 0)
	return err
}

func (c *Client) do(
	ctx context.Context,
	method, rawURL string,
	body io.Reader,
	contentType string,
	files int,
) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		if closer, ok := body.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, errors.Wrap(err, errors.ErrCodeInvalidArgument, "new request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestID := xid.New().String()
	resource := resourceOf(req.URL)
	logger := logging.FromOr(ctx, c.logger)
	logger.Debugw("sending request", "request_id", requestID, "method", method, "url", rawURL)

	start := time.Now()
	resp, err := c.conn.Do(req)
	if err != nil {
		c.observe(method, resource, 0, start, files)
		logger.Warnw("request failed", "request_id", requestID, "method", method, "url", rawURL, "error", err)
		return nil, errors.Connection(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error(err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	c.observe(method, resource, resp.StatusCode, start, files)
	if err != nil {
		logger.Warnw("read response failed", "request_id", requestID, "error", err)
		return nil, errors.Connection(err)
	}

	logger.Debugw(
		"received response",
		"request_id", requestID,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewHTTPError(resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) observe(method, resource string, status int, start time.Time, files int) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveRequest(method, resource, status, time.Since(start))
	if files > 0 && status != 0 {
		c.metrics.AddUploadedFiles(files)
	}
}

// asJSON returns the body when it is a JSON document.
func asJSON(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, errors.Internal(fmt.Sprintf("unexpected response from the API: %.100q", body))
	}
	return body, nil
}

// resourceOf returns the API resource a URL addresses, used as a metric
// label.
func resourceOf(u *url.URL) string {
	for _, segment := range strings.Split(u.Path, "/") {
		switch segment {
		case "comparisons", "exports":
			return segment
		}
	}
	return "other"
}
