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

package client

import (
	"net/http"
	"time"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/pkg/identifier"
	"github.com/draftable/compare-api-go/pkg/logging"
	"github.com/draftable/compare-api-go/pkg/metrics/prometheus"
)

// DefaultBaseURL is the endpoint of the Draftable cloud API.
const DefaultBaseURL = "https://api.draftable.com/v1"

// Option configures Options.
type Option func(*Options)

// Options configures how we set up the client.
type Options struct {
	// BaseURL is the endpoint of the API. Self-hosted deployments use their
	// own, e.g. "https://draftable.example.com/api/v1".
	BaseURL string

	// InsecureSkipVerify is whether to skip verifying TLS certificates of the
	// API. It is fixed for the lifetime of the client.
	InsecureSkipVerify bool

	// Logger is the Logger of the client.
	Logger logging.Logger

	// Metrics records the requests of the client when set.
	Metrics *prometheus.Metrics

	// HTTPClient is the HTTP client to send requests with.
	HTTPClient *http.Client

	// RandSource is the source of generated comparison identifiers.
	RandSource identifier.Source

	// Clock returns the current time. It is used to resolve expiry and
	// validity deadlines.
	Clock func() time.Time
}

// WithBaseURL configures the endpoint of the API.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) { o.BaseURL = baseURL }
}

// WithInsecureSkipVerify configures whether TLS certificates of the API are
// left unverified.
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

// WithHTTPClient configures the HTTP client requests are sent with.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) { o.HTTPClient = client }
}

// WithRandSource configures the source of generated comparison identifiers.
func WithRandSource(src identifier.Source) Option {
	return func(o *Options) { o.RandSource = src }
}

// WithClock configures the clock of the client.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) { o.Clock = clock }
}

// CreateOption configures a comparison creation.
type CreateOption func(*createOptions)

type createOptions struct {
	identifier *string
	public     bool
	expires    types.Deadline
}

// WithComparisonIdentifier sets the identifier of the new comparison instead
// of generating one.
func WithComparisonIdentifier(id string) CreateOption {
	return func(o *createOptions) { o.identifier = &id }
}

// WithPublic makes the new comparison viewable without a signed URL.
func WithPublic(public bool) CreateOption {
	return func(o *createOptions) { o.public = public }
}

// WithExpires makes the new comparison expire at the given deadline.
func WithExpires(deadline types.Deadline) CreateOption {
	return func(o *createOptions) { o.expires = deadline }
}
