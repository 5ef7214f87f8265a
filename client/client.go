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

// Package client provides the client of the Draftable comparison API. A
// Client holds the credentials of an account and exposes the comparisons and
// exports endpoints.
//
//	cli, err := client.New(accountID, authToken)
//	left, _ := client.MakeSide("https://example.com/old.pdf", "", "")
//	right, _ := client.MakeSide("https://example.com/new.pdf", "", "")
//	comparison, err := cli.Comparisons.Create(ctx, left, right)
package client

import (
	"fmt"
	"time"

	"github.com/draftable/compare-api-go/internal/validation"
	"github.com/draftable/compare-api-go/pkg/errors"
	"github.com/draftable/compare-api-go/pkg/identifier"
	"github.com/draftable/compare-api-go/pkg/logging"
	"github.com/draftable/compare-api-go/pkg/transport"
	"github.com/draftable/compare-api-go/pkg/urls"
)

// Client is the entry point of the API. Its credentials, base URL and TLS
// setting are fixed at construction. It is safe for concurrent use.
type Client struct {
	accountID string
	authToken string
	baseURL   urls.URL
	insecure  bool

	conn   *transport.Client
	logger logging.Logger
	rand   identifier.Source
	clock  func() time.Time

	// Comparisons is the endpoint of comparisons.
	Comparisons *Comparisons

	// Exports is the endpoint of exports.
	Exports *Exports
}

// New creates an instance of Client for the given account.
func New(accountID, authToken string, opts ...Option) (*Client, error) {
	if accountID == "" {
		return nil, errors.InvalidArgumentFor("account_id", "account_id is a required field")
	}
	if authToken == "" {
		return nil, errors.InvalidArgumentFor("auth_token", "auth_token is a required field")
	}

	options := Options{
		BaseURL:    DefaultBaseURL,
		RandSource: identifier.DefaultSource,
		Clock:      time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}

	baseURL, err := validation.ValidateURL(options.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	logger := options.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	conn, err := transport.New(
		transport.WithToken(authToken),
		transport.WithInsecureSkipVerify(options.InsecureSkipVerify),
		transport.WithLogger(logger),
		transport.WithMetrics(options.Metrics),
		transport.WithHTTPClient(options.HTTPClient),
	)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	cli := &Client{
		accountID: accountID,
		authToken: authToken,
		baseURL:   urls.New(baseURL),
		insecure:  options.InsecureSkipVerify,
		conn:      conn,
		logger:    logger,
		rand:      options.RandSource,
		clock:     options.Clock,
	}
	cli.Comparisons = &Comparisons{client: cli}
	cli.Exports = &Exports{client: cli}

	return cli, nil
}

// AccountID returns the account the client acts for.
func (c *Client) AccountID() string {
	return c.accountID
}

// AuthToken returns the auth token of the account.
func (c *Client) AuthToken() string {
	return c.authToken
}

// BaseURL returns the endpoint of the API.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// VerifySSL returns whether TLS certificates of the API are verified.
func (c *Client) VerifySSL() bool {
	return !c.insecure
}

// String returns a description of the client without its auth token.
func (c *Client) String() string {
	return fmt.Sprintf(
		"Client(account_id=%s, auth_token=<redacted>, base_url=%s, verify_ssl=%t)",
		c.accountID, c.baseURL, c.VerifySSL(),
	)
}

func (c *Client) now() time.Time {
	return c.clock()
}
