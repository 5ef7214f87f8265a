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
	"context"
	"fmt"
	"time"

	"github.com/draftable/compare-api-go/api/converter"
	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/internal/validation"
	"github.com/draftable/compare-api-go/pkg/errors"
	"github.com/draftable/compare-api-go/pkg/identifier"
	"github.com/draftable/compare-api-go/pkg/signing"
	"github.com/draftable/compare-api-go/pkg/urls"
)

// DefaultSignedURLValidity is how long a signed viewer URL stays valid when
// no deadline is given.
const DefaultSignedURLValidity = 30 * time.Minute

// Comparisons is the endpoint of comparisons.
type Comparisons struct {
	client *Client
}

// All returns every comparison of the account.
func (c *Comparisons) All(ctx context.Context) ([]*types.Comparison, error) {
	data, err := c.client.conn.Get(ctx, c.comparisonsURL().String(), nil)
	if err != nil {
		return nil, err
	}
	return converter.FromComparisons(data)
}

// Get returns the comparison of the given identifier. A comparison that does
// not exist is reported with an error for which errors.IsNotFound is true.
func (c *Comparisons) Get(ctx context.Context, id string) (*types.Comparison, error) {
	id, err := validation.ValidateIdentifier(id)
	if err != nil {
		return nil, err
	}

	data, err := c.client.conn.Get(ctx, c.comparisonsURL().Join(id).String(), nil)
	if err != nil {
		return nil, err
	}
	return converter.FromComparison(data)
}

// Create creates a comparison of the given sides. Unless an identifier is
// given, a random one is generated; collisions with existing comparisons are
// reported by the API and not retried.
func (c *Comparisons) Create(
	ctx context.Context,
	left, right Side,
	opts ...CreateOption,
) (*types.Comparison, error) {
	var options createOptions
	for _, opt := range opts {
		opt(&options)
	}

	if isNilSide(left) {
		return nil, errors.InvalidArgumentFor("left", "left is a required field")
	}
	if isNilSide(right) {
		return nil, errors.InvalidArgumentFor("right", "right is a required field")
	}

	var id string
	if options.identifier != nil {
		validID, err := validation.ValidateIdentifier(*options.identifier)
		if err != nil {
			return nil, err
		}
		id = validID
	} else {
		id = c.GenerateIdentifier()
	}

	var expires *time.Time
	if !options.expires.IsZero() {
		at, err := validation.ValidateDeadline("expires", options.expires, c.client.now())
		if err != nil {
			return nil, err
		}
		expires = &at
	}

	c.client.logger.Debugw("creating comparison", "identifier", id, "public", options.public)

	payload := converter.ToComparison(
		id,
		left.payload("left"),
		right.payload("right"),
		options.public,
		expires,
	)
	data, err := c.client.conn.Post(ctx, c.comparisonsURL().String(), payload)
	if err != nil {
		return nil, err
	}
	return converter.FromComparison(data)
}

// Delete deletes the comparison of the given identifier.
func (c *Comparisons) Delete(ctx context.Context, id string) error {
	id, err := validation.ValidateIdentifier(id)
	if err != nil {
		return err
	}

	return c.client.conn.Delete(ctx, c.comparisonsURL().Join(id).String())
}

// PublicViewerURL returns the viewer URL of a public comparison. With wait,
// the viewer waits for the comparison to become ready instead of failing.
func (c *Comparisons) PublicViewerURL(id string, wait bool) (string, error) {
	id, err := validation.ValidateIdentifier(id)
	if err != nil {
		return "", err
	}

	u := c.viewerURL(id)
	if wait {
		u = u.Append("?wait")
	}
	return u.String(), nil
}

// SignedViewerURL returns a viewer URL of a private comparison, valid until
// the given deadline. A zero deadline means DefaultSignedURLValidity from now.
func (c *Comparisons) SignedViewerURL(id string, validUntil types.Deadline, wait bool) (string, error) {
	id, err := validation.ValidateIdentifier(id)
	if err != nil {
		return "", err
	}

	if validUntil.IsZero() {
		validUntil = types.DeadlineIn(DefaultSignedURLValidity)
	}
	at, err := validation.ValidateDeadline("valid_until", validUntil, c.client.now())
	if err != nil {
		return "", err
	}

	timestamp := at.Unix()
	signature := signing.Sign(c.client.accountID, c.client.authToken, id, timestamp)

	u := c.viewerURL(id).Append(fmt.Sprintf("?valid_until=%d&signature=%s", timestamp, signature))
	if wait {
		u = u.Append("&wait")
	}
	return u.String(), nil
}

// GenerateIdentifier returns a random identifier of 12 ASCII letters.
func (c *Comparisons) GenerateIdentifier() string {
	return identifier.Generate(c.client.rand)
}

func (c *Comparisons) comparisonsURL() urls.URL {
	return c.client.baseURL.Join("comparisons")
}

func (c *Comparisons) viewerURL(id string) urls.URL {
	return c.comparisonsURL().Join("viewer").Join(c.client.accountID).Join(id)
}
