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

package cli

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/draftable/compare-api-go/pkg/errors"
)

// DefaultPollInterval is the interval between two checks of a pending
// comparison or export.
const DefaultPollInterval = 2 * time.Second

// Poll calls check until it reports done, fails or ctx is done. The first
// check runs immediately and the next ones at most once per interval, which
// must be positive.
func Poll(ctx context.Context, interval time.Duration, check func(context.Context) (bool, error)) error {
	if interval <= 0 {
		return errors.InvalidArgumentFor(
			"poll-interval",
			fmt.Sprintf("poll-interval must be a positive duration, got %s", interval),
		)
	}

	limiter := rate.NewLimiter(rate.Every(interval), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		done, err := check(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
