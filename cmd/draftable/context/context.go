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

// Package context provides the commands that manage the named contexts of
// the configuration file.
package context

import (
	"github.com/spf13/cobra"
)

var (
	// SubCmd represents the context command.
	SubCmd = &cobra.Command{
		Use:     "context",
		Aliases: []string{"ctx"},
		Short:   "Manage named contexts of accounts and deployments",
	}
)
