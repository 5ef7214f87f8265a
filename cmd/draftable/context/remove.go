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

package context

import (
	"github.com/spf13/cobra"

	"github.com/draftable/compare-api-go/cmd/draftable/config"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Remove a context from configuration",
		Args:    cobra.ExactArgs(1),
		PreRunE: config.PreloadLocal,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load()
			if err != nil {
				return err
			}

			if err := conf.Remove(args[0]); err != nil {
				return err
			}
			if err := config.Save(conf); err != nil {
				return err
			}

			if conf.Current != "" {
				cmd.Printf("Context %s removed, %s is now current.\n", args[0], conf.Current)
			} else {
				cmd.Printf("Context %s removed.\n", args[0])
			}
			return nil
		},
	}
}

func init() {
	SubCmd.AddCommand(newRemoveCmd())
}
