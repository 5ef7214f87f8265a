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

package config

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftable/compare-api-go/client"
	"github.com/draftable/compare-api-go/pkg/logging"
)

// Settings are the connection settings a command runs with.
type Settings struct {
	Account  string
	Token    string
	BaseURL  string
	Insecure bool
}

var (
	// Flags holds the connection settings given as global flags.
	Flags Settings

	// EnvName is the name of the context given with --env.
	EnvName string

	active Settings
)

func init() {
	viper.SetEnvPrefix("DR")
	for _, key := range []string{"account", "token", "base_url", "env"} {
		if err := viper.BindEnv(key); err != nil {
			panic(err)
		}
	}
}

// FromEnv returns the settings of DR_ACCOUNT, DR_TOKEN and DR_BASE_URL.
func FromEnv() Settings {
	return Settings{
		Account: viper.GetString("account"),
		Token:   viper.GetString("token"),
		BaseURL: viper.GetString("base_url"),
	}
}

// Resolve combines the sources of settings. Environment variables come
// first. A named context replaces them; without a name, the current context
// of the file fills in when the environment lacks credentials. Flags override
// whatever they set.
func Resolve(conf *Config, env Settings, envName string, flags Settings) (Settings, error) {
	settings := env

	if envName != "" {
		ctx, err := conf.Get(envName)
		if err != nil {
			return Settings{}, err
		}
		settings = fromContext(ctx)
	} else if (env.Account == "" || env.Token == "") && conf.Current != "" {
		if ctx, ok := conf.Contexts[conf.Current]; ok {
			settings = fromContext(ctx)
		}
	}

	if flags.Account != "" {
		settings.Account = flags.Account
	}
	if flags.Token != "" {
		settings.Token = flags.Token
	}
	if flags.BaseURL != "" {
		settings.BaseURL = flags.BaseURL
	}
	settings.Insecure = settings.Insecure || flags.Insecure

	if settings.Account == "" || settings.Token == "" {
		return Settings{}, ErrMissingCredentials
	}
	return settings, nil
}

func fromContext(ctx *Context) Settings {
	return Settings{
		Account:  ctx.Account,
		Token:    ctx.Token,
		BaseURL:  ctx.BaseURL,
		Insecure: ctx.Insecure,
	}
}

// ValidateOutput validates the output format.
func ValidateOutput(output string) error {
	switch output {
	case "", "yaml", "json":
		return nil
	default:
		return ErrInvalidOutput
	}
}

// PreloadLocal prepares commands that do not talk to the API.
func PreloadLocal(_ *cobra.Command, _ []string) error {
	if err := ValidateOutput(viper.GetString("output")); err != nil {
		return err
	}

	if level := viper.GetString("log-level"); level != "" {
		if err := logging.SetLogLevel(level); err != nil {
			return err
		}
	}
	return nil
}

// Preload prepares commands that talk to the API by resolving their
// connection settings.
func Preload(cmd *cobra.Command, args []string) error {
	if err := PreloadLocal(cmd, args); err != nil {
		return err
	}

	conf, err := Load()
	if err != nil {
		return err
	}

	envName := EnvName
	if envName == "" {
		envName = viper.GetString("env")
	}

	settings, err := Resolve(conf, FromEnv(), envName, Flags)
	if err != nil {
		return err
	}
	active = settings
	return nil
}

// NewClient creates a client with the settings resolved by Preload.
func NewClient(opts ...client.Option) (*client.Client, error) {
	options := []client.Option{
		client.WithInsecureSkipVerify(active.Insecure),
		client.WithLogger(logging.DefaultLogger()),
	}
	if active.BaseURL != "" {
		options = append(options, client.WithBaseURL(active.BaseURL))
	}
	options = append(options, opts...)

	cli, err := client.New(active.Account, active.Token, options...)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return cli, nil
}

// CommandContext returns the context of cmd carrying the CLI logger named
// after the command, which the client logs its requests with.
func CommandContext(cmd *cobra.Command) context.Context {
	return logging.With(cmd.Context(), logging.DefaultLogger().Named(cmd.Name()))
}
