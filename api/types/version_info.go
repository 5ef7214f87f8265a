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

package types

// VersionInfo represents information of version.
type VersionInfo struct {
	// ClientVersion is the version of the draftable CLI and client library.
	ClientVersion *VersionDetail `json:"clientVersion,omitempty" yaml:"clientVersion,omitempty"`

	// BaseURL is the API endpoint the CLI is configured for.
	BaseURL string `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
}

// VersionDetail represents detail information of version.
type VersionDetail struct {
	// Version
	Version string `json:"version" yaml:"version"`

	// GitCommit
	GitCommit string `json:"gitCommit,omitempty" yaml:"gitCommit,omitempty"`

	// GoVersion
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// BuildDate
	BuildDate string `json:"buildDate" yaml:"buildDate"`
}
