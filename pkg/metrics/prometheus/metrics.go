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

// Package prometheus provides Prometheus metrics of the API requests a client
// sends.
package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/draftable/compare-api-go/internal/version"
)

const (
	namespace     = "draftable"
	methodLabel   = "method"
	resourceLabel = "resource"
	codeLabel     = "code"

	// CodeConnectionError is the code label of requests that got no response.
	CodeConnectionError = "connection_error"
)

// Metrics manages the metric information of API requests.
type Metrics struct {
	registry *prometheus.Registry

	clientVersion          *prometheus.GaugeVec
	requestsTotal          *prometheus.CounterVec
	requestDurationSeconds *prometheus.HistogramVec
	uploadedFilesTotal     prometheus.Counter
}

// NewMetrics creates a new instance of Metrics with its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	metrics := &Metrics{
		registry: reg,
		clientVersion: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "version",
			Help:      "Which version is running. 1 for 'client_version' label with current version.",
		}, []string{"client_version"}),
		requestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests completed, regardless of success or failure.",
		}, []string{methodLabel, resourceLabel, codeLabel}),
		requestDurationSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "The time from sending an API request to receiving its response.",
		}, []string{methodLabel, resourceLabel}),
		uploadedFilesTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "uploaded_files_total",
			Help:      "The number of documents uploaded in multipart requests.",
		}),
	}
	metrics.clientVersion.With(prometheus.Labels{
		"client_version": version.Version,
	}).Set(1)

	return metrics
}

// ObserveRequest records a completed request. A status of 0 means no response
// was received.
func (m *Metrics) ObserveRequest(method, resource string, status int, elapsed time.Duration) {
	code := CodeConnectionError
	if status != 0 {
		code = strconv.Itoa(status)
	}

	m.requestsTotal.With(prometheus.Labels{
		methodLabel:   method,
		resourceLabel: resource,
		codeLabel:     code,
	}).Inc()
	m.requestDurationSeconds.With(prometheus.Labels{
		methodLabel:   method,
		resourceLabel: resource,
	}).Observe(elapsed.Seconds())
}

// AddUploadedFiles adds the number of files sent in a multipart request.
func (m *Metrics) AddUploadedFiles(count int) {
	m.uploadedFilesTotal.Add(float64(count))
}

// Registry returns the registry of the metrics, e.g. to expose it with
// promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
