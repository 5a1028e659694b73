// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package metrics collects fetch and render statistics and exports them in
// the Prometheus text format for the node exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "heatmap"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the Prometheus counters, histograms, and gauges of the service.
type Metrics struct {
	registry *prometheus.Registry

	Fetches       *prometheus.CounterVec   // labels: provider, outcome={success,error}
	FetchDuration *prometheus.HistogramVec // labels: provider
	Renders       *prometheus.CounterVec   // labels: format, outcome={success,error}
	RenderSeconds *prometheus.HistogramVec // labels: format
	Observations  prometheus.Gauge
	Cells         prometheus.Gauge
	LastRender    prometheus.Gauge
}

// New creates all metrics and registers them with a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetches_total",
			Help:      "Dataset fetches by provider and outcome.",
		}, []string{"provider", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a dataset fetch in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Heat map renders by output format and outcome.",
		}, []string{"format", "outcome"}),
		RenderSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of building and writing a heat map in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"format"}),
		Observations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_observations",
			Help:      "Number of monthly observations in the current dataset.",
		}),
		Cells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cells",
			Help:      "Number of cells in the last rendered heat map.",
		}),
		LastRender: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_render_timestamp_seconds",
			Help:      "Unix time of the last successful render.",
		}),
	}

	m.registry.MustRegister(
		m.Fetches,
		m.FetchDuration,
		m.Renders,
		m.RenderSeconds,
		m.Observations,
		m.Cells,
		m.LastRender,
	)

	return m
}

// ObserveFetch records one dataset fetch.
func (m *Metrics) ObserveFetch(provider string, took time.Duration, err error) {
	m.Fetches.WithLabelValues(provider, outcome(err)).Inc()
	m.FetchDuration.WithLabelValues(provider).Observe(took.Seconds())
}

// ObserveRender records one render pass. cells and at are only recorded
// for successful renders.
func (m *Metrics) ObserveRender(format string, took time.Duration, cells int, at time.Time, err error) {
	m.Renders.WithLabelValues(format, outcome(err)).Inc()
	m.RenderSeconds.WithLabelValues(format).Observe(took.Seconds())
	if err != nil {
		return
	}
	m.Cells.Set(float64(cells))
	m.LastRender.Set(float64(at.Unix()))
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
