// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package telemetry holds the run-scoped Prometheus metrics cmd/lint.go
// updates as its worker pool processes files, and an in-process
// snapshot suitable for presentation.PrintPrettyMetrics without
// standing up an HTTP server.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles the counters and histogram one lint invocation
// updates. Each field is a genuine prometheus.Collector, registered
// against a private prometheus.Registry so concurrent lint runs (e.g.
// in tests) don't collide on the global default registry.
type Registry struct {
	reg *prometheus.Registry

	FilesLinted      prometheus.Counter
	ViolationsFound  *prometheus.CounterVec
	LintDuration     prometheus.Histogram
	SyntaxErrors     prometheus.Counter
}

// New builds a Registry with every metric registered.
func New() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		reg: reg,
		FilesLinted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "svlint_files_linted_total",
			Help: "Total number of source files processed by the linter.",
		}),
		ViolationsFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "svlint_violations_total",
			Help: "Total number of violations found, labeled by rule id.",
		}, []string{"rule"}),
		LintDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "svlint_lint_duration_seconds",
			Help:    "Wall-clock time spent linting a single file.",
			Buckets: prometheus.DefBuckets,
		}),
		SyntaxErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "svlint_syntax_errors_total",
			Help: "Total number of files that failed to lex/parse.",
		}),
	}
	reg.MustRegister(r.FilesLinted, r.ViolationsFound, r.LintDuration, r.SyntaxErrors)
	return r
}

// Registerer exposes the underlying prometheus.Registerer, e.g. for a
// caller that wants to expose /metrics over HTTP via
// promhttp.HandlerFor(r.Gatherer(), ...).
func (r *Registry) Registerer() prometheus.Registerer { return r.reg }

// Gatherer exposes the underlying prometheus.Gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// ObserveFile records one file's lint pass: one increment to
// FilesLinted, one observation of elapsed into LintDuration, and one
// increment per violation found, labeled by rule id.
func (r *Registry) ObserveFile(elapsed time.Duration, violationsByRule map[string]int) {
	r.FilesLinted.Inc()
	r.LintDuration.Observe(elapsed.Seconds())
	for rule, count := range violationsByRule {
		r.ViolationsFound.WithLabelValues(rule).Add(float64(count))
	}
}

// ObserveSyntaxError increments SyntaxErrors.
func (r *Registry) ObserveSyntaxError() { r.SyntaxErrors.Inc() }

// Snapshot is a point-in-time readout of the counters, suitable for
// presentation's metrics table without scraping Prometheus' text
// exposition format.
type Snapshot struct {
	FilesLinted     float64
	ViolationsTotal float64
	SyntaxErrors    float64
	LintDurationSum float64
	LintDurationN   uint64
}

// Snapshot gathers the registry's current metric families into a flat
// Snapshot.
func (r *Registry) Snapshot() Snapshot {
	var s Snapshot
	families, err := r.reg.Gather()
	if err != nil {
		return s
	}
	for _, f := range families {
		switch f.GetName() {
		case "svlint_files_linted_total":
			if len(f.Metric) > 0 {
				s.FilesLinted = f.Metric[0].GetCounter().GetValue()
			}
		case "svlint_violations_total":
			for _, m := range f.Metric {
				s.ViolationsTotal += m.GetCounter().GetValue()
			}
		case "svlint_syntax_errors_total":
			if len(f.Metric) > 0 {
				s.SyntaxErrors = f.Metric[0].GetCounter().GetValue()
			}
		case "svlint_lint_duration_seconds":
			if len(f.Metric) > 0 {
				h := f.Metric[0].GetHistogram()
				s.LintDurationSum = h.GetSampleSum()
				s.LintDurationN = h.GetSampleCount()
			}
		}
	}
	return s
}
