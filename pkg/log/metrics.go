// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	m "github.com/ethersphere/logfan/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// metrics groups various metrics counters for statistical reasons.
type metrics struct {
	ErrorCount   prometheus.Counter
	WarningCount prometheus.Counter
	NotifyCount  prometheus.Counter
	TraceCount   prometheus.Counter
	FailureCount prometheus.Counter
}

// Fire implements Hook interface.
func (m *metrics) Fire(s Severity, err error) {
	if err != nil {
		m.FailureCount.Inc()
		return
	}
	switch s {
	case SeverityError:
		m.ErrorCount.Inc()
	case SeverityWarning:
		m.WarningCount.Inc()
	case SeverityNotify:
		m.NotifyCount.Inc()
	case SeverityTrace:
		m.TraceCount.Inc()
	}
}

// newLogMetrics returns pointer to a new metrics instance ready to use.
func newLogMetrics() *metrics {
	const subsystem = "log"

	return &metrics{
		ErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "error_count",
			Help:      "Number of ERROR records delivered to sinks.",
		}),
		WarningCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "warning_count",
			Help:      "Number of WARNING records delivered to sinks.",
		}),
		NotifyCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "notify_count",
			Help:      "Number of NOTIFY records delivered to sinks.",
		}),
		TraceCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "trace_count",
			Help:      "Number of TRACE records delivered to sinks.",
		}),
		FailureCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "delivery_failure_count",
			Help:      "Number of records sinks failed to accept.",
		}),
	}
}
