// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debugapi exposes the debug API used to
// inspect the loggers and sinks of a logging context
// and the metrics of the process.
package debugapi

import (
	"net/http"

	"github.com/ethersphere/logfan/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
)

// Service implements http.Handler interface to be used in HTTP server.
type Service struct {
	logs     *log.Context
	logger   *log.Logger
	gatherer prometheus.Gatherer
	handler  http.Handler
}

// New creates a new Debug API Service inspecting logs. Every served
// request is logged through logger. Metrics are gathered from gatherer;
// the /metrics endpoint responds with 404 if gatherer is nil.
func New(logs *log.Context, logger *log.Logger, gatherer prometheus.Gatherer) *Service {
	s := &Service{
		logs:     logs,
		logger:   logger,
		gatherer: gatherer,
	}
	s.setRouter(s.newRouter())
	return s
}

// ServeHTTP implements http.Handler interface.
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
