// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debugapi

import (
	"fmt"
	"net/http"

	"github.com/ethersphere/logfan/pkg/jsonhttp"
	"github.com/ethersphere/logfan/pkg/log"
	"github.com/ethersphere/logfan/pkg/log/httpaccess"
	"github.com/ethersphere/logfan/pkg/metrics"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"resenje.org/web"
)

// newRouter constructs the routes:
// - /health
// - /metrics
// - /loggers
// - /sinks
func (s *Service) newRouter() *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(jsonhttp.NotFoundHandler)

	if s.gatherer != nil {
		router.Path("/metrics").Handler(web.ChainHandlers(
			httpaccess.NewHTTPAccessSuppressLogHandler(),
			web.FinalHandler(metrics.Handler(s.gatherer)),
		))
	}

	router.Handle("/health", web.ChainHandlers(
		httpaccess.NewHTTPAccessSuppressLogHandler(),
		web.FinalHandlerFunc(statusHandler),
	))

	router.Handle("/loggers", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.loggerGetHandler),
	})

	router.Handle("/sinks", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.sinkGetHandler),
	})

	return router
}

// setRouter sets the base Debug API handler with common middlewares.
func (s *Service) setRouter(router http.Handler) {
	s.handler = web.ChainHandlers(
		httpaccess.NewHTTPAccessLogHandler(s.logger, "debug api access"),
		handlers.RecoveryHandler(
			handlers.RecoveryLogger(recoveryLogger{s.logger}),
		),
		web.NoCacheHeadersHandler,
		web.FinalHandler(router),
	)
}

// recoveryLogger reports panics recovered from handlers.
type recoveryLogger struct {
	logger *log.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	_ = l.logger.Error("debug api panic", "error", fmt.Sprint(v...))
}

func statusHandler(w http.ResponseWriter, _ *http.Request) {
	jsonhttp.OK(w, struct {
		Status string `json:"status"`
	}{
		Status: "ok",
	})
}
