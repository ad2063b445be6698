// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package httpaccess records served HTTP requests as log records.
package httpaccess

import (
	"net"
	"net/http"
	"time"

	"github.com/ethersphere/logfan/pkg/log"
)

// NewHTTPAccessSuppressLogHandler creates a
// handler that will suppress access log messages.
func NewHTTPAccessSuppressLogHandler() func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rr, ok := w.(*responseRecorder); ok {
				rr.suppressed = true
			}
			h.ServeHTTP(w, r)
		})
	}
}

// NewHTTPAccessLogHandler creates a handler that will log a message
// after a request has been served. Requests answered with a server error
// status are logged with log.SeverityError, all others with log.SeverityNotify.
func NewHTTPAccessLogHandler(logger *log.Logger, message string) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rr, ok := w.(*responseRecorder)
			if !ok { // No need to layer on another responseRecorder.
				rr = &responseRecorder{ResponseWriter: w}
			}

			now := time.Now()
			h.ServeHTTP(rr, r)
			if ok || rr.suppressed {
				return
			}
			duration := time.Since(now)

			status := rr.status
			if status == 0 {
				status = http.StatusOK
			}

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			fields := []interface{}{
				"ip", ip,
				"method", r.Method,
				"host", r.Host,
				"uri", r.RequestURI,
				"proto", r.Proto,
				"status", status,
				"size", rr.size,
				"duration", duration,
			}
			if v := r.Referer(); v != "" {
				fields = append(fields, "referrer", v)
			}
			if v := r.UserAgent(); v != "" {
				fields = append(fields, "user-agent", v)
			}

			// Sink failures are reported through the context hooks.
			if status >= http.StatusInternalServerError {
				_ = logger.Error(message, fields...)
				return
			}
			_ = logger.Notify(message, fields...)
		})
	}
}

// responseRecorder is an implementation of
// http.ResponseWriter that records the response status and size.
type responseRecorder struct {
	http.ResponseWriter

	status     int
	size       int
	suppressed bool
}

// Write implements http.ResponseWriter.
func (rr *responseRecorder) Write(b []byte) (int, error) {
	size, err := rr.ResponseWriter.Write(b)
	rr.size += size
	return size, err
}

// WriteHeader implements http.ResponseWriter.
func (rr *responseRecorder) WriteHeader(s int) {
	rr.ResponseWriter.WriteHeader(s)
	if rr.status == 0 {
		rr.status = s
	}
}

// Flush implements http.Flusher.
func (rr *responseRecorder) Flush() {
	if f, ok := rr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
