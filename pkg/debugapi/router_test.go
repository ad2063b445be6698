// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debugapi_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ethersphere/logfan/pkg/jsonhttp"
	"github.com/ethersphere/logfan/pkg/jsonhttp/jsonhttptest"
	"github.com/ethersphere/logfan/pkg/log"
	"github.com/ethersphere/logfan/pkg/metrics"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOptions{})

	jsonhttptest.Request(t, srv.Client, http.MethodGet, "/health", http.StatusOK,
		jsonhttptest.WithExpectedJSONResponse(struct {
			Status string `json:"status"`
		}{
			Status: "ok",
		}),
	)

	if n := srv.AccessLog.Len(); n != 0 {
		t.Errorf("got %d access log entries, want none", n)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOptions{})

	jsonhttptest.Request(t, srv.Client, http.MethodGet, "/storage", http.StatusNotFound,
		jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
			Message: http.StatusText(http.StatusNotFound),
			Code:    http.StatusNotFound,
		}),
	)

	if n := srv.AccessLog.Len(); n != 1 {
		t.Fatalf("got %d access log entries, want 1", n)
	}
	entry := srv.AccessLog.Entries()[0]
	if !strings.Contains(entry, "status:404") || !strings.HasSuffix(entry, " [debugapi]\n") {
		t.Errorf("unexpected access log entry %q", entry)
	}
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	logs := log.NewContext()
	registry, err := metrics.NewRegistry(logs)
	if err != nil {
		t.Fatal(err)
	}
	if err := logs.AddSink(log.NewTextSink(new(log.Buffer), nil), log.SeverityAll); err != nil {
		t.Fatal(err)
	}
	if err := logs.Logger("svc").Error("fail"); err != nil {
		t.Fatal(err)
	}

	srv := newTestServer(t, testServerOptions{Logs: logs, Gatherer: registry})

	var body []byte
	jsonhttptest.Request(t, srv.Client, http.MethodGet, "/metrics", http.StatusOK,
		jsonhttptest.WithPutResponseBody(&body),
	)
	if !strings.Contains(string(body), "logfan_log_error_count 1") {
		t.Errorf("metrics do not contain the error count:\n%s", body)
	}
	if n := srv.AccessLog.Len(); n != 0 {
		t.Errorf("got %d access log entries, want none", n)
	}
}

func TestMetricsWithoutGatherer(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, testServerOptions{}).Client

	jsonhttptest.Request(t, client, http.MethodGet, "/metrics", http.StatusNotFound)
}

func TestResponseHeaders(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, testServerOptions{}).Client

	jsonhttptest.Request(t, client, http.MethodGet, "/health", http.StatusOK,
		jsonhttptest.WithExpectedResponseHeader("Cache-Control", "no-cache, no-store, must-revalidate"),
		jsonhttptest.WithExpectedResponseHeader("Pragma", "no-cache"),
		jsonhttptest.WithExpectedResponseHeader("Expires", "0"),
		jsonhttptest.WithExpectedResponseHeader("X-Content-Type-Options", "nosniff"),
		jsonhttptest.WithNonEmptyResponseHeader("Content-Type"),
	)
}

func TestMethodHandler(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, testServerOptions{}).Client

	t.Run("not allowed", func(t *testing.T) {
		t.Parallel()

		jsonhttptest.Request(t, client, http.MethodDelete, "/sinks", http.StatusMethodNotAllowed,
			jsonhttptest.WithExpectedResponseHeader("Allow", "GET"),
			jsonhttptest.WithExpectedResponse([]byte(`{"message":"Method Not Allowed","code":405}`+"\n")),
		)
	})

	t.Run("options", func(t *testing.T) {
		t.Parallel()

		jsonhttptest.Request(t, client, http.MethodOptions, "/sinks", http.StatusOK,
			jsonhttptest.WithExpectedResponseHeader("Allow", "GET"),
			jsonhttptest.WithNoResponseBody(),
		)
	})
}

func TestAccessLogUserAgent(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOptions{})

	jsonhttptest.Request(t, srv.Client, http.MethodGet, "/loggers", http.StatusOK,
		jsonhttptest.WithRequestHeader("User-Agent", "logfan-test"),
	)

	if n := srv.AccessLog.Len(); n != 1 {
		t.Fatalf("got %d access log entries, want 1", n)
	}
	if entry := srv.AccessLog.Entries()[0]; !strings.Contains(entry, "user-agent:logfan-test") {
		t.Errorf("access log entry %q does not contain the user agent", entry)
	}
}
