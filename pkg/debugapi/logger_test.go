// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debugapi_test

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/ethersphere/logfan/pkg/jsonhttp"
	"github.com/ethersphere/logfan/pkg/jsonhttp/jsonhttptest"
	"github.com/ethersphere/logfan/pkg/log"
)

type loggerInfo struct {
	Name string `json:"name"`
}

type loggerResult struct {
	Loggers []loggerInfo `json:"loggers"`
}

func TestGetLoggers(t *testing.T) {
	t.Parallel()

	logs := log.NewContext(log.WithoutMetrics())
	for _, name := range []string{"svc/db", "api", "svc"} {
		logs.Logger(name)
	}
	client := newTestServer(t, testServerOptions{Logs: logs}).Client

	testCases := []struct {
		name string
		exp  string
		want []string
	}{
		{
			name: "all",
			want: []string{"api", "svc", "svc/db"},
		},
		{
			name: "regexp",
			exp:  "^svc",
			want: []string{"svc", "svc/db"},
		},
		{
			name: "exact",
			exp:  "api",
			want: []string{"api"},
		},
		{
			name: "no match",
			exp:  "^storage$",
			want: []string{},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			want := loggerResult{Loggers: []loggerInfo{}}
			for _, name := range tc.want {
				want.Loggers = append(want.Loggers, loggerInfo{Name: name})
			}
			jsonhttptest.Request(t, client, http.MethodGet, "/loggers?exp="+url.QueryEscape(tc.exp), http.StatusOK,
				jsonhttptest.WithExpectedJSONResponse(want),
			)
		})
	}
}

func TestGetLoggersInvalidExpression(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOptions{})

	exp := "svc["
	_, err := regexp.Compile(exp)
	if err == nil {
		t.Fatalf("expression %q compiled", exp)
	}

	jsonhttptest.Request(t, srv.Client, http.MethodGet, "/loggers?exp="+url.QueryEscape(exp), http.StatusBadRequest,
		jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
			Message: "invalid query params",
			Code:    http.StatusBadRequest,
			Reasons: []jsonhttp.Reason{{
				Field: "exp",
				Error: err.Error(),
			}},
		}),
	)

	entries := srv.AccessLog.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d access log entries, want 2: %q", len(entries), entries)
	}
	if !strings.HasPrefix(entries[0], "Warning: 1: invalid query params") {
		t.Errorf("got entry %q, want warning", entries[0])
	}
	if !strings.HasPrefix(entries[1], "Notify: 2: debug api access") {
		t.Errorf("got entry %q, want access notice", entries[1])
	}
}

func TestGetLoggersMethodNotAllowed(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, testServerOptions{}).Client

	jsonhttptest.Request(t, client, http.MethodPost, "/loggers", http.StatusMethodNotAllowed,
		jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
			Message: http.StatusText(http.StatusMethodNotAllowed),
			Code:    http.StatusMethodNotAllowed,
		}),
	)
}
