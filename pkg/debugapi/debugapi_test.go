// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debugapi_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ethersphere/logfan/pkg/debugapi"
	"github.com/ethersphere/logfan/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
	"resenje.org/web"
)

type testServerOptions struct {
	Logs     *log.Context
	Gatherer prometheus.Gatherer
}

type testServer struct {
	Client    *http.Client
	AccessLog *log.Buffer
}

func newTestServer(t *testing.T, o testServerOptions) *testServer {
	t.Helper()

	if o.Logs == nil {
		o.Logs = log.NewContext(log.WithoutMetrics())
	}

	access := new(log.Buffer)
	accessCtx := log.NewContext(log.WithoutMetrics())
	if err := accessCtx.AddSink(log.NewTextSink(access, nil), log.SeverityAll); err != nil {
		t.Fatal(err)
	}

	s := debugapi.New(o.Logs, accessCtx.Logger("debugapi"), o.Gatherer)
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	client := &http.Client{
		Transport: web.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			u, err := url.Parse(ts.URL + r.URL.String())
			if err != nil {
				return nil, err
			}
			r.URL = u
			return ts.Client().Transport.RoundTrip(r)
		}),
	}
	return &testServer{
		Client:    client,
		AccessLog: access,
	}
}
