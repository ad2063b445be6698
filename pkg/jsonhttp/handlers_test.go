// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonhttp_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethersphere/logfan/pkg/jsonhttp"
)

func TestMethodHandler(t *testing.T) {
	t.Parallel()

	h := jsonhttp.MethodHandler{
		"POST": http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, err := io.ReadAll(r.Body)
			if err != nil {
				t.Fatal(err)
			}
			fmt.Fprint(w, "got: ", string(got))
		}),
	}

	t.Run("method allowed", func(t *testing.T) {
		body := "test body"

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		w := httptest.NewRecorder()

		h.ServeHTTP(w, r)

		statusCode := w.Result().StatusCode
		if statusCode != http.StatusOK {
			t.Errorf("got status code %d, want %d", statusCode, http.StatusOK)
		}

		wantBody := "got: " + body
		gotBody := w.Body.String()

		if gotBody != wantBody {
			t.Errorf("got body %q, want %q", gotBody, wantBody)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, r)

		statusCode := w.Result().StatusCode
		wantCode := http.StatusMethodNotAllowed
		if statusCode != wantCode {
			t.Errorf("got status code %d, want %d", statusCode, wantCode)
		}

		var m *jsonhttp.StatusResponse

		if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
			t.Errorf("json unmarshal response body: %s", err)
		}

		if m.Code != wantCode {
			t.Errorf("got message code %d, want %d", m.Code, wantCode)
		}

		wantMessage := http.StatusText(wantCode)
		if m.Message != wantMessage {
			t.Errorf("got message message %q, want %q", m.Message, wantMessage)
		}
	})
}

func TestNotFoundHandler(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()

	jsonhttp.NotFoundHandler(w, nil)

	statusCode := w.Result().StatusCode
	wantCode := http.StatusNotFound
	if statusCode != wantCode {
		t.Errorf("got status code %d, want %d", statusCode, wantCode)
	}

	var m *jsonhttp.StatusResponse

	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Errorf("json unmarshal response body: %s", err)
	}

	if m.Code != wantCode {
		t.Errorf("got message code %d, want %d", m.Code, wantCode)
	}

	wantMessage := http.StatusText(wantCode)
	if m.Message != wantMessage {
		t.Errorf("got message message %q, want %q", m.Message, wantMessage)
	}
}

func TestRespond(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		respond  func(w http.ResponseWriter)
		wantCode int
		wantBody string
	}{
		{
			name:     "nil response",
			respond:  func(w http.ResponseWriter) { jsonhttp.OK(w, nil) },
			wantCode: http.StatusOK,
			wantBody: `{"message":"OK","code":200}`,
		},
		{
			name:     "string response",
			respond:  func(w http.ResponseWriter) { jsonhttp.BadRequest(w, "invalid expression") },
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"invalid expression","code":400}`,
		},
		{
			name: "status response with reasons",
			respond: func(w http.ResponseWriter) {
				jsonhttp.BadRequest(w, jsonhttp.StatusResponse{
					Message: "invalid query params",
					Code:    http.StatusBadRequest,
					Reasons: []jsonhttp.Reason{{Field: "exp", Error: "bad"}},
				})
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"invalid query params","code":400,"reasons":[{"field":"exp","error":"bad"}]}`,
		},
		{
			name:     "struct response",
			respond:  func(w http.ResponseWriter) { jsonhttp.OK(w, struct{ Name string }{"svc"}) },
			wantCode: http.StatusOK,
			wantBody: `{"Name":"svc"}`,
		},
		{
			name:     "internal server error",
			respond:  func(w http.ResponseWriter) { jsonhttp.Respond(w, http.StatusInternalServerError, nil) },
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Internal Server Error","code":500}`,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			tc.respond(w)

			if got := w.Result().StatusCode; got != tc.wantCode {
				t.Errorf("got status code %d, want %d", got, tc.wantCode)
			}
			if got := w.Header().Get("Content-Type"); got != jsonhttp.DefaultContentTypeHeader {
				t.Errorf("got content type %q, want %q", got, jsonhttp.DefaultContentTypeHeader)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tc.wantBody {
				t.Errorf("got body %s, want %s", got, tc.wantBody)
			}
		})
	}
}
