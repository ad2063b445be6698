// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonhttp writes JSON encoded HTTP responses.
package jsonhttp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultContentTypeHeader is the Content-Type of every JSON response.
var DefaultContentTypeHeader = "application/json; charset=utf-8"

// StatusResponse is a standardized error format for specific HTTP responses.
// Code field corresponds with HTTP status code, and Message field is a short
// description of that code or provides more context about the reason for such
// response.
type StatusResponse struct {
	Message string   `json:"message,omitempty"`
	Code    int      `json:"code,omitempty"`
	Reasons []Reason `json:"reasons,omitempty"`
}

// Reason describes a single problem with a request field.
type Reason struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Respond writes a JSON-encoded body to http.ResponseWriter.
// A nil response is replaced by a StatusResponse with the status text
// of statusCode; a string or error response becomes its message.
func Respond(w http.ResponseWriter, statusCode int, response interface{}) {
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	switch message := response.(type) {
	case nil:
		response = &StatusResponse{
			Message: http.StatusText(statusCode),
			Code:    statusCode,
		}
	case string:
		response = &StatusResponse{
			Message: message,
			Code:    statusCode,
		}
	case error:
		response = &StatusResponse{
			Message: message.Error(),
			Code:    statusCode,
		}
	case interface {
		String() string
	}:
		response = &StatusResponse{
			Message: message.String(),
			Code:    statusCode,
		}
	}

	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(response); err != nil {
		http.Error(w, fmt.Sprintf("json encode: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", DefaultContentTypeHeader)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	_, _ = b.WriteTo(w)
}

// OK writes a response with status code 200.
func OK(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusOK, response)
}

// BadRequest writes a response with status code 400.
func BadRequest(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusBadRequest, response)
}

// NotFound writes a response with status code 404.
func NotFound(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusNotFound, response)
}
