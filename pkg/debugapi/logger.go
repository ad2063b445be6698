// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debugapi

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/ethersphere/logfan/pkg/jsonhttp"
	"github.com/ethersphere/logfan/pkg/log"
)

type (
	loggerInfo struct {
		Name string `json:"name"`
	}

	loggerResult struct {
		Loggers []loggerInfo `json:"loggers"`
	}

	sinkInfo struct {
		Index int    `json:"index"`
		Type  string `json:"type"`
		Mask  string `json:"mask"`
	}

	sinkResult struct {
		Sinks []sinkInfo `json:"sinks"`
	}
)

// loggerGetHandler returns all loggers of the context whose names match
// the optional exp query parameter. The parameter matches a name either
// exactly or as a regular expression.
func (s *Service) loggerGetHandler(w http.ResponseWriter, r *http.Request) {
	exp := r.URL.Query().Get("exp")

	var rex *regexp.Regexp
	if exp != "" {
		var err error
		if rex, err = regexp.Compile(exp); err != nil {
			_ = s.logger.Warning("invalid query params", "exp", exp, "error", err)
			jsonhttp.BadRequest(w, jsonhttp.StatusResponse{
				Message: "invalid query params",
				Code:    http.StatusBadRequest,
				Reasons: []jsonhttp.Reason{{
					Field: "exp",
					Error: err.Error(),
				}},
			})
			return
		}
	}

	result := loggerResult{Loggers: []loggerInfo{}}
	s.logs.Iterate(func(name string, _ *log.Logger) bool {
		if rex == nil || exp == name || rex.MatchString(name) {
			result.Loggers = append(result.Loggers, loggerInfo{Name: name})
		}
		return true
	})

	jsonhttp.OK(w, result)
}

// sinkGetHandler returns the sink registrations of the context
// in delivery order.
func (s *Service) sinkGetHandler(w http.ResponseWriter, _ *http.Request) {
	result := sinkResult{Sinks: []sinkInfo{}}
	for i, reg := range s.logs.Registrations() {
		result.Sinks = append(result.Sinks, sinkInfo{
			Index: i,
			Type:  fmt.Sprintf("%T", reg.Sink),
			Mask:  reg.Mask.String(),
		})
	}
	jsonhttp.OK(w, result)
}
