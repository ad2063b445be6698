// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import "fmt"

// missingValue is used as the value of a dangling key.
const missingValue = "(MISSING)"

// Param is a single key/value pair of a Record context.
type Param struct {
	Key   string
	Value interface{}
}

// Record is the immutable value handed to sinks on every logging call.
// Records are created only by a Logger.
type Record struct {
	source  *Logger
	message string
	params  []Param
}

// Source returns the logger that produced the record.
func (r Record) Source() *Logger {
	return r.source
}

// SourceName returns the display name of the logger that produced the record.
func (r Record) SourceName() string {
	return r.source.Name()
}

// Message returns the message text.
func (r Record) Message() string {
	return r.message
}

// Params returns a copy of the ordered key/value pairs,
// or nil if the record carries no parameters.
func (r Record) Params() []Param {
	if r.params == nil {
		return nil
	}
	return append(make([]Param, 0, len(r.params)), r.params...)
}

// HasParams reports whether the record carries any parameters.
func (r Record) HasParams() bool {
	return len(r.params) > 0
}

// newParams pairs alternating keys and values.
func newParams(keysAndValues []interface{}) []Param {
	if len(keysAndValues) == 0 {
		return nil
	}
	params := make([]Param, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		var key string
		switch k := keysAndValues[i].(type) {
		case string:
			key = k
		default:
			key = fmt.Sprint(k)
		}
		var val interface{} = missingValue
		if i+1 < len(keysAndValues) {
			val = keysAndValues[i+1]
		}
		params = append(params, Param{Key: key, Value: val})
	}
	return params
}
