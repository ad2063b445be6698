// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import "fmt"

// Sink receives records of the severities it was registered for.
// Every method is called synchronously from the logging call; a sink
// that blocks stalls the caller and the remaining fan-out.
// Implementations own their formatting and destination.
type Sink interface {
	AppendError(Record) error
	AppendWarning(Record) error
	AppendNotify(Record) error
	AppendTrace(Record) error
}

// SinkFunc adapts a single function taking the
// severity tag as an argument to the Sink interface.
type SinkFunc func(Severity, Record) error

// NewSinkFunc returns a Sink that calls fn for every severity.
// The returned sink is a pointer so it can be removed with RemoveSink.
func NewSinkFunc(fn SinkFunc) Sink {
	return &funcSink{fn: fn}
}

type funcSink struct {
	fn SinkFunc
}

func (s *funcSink) AppendError(r Record) error   { return s.fn(SeverityError, r) }
func (s *funcSink) AppendWarning(r Record) error { return s.fn(SeverityWarning, r) }
func (s *funcSink) AppendNotify(r Record) error  { return s.fn(SeverityNotify, r) }
func (s *funcSink) AppendTrace(r Record) error   { return s.fn(SeverityTrace, r) }

// deliver calls the append method of sink matching the severity s.
// A panic inside the sink is recovered and returned as an error
// wrapping ErrSinkPanicked.
func deliver(sink Sink, s Severity, r Record) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrSinkPanicked, p)
		}
	}()

	switch s {
	case SeverityError:
		return sink.AppendError(r)
	case SeverityWarning:
		return sink.AppendWarning(r)
	case SeverityNotify:
		return sink.AppendNotify(r)
	case SeverityTrace:
		return sink.AppendTrace(r)
	}
	return fmt.Errorf("log: cannot deliver record with severity %s", s)
}
