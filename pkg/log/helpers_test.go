// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log_test

import (
	"sync"
	"testing"

	"github.com/ethersphere/logfan/pkg/log"
)

// delivery is a record as observed by recordingSink.
type delivery struct {
	Severity log.Severity
	Source   string
	Message  string
	Params   []log.Param
}

// recordingSink remembers every record it receives. If err is set,
// every append fails with it; if panicWith is set, every append panics.
type recordingSink struct {
	mu        sync.Mutex
	got       []delivery
	err       error
	panicWith interface{}
}

func (s *recordingSink) AppendError(r log.Record) error   { return s.append(log.SeverityError, r) }
func (s *recordingSink) AppendWarning(r log.Record) error { return s.append(log.SeverityWarning, r) }
func (s *recordingSink) AppendNotify(r log.Record) error  { return s.append(log.SeverityNotify, r) }
func (s *recordingSink) AppendTrace(r log.Record) error   { return s.append(log.SeverityTrace, r) }

func (s *recordingSink) append(sev log.Severity, r log.Record) error {
	if s.panicWith != nil {
		panic(s.panicWith)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, delivery{
		Severity: sev,
		Source:   r.SourceName(),
		Message:  r.Message(),
		Params:   r.Params(),
	})
	return s.err
}

func (s *recordingSink) deliveries() []delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]delivery(nil), s.got...)
}

// logAt calls the logger method matching severity s.
func logAt(l *log.Logger, s log.Severity, msg string, keysAndValues ...interface{}) error {
	switch s {
	case log.SeverityError:
		return l.Error(msg, keysAndValues...)
	case log.SeverityWarning:
		return l.Warning(msg, keysAndValues...)
	case log.SeverityNotify:
		return l.Notify(msg, keysAndValues...)
	case log.SeverityTrace:
		return l.Trace(msg, keysAndValues...)
	}
	panic("unknown severity " + s.String())
}

// captureRecord returns the record a logger named name
// produces for the given message and parameters.
func captureRecord(t *testing.T, name, msg string, keysAndValues ...interface{}) log.Record {
	t.Helper()

	var (
		rec log.Record
		ok  bool
	)
	ctx := log.NewContext(log.WithoutMetrics())
	sink := log.NewSinkFunc(func(_ log.Severity, r log.Record) error {
		rec, ok = r, true
		return nil
	})
	if err := ctx.AddSink(sink, log.SeverityAll); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Logger(name).Trace(msg, keysAndValues...); err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("record not captured")
	}
	return rec
}
