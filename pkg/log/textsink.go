// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"sync"
)

var _ Sink = (*TextSink)(nil)

var errNilDestination = errors.New("nil destination")

// TextSink formats records with its own Formatter
// and appends them to a single destination.
type TextSink struct {
	mu        sync.Mutex
	dst       Appender
	formatter *Formatter
}

// NewTextSink returns a sink appending to dst. If f is
// nil, a formatter returned by NewPlainFormatter is used.
func NewTextSink(dst Appender, f *Formatter) *TextSink {
	if f == nil {
		f = NewPlainFormatter()
	}
	return &TextSink{dst: dst, formatter: f}
}

// Formatter returns the formatter of the sink.
func (s *TextSink) Formatter() *Formatter {
	return s.formatter
}

// AppendError implements the Sink interface.
func (s *TextSink) AppendError(r Record) error { return s.append(SeverityError, r) }

// AppendWarning implements the Sink interface.
func (s *TextSink) AppendWarning(r Record) error { return s.append(SeverityWarning, r) }

// AppendNotify implements the Sink interface.
func (s *TextSink) AppendNotify(r Record) error { return s.append(SeverityNotify, r) }

// AppendTrace implements the Sink interface.
func (s *TextSink) AppendTrace(r Record) error { return s.append(SeverityTrace, r) }

// append formats and appends under the sink lock, so that
// entries reach the destination in sequence number order.
func (s *TextSink) append(sev Severity, r Record) error {
	if s.dst == nil {
		return fmt.Errorf("text sink: %w", errNilDestination)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dst.AppendText(s.formatter.Format(sev, r)); err != nil {
		return fmt.Errorf("text sink: append %s: %w", sev, err)
	}
	return nil
}
