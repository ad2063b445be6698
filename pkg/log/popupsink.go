// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"sync"
)

var _ Sink = (*PopupSink)(nil)

var errNilNotifier = errors.New("nil notifier")

// Notifier shows a modal notification. Notify may block
// until the notification is dismissed.
type Notifier interface {
	Notify(s Severity, text string) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(s Severity, text string) error

// Notify implements the Notifier interface.
func (f NotifierFunc) Notify(s Severity, text string) error {
	return f(s, text)
}

// PopupSink delivers a short single line rendering of every record
// through a Notifier. It has no buffer of its own. Since the notifier
// may block, so may every logging call while the sink is registered.
type PopupSink struct {
	mu        sync.Mutex
	notifier  Notifier
	formatter *Formatter
}

// NewPopupSink returns a sink showing records through n.
func NewPopupSink(n Notifier) *PopupSink {
	return &PopupSink{notifier: n, formatter: NewPlainFormatter()}
}

// AppendError implements the Sink interface.
func (s *PopupSink) AppendError(r Record) error { return s.append(SeverityError, r) }

// AppendWarning implements the Sink interface.
func (s *PopupSink) AppendWarning(r Record) error { return s.append(SeverityWarning, r) }

// AppendNotify implements the Sink interface.
func (s *PopupSink) AppendNotify(r Record) error { return s.append(SeverityNotify, r) }

// AppendTrace implements the Sink interface.
func (s *PopupSink) AppendTrace(r Record) error { return s.append(SeverityTrace, r) }

// append shows one notification at a time.
func (s *PopupSink) append(sev Severity, r Record) error {
	if s.notifier == nil {
		return fmt.Errorf("popup sink: %w", errNilNotifier)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.notifier.Notify(sev, s.formatter.FormatLine(sev, r)); err != nil {
		return fmt.Errorf("popup sink: notify %s: %w", sev, err)
	}
	return nil
}
