// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging bridges log records to a logrus logger,
// for hosts that already route their output through logrus.
package logging

import (
	"fmt"
	"io"

	"github.com/ethersphere/logfan/pkg/log"
	"github.com/sirupsen/logrus"
)

var _ log.Sink = (*sink)(nil)

// New returns a logrus logger writing text with full timestamps to w.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}
	return l
}

type sink struct {
	logger *logrus.Logger
}

// NewSink returns a sink forwarding records to l. Severities map to
// logrus levels as ERROR→error, WARNING→warning, NOTIFY→info and
// TRACE→trace. The source logger name is added as the "logger" field
// and record parameters as further fields.
func NewSink(l *logrus.Logger) log.Sink {
	return &sink{logger: l}
}

func (s *sink) AppendError(r log.Record) error {
	return s.append(logrus.ErrorLevel, r)
}

func (s *sink) AppendWarning(r log.Record) error {
	return s.append(logrus.WarnLevel, r)
}

func (s *sink) AppendNotify(r log.Record) error {
	return s.append(logrus.InfoLevel, r)
}

func (s *sink) AppendTrace(r log.Record) error {
	return s.append(logrus.TraceLevel, r)
}

func (s *sink) append(level logrus.Level, r log.Record) error {
	if s.logger == nil {
		return fmt.Errorf("logging: nil logrus logger")
	}
	fields := logrus.Fields{"logger": r.SourceName()}
	for _, p := range r.Params() {
		fields[p.Key] = p.Value
	}
	s.logger.WithFields(fields).Log(level, r.Message())
	return nil
}
