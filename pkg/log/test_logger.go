// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"strings"
	"testing"
)

// NewTestSink returns a plain text sink used for testing.
// This sink uses t.Log as destination for log entries.
func NewTestSink(t *testing.T, opts ...FormatterOption) *TextSink {
	t.Helper()

	return NewTextSink(&testDestination{t: t}, NewPlainFormatter(opts...))
}

// NewTestLogger returns a logger named after the test, created by a
// fresh context that logs every severity to t.Log.
func NewTestLogger(t *testing.T) *Logger {
	t.Helper()

	ctx := NewContext(WithoutMetrics())
	if err := ctx.AddSink(NewTestSink(t), SeverityAll); err != nil {
		t.Fatal(err)
	}
	return ctx.Logger(t.Name())
}

type testDestination struct {
	t *testing.T
}

func (td *testDestination) AppendText(text string) error {
	td.t.Log(strings.TrimSuffix(text, EndOfLinePlain))
	return nil
}
