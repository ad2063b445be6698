// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"io"
	"strings"
	"sync"
)

// Appender is an append-only text region a TextSink writes to.
type Appender interface {
	AppendText(text string) error
}

var _ Appender = (*Buffer)(nil)

// Buffer is an in-memory Appender safe for concurrent use.
// The zero value is ready to use.
type Buffer struct {
	mu      sync.Mutex
	entries []string
}

// AppendText implements the Appender interface.
func (b *Buffer) AppendText(text string) error {
	b.mu.Lock()
	b.entries = append(b.entries, text)
	b.mu.Unlock()
	return nil
}

// Entries returns the appended texts in order.
func (b *Buffer) Entries() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.entries...)
}

// Len returns the number of appended texts.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// String returns the concatenation of all appended texts.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.entries, "")
}

// Reset discards all appended texts.
func (b *Buffer) Reset() {
	b.mu.Lock()
	b.entries = nil
	b.mu.Unlock()
}

// writerDestination appends text to an io.Writer.
type writerDestination struct {
	w io.Writer
}

// NewWriterDestination returns an Appender writing to w.
// The writer is wrapped with Lock.
func NewWriterDestination(w io.Writer) Appender {
	return &writerDestination{w: Lock(w)}
}

// AppendText implements the Appender interface.
func (d *writerDestination) AppendText(text string) error {
	_, err := io.WriteString(d.w, text)
	return err
}
