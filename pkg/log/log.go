// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log implements a structured logging dispatch engine.
//
// Named loggers are obtained from a Context, which caches exactly one
// Logger per name. Every call on a Logger builds a Record and fans it out
// to the sinks registered with the Context, each of which selects the
// severities it wants with its own Severity mask:
//
//	ctx := log.NewContext()
//	buf := new(log.Buffer)
//	_ = ctx.AddSink(log.NewTextSink(buf, log.NewHTMLFormatter()), log.SeverityAll)
//
//	logger := ctx.Logger("svc")
//	_ = logger.Error("fail", "attempt", 3)
//
// A process-wide Context is lazily created by Default and is used by the
// package level functions GetLogger, AddSink, RemoveSink and RemoveAllSinks.
package log

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Severity is a set of log severities represented as bit flags.
// A single severity has exactly one bit set; a mask may have any
// combination of bits set.
type Severity uint8

const (
	// SeverityError marks error messages.
	SeverityError Severity = 1 << iota
	// SeverityWarning marks warning messages.
	SeverityWarning
	// SeverityNotify marks notices.
	SeverityNotify
	// SeverityTrace marks traces.
	SeverityTrace
)

const (
	// SeverityNone is the empty mask; a sink registered with it receives nothing.
	SeverityNone Severity = 0
	// SeverityAll is the union of all severities.
	SeverityAll = SeverityError | SeverityWarning | SeverityNotify | SeverityTrace
)

var severityNames = []struct {
	severity Severity
	name     string
	label    string
}{
	{SeverityError, "error", "Error"},
	{SeverityWarning, "warning", "Warning"},
	{SeverityNotify, "notify", "Notify"},
	{SeverityTrace, "trace", "Trace"},
}

// Severities returns all single severities ordered from the most
// to the least important one.
func Severities() []Severity {
	return []Severity{SeverityError, SeverityWarning, SeverityNotify, SeverityTrace}
}

// Contains reports whether mask includes every bit of s.
func Contains(mask, s Severity) bool {
	return mask&s == s
}

// Union returns the mask combining all the given masks.
func Union(masks ...Severity) Severity {
	var u Severity
	for _, m := range masks {
		u |= m
	}
	return u
}

// Contains reports whether the mask includes every bit of s.
func (m Severity) Contains(s Severity) bool {
	return Contains(m, s)
}

// label returns the capitalized display name of a single severity.
func (m Severity) label() string {
	for _, sn := range severityNames {
		if sn.severity == m {
			return sn.label
		}
	}
	return m.String()
}

// String implements the fmt.Stringer interface.
func (m Severity) String() string {
	switch m {
	case SeverityNone:
		return "none"
	case SeverityAll:
		return "all"
	}
	var names []string
	rest := m
	for _, sn := range severityNames {
		if m&sn.severity != 0 {
			names = append(names, sn.name)
			rest &^= sn.severity
		}
	}
	if rest != 0 {
		names = append(names, strconv.FormatUint(uint64(rest), 10))
	}
	return strings.Join(names, "|")
}

// ParseSeverity returns a Severity mask parsed from the given s.
// It accepts "none", "all", single severity names and combinations
// of names separated by '|', ',' or '+' (e.g. "error|trace").
// Numeric masks in the range [0, 15] are accepted as well.
func ParseSeverity(s string) (Severity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "none", "":
		return SeverityNone, nil
	case "all":
		return SeverityAll, nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		if Severity(n)&^SeverityAll != 0 {
			return SeverityNone, fmt.Errorf("log: severity mask %d out of range", n)
		}
		return Severity(n), nil
	}

	var mask Severity
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == '+'
	}) {
		part = strings.TrimSpace(part)
		found := false
		for _, sn := range severityNames {
			if sn.name == part {
				mask |= sn.severity
				found = true
				break
			}
		}
		if !found {
			switch part {
			case "none":
			case "all":
				mask |= SeverityAll
			default:
				return SeverityNone, fmt.Errorf("log: unknown severity %q", part)
			}
		}
	}
	return mask, nil
}

// MustParseSeverity calls ParseSeverity and panics on error.
func MustParseSeverity(s string) Severity {
	m, err := ParseSeverity(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Lock wraps io.Writer in a mutex to make it safe for concurrent use.
// In particular, *os.Files must be locked before use.
func Lock(w io.Writer) io.Writer {
	if _, ok := w.(*lockWriter); ok {
		return w // No need to layer on another lock.
	}
	return &lockWriter{w: w}
}

// lockWriter attaches mutex to io.Writer for convince of usage.
type lockWriter struct {
	sync.Mutex
	w io.Writer
}

// Write implements the io.Writer interface.
func (ls *lockWriter) Write(bs []byte) (int, error) {
	ls.Lock()
	n, err := ls.w.Write(bs)
	ls.Unlock()
	return n, err
}

// Options specifies parameters that affect the behavior of a Context.
type Options struct {
	hooks     []Hook
	noMetrics bool
}

// Option represent Options parameters modifier.
type Option func(*Options)

// WithHooks tells the context to fire the given hooks after every
// delivery attempt to a sink, in addition to the built-in metrics hook.
func WithHooks(hooks ...Hook) Option {
	return func(opts *Options) { opts.hooks = append(opts.hooks, hooks...) }
}

// WithoutMetrics disables the built-in prometheus metrics hook.
func WithoutMetrics() Option {
	return func(opts *Options) { opts.noMetrics = true }
}
