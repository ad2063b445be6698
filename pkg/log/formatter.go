// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/atomic"
)

// Escaping selects how text is escaped before it is embedded in the output.
type Escaping int

const (
	// EscapeNone leaves text untouched.
	EscapeNone Escaping = iota
	// EscapeHTML escapes &, <, > and " so text can be embedded in markup.
	EscapeHTML
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escape applies the escaping policy to s.
func (e Escaping) escape(s string) string {
	if e == EscapeHTML {
		return htmlEscaper.Replace(s)
	}
	return s
}

// decoration is the prefix/suffix pair wrapped around a rendered message.
type decoration struct {
	prefix string
	suffix string
}

type decorations map[Severity]decoration

var (
	plainDecorations = decorations{
		SeverityError:   {prefix: "Error: "},
		SeverityWarning: {prefix: "Warning: "},
		SeverityNotify:  {prefix: "Notify: "},
		SeverityTrace:   {prefix: "Trace: "},
	}
	htmlDecorations = decorations{
		SeverityError:   {prefix: `<font color="red"><b>Error: `, suffix: "</b></font>"},
		SeverityWarning: {prefix: `<font color="black"><b>Warning: `, suffix: "</b></font>"},
		SeverityNotify:  {prefix: `<font color="green">Notify: `, suffix: "</font>"},
		SeverityTrace:   {prefix: `<font color="blue">Trace: `, suffix: "</font>"},
	}
	ansiDecorations = decorations{
		SeverityError:   {prefix: "\x1b[1;31mError: ", suffix: "\x1b[0m"},
		SeverityWarning: {prefix: "\x1b[1;33mWarning: ", suffix: "\x1b[0m"},
		SeverityNotify:  {prefix: "\x1b[32mNotify: ", suffix: "\x1b[0m"},
		SeverityTrace:   {prefix: "\x1b[34mTrace: ", suffix: "\x1b[0m"},
	}
)

const (
	// EndOfLinePlain terminates entries of plain text formatters.
	EndOfLinePlain = "\n"
	// EndOfLineHTML terminates entries of HTML formatters.
	EndOfLineHTML = "<br />"
)

// fmtOptions holds the settings a Formatter is created with.
type fmtOptions struct {
	decorations decorations
	endOfLine   string
	escaping    Escaping
}

// FormatterOption represent Formatter parameters modifier.
type FormatterOption func(*fmtOptions)

// WithPrefix sets the prefix rendered before messages of severity s.
func WithPrefix(s Severity, prefix string) FormatterOption {
	return func(opts *fmtOptions) {
		d := opts.decorations[s]
		d.prefix = prefix
		opts.decorations[s] = d
	}
}

// WithSuffix sets the suffix rendered after messages of severity s.
func WithSuffix(s Severity, suffix string) FormatterOption {
	return func(opts *fmtOptions) {
		d := opts.decorations[s]
		d.suffix = suffix
		opts.decorations[s] = d
	}
}

// WithEndOfLine sets the marker appended to every entry.
func WithEndOfLine(endOfLine string) FormatterOption {
	return func(opts *fmtOptions) { opts.endOfLine = endOfLine }
}

// WithEscaping sets the escaping policy.
func WithEscaping(e Escaping) FormatterOption {
	return func(opts *fmtOptions) { opts.escaping = e }
}

// Formatter renders records into text. Every formatter has its own
// sequence counter, so sinks that own a formatter number their
// entries independently of each other.
type Formatter struct {
	mu   sync.RWMutex
	opts fmtOptions

	seq atomic.Uint64
}

// NewPlainFormatter returns a formatter producing
// "Error: 1: message [source]\n" like entries.
func NewPlainFormatter(opts ...FormatterOption) *Formatter {
	return newFormatter(plainDecorations, EndOfLinePlain, EscapeNone, opts)
}

// NewHTMLFormatter returns a formatter producing colored HTML
// entries terminated by "<br />". Text is HTML escaped.
func NewHTMLFormatter(opts ...FormatterOption) *Formatter {
	return newFormatter(htmlDecorations, EndOfLineHTML, EscapeHTML, opts)
}

// NewANSIFormatter returns a formatter producing
// entries colored with ANSI terminal escape codes.
func NewANSIFormatter(opts ...FormatterOption) *Formatter {
	return newFormatter(ansiDecorations, EndOfLinePlain, EscapeNone, opts)
}

func newFormatter(d decorations, endOfLine string, e Escaping, opts []FormatterOption) *Formatter {
	o := fmtOptions{
		decorations: make(decorations, len(d)),
		endOfLine:   endOfLine,
		escaping:    e,
	}
	for s, v := range d {
		o.decorations[s] = v
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Formatter{opts: o}
}

// Prefix returns the prefix of severity s.
func (f *Formatter) Prefix(s Severity) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.opts.decorations[s].prefix
}

// SetPrefix changes the prefix of severity s.
func (f *Formatter) SetPrefix(s Severity, prefix string) {
	f.mu.Lock()
	WithPrefix(s, prefix)(&f.opts)
	f.mu.Unlock()
}

// Suffix returns the suffix of severity s.
func (f *Formatter) Suffix(s Severity) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.opts.decorations[s].suffix
}

// SetSuffix changes the suffix of severity s.
func (f *Formatter) SetSuffix(s Severity, suffix string) {
	f.mu.Lock()
	WithSuffix(s, suffix)(&f.opts)
	f.mu.Unlock()
}

// EndOfLine returns the marker appended to every entry.
func (f *Formatter) EndOfLine() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.opts.endOfLine
}

// SetEndOfLine changes the marker appended to every entry.
func (f *Formatter) SetEndOfLine(endOfLine string) {
	f.mu.Lock()
	f.opts.endOfLine = endOfLine
	f.mu.Unlock()
}

// Escaping returns the escaping policy.
func (f *Formatter) Escaping() Escaping {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.opts.escaping
}

// Sequence returns the last sequence number handed out by Format.
// It is 0 if nothing was formatted yet.
func (f *Formatter) Sequence() uint64 {
	return f.seq.Load()
}

// Format renders r with the next sequence number of the formatter.
// The first entry is numbered 1.
func (f *Formatter) Format(s Severity, r Record) string {
	return f.Render(s, r, f.seq.Inc())
}

// Render renders r as:
//
//	prefix + seq + ": " + message + params + " [" + source + "]" + suffix + end-of-line
//
// where params is ": {key:value, key:value}" or empty.
func (f *Formatter) Render(s Severity, r Record, seq uint64) string {
	f.mu.RLock()
	d := f.opts.decorations[s]
	endOfLine := f.opts.endOfLine
	e := f.opts.escaping
	f.mu.RUnlock()

	var b strings.Builder
	b.WriteString(d.prefix)
	b.WriteString(strconv.FormatUint(seq, 10))
	b.WriteString(": ")
	b.WriteString(e.escape(r.message))
	writeParams(&b, r.params, e)
	b.WriteString(" [")
	b.WriteString(e.escape(r.SourceName()))
	b.WriteString("]")
	b.WriteString(d.suffix)
	b.WriteString(endOfLine)
	return b.String()
}

// FormatLine renders the short single line variant of r:
//
//	label + ": " + message + params + " [" + source + "]"
//
// It uses neither decorations nor sequence numbers.
func (f *Formatter) FormatLine(s Severity, r Record) string {
	e := f.Escaping()

	var b strings.Builder
	b.WriteString(s.label())
	b.WriteString(": ")
	b.WriteString(e.escape(r.message))
	writeParams(&b, r.params, e)
	b.WriteString(" [")
	b.WriteString(e.escape(r.SourceName()))
	b.WriteString("]")
	return b.String()
}

// writeParams writes params in the form ": {key:value, key:value}".
func writeParams(b *strings.Builder, params []Param, e Escaping) {
	if len(params) == 0 {
		return
	}
	b.WriteString(": {")
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.escape(p.Key))
		b.WriteString(":")
		b.WriteString(e.escape(fmt.Sprint(p.Value)))
	}
	b.WriteString("}")
}
