// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

// noName is displayed in place of an empty logger name.
const noName = "[no name]"

// Logger is a named handle used to emit records.
// Loggers are obtained from Context.Logger or GetLogger; a Logger
// built any other way fails every call with a *ConstructionError.
type Logger struct {
	// name identifies the logger in its context registry.
	name string

	// ctx is the context that created the logger;
	// it is nil for loggers not created by a context.
	ctx *Context
}

// newLogger is the only constructor of Logger.
func newLogger(name string, ctx *Context) *Logger {
	return &Logger{name: name, ctx: ctx}
}

// Name returns the display name of the logger.
func (l *Logger) Name() string {
	if l == nil || l.name == "" {
		return noName
	}
	return l.name
}

// Error logs an error message with the given key/value pairs as context.
// The key/value pairs must alternate keys and arbitrary values.
// The returned error is nil, a *ConstructionError, or a *SinkDeliveryError
// listing the sinks that failed; sinks that did not fail received the record.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) error {
	return l.log(SeverityError, msg, keysAndValues)
}

// Warning logs a warning message with the given key/value pairs as context.
// See Error for the meaning of the returned error.
func (l *Logger) Warning(msg string, keysAndValues ...interface{}) error {
	return l.log(SeverityWarning, msg, keysAndValues)
}

// Notify logs a notice with the given key/value pairs as context.
// See Error for the meaning of the returned error.
func (l *Logger) Notify(msg string, keysAndValues ...interface{}) error {
	return l.log(SeverityNotify, msg, keysAndValues)
}

// Trace logs a trace message with the given key/value pairs as context.
// See Error for the meaning of the returned error.
func (l *Logger) Trace(msg string, keysAndValues ...interface{}) error {
	return l.log(SeverityTrace, msg, keysAndValues)
}

// log builds the record and fans it out through the context dispatcher.
func (l *Logger) log(s Severity, msg string, keysAndValues []interface{}) error {
	if l == nil || l.ctx == nil {
		return &ConstructionError{Name: l.Name()}
	}
	return l.ctx.dispatcher.dispatch(s, Record{
		source:  l,
		message: msg,
		params:  newParams(keysAndValues),
	})
}
