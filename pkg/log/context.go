// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"context"
	"sort"
	"sync"

	m "github.com/ethersphere/logfan/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"resenje.org/singleflight"
)

// Context owns a logger registry and a sink dispatcher.
// Loggers created by a context dispatch only to the sinks
// registered with the same context.
type Context struct {
	mu      sync.Mutex
	loggers map[string]*Logger
	flight  singleflight.Group[string, *Logger]

	dispatcher *Dispatcher
	metrics    *metrics
}

// NewContext returns a context with an empty registry and sink table.
func NewContext(opts ...Option) *Context {
	o := new(Options)
	for _, opt := range opts {
		opt(o)
	}

	c := &Context{loggers: make(map[string]*Logger)}

	var hooks []Hook
	if !o.noMetrics {
		c.metrics = newLogMetrics()
		hooks = append(hooks, c.metrics)
	}
	c.dispatcher = NewDispatcher(append(hooks, o.hooks...)...)
	return c
}

var (
	defaultOnce sync.Once
	defaultCtx  *Context
)

// Default returns the process-wide context.
// It is created on first use and never torn down.
func Default() *Context {
	defaultOnce.Do(func() {
		defaultCtx = NewContext()
	})
	return defaultCtx
}

// Logger returns the logger with the given name, creating it on first use.
// Subsequent calls with the same name return the same instance.
// Concurrent first calls share a single construction; the registry
// keeps whichever logger was stored first for the name.
func (c *Context) Logger(name string) *Logger {
	if l, ok := c.lookup(name); ok {
		return l
	}

	l, _, _ := c.flight.Do(context.Background(), name, func(context.Context) (*Logger, error) {
		return c.store(name, newLogger(name, c)), nil
	})
	return l
}

// store caches l under name unless a logger is already cached,
// and returns the cached one.
func (c *Context) store(name string, l *Logger) *Logger {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.loggers[name]; ok {
		return cached
	}
	c.loggers[name] = l
	return l
}

func (c *Context) lookup(name string) (*Logger, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.loggers[name]
	return l, ok
}

// Loggers returns the sorted names of all cached loggers.
func (c *Context) Loggers() []string {
	c.mu.Lock()
	names := make([]string, 0, len(c.loggers))
	for name := range c.loggers {
		names = append(names, name)
	}
	c.mu.Unlock()

	sort.Strings(names)
	return names
}

// Iterate calls fn for every cached logger in name order
// until fn returns false.
func (c *Context) Iterate(fn func(name string, l *Logger) bool) {
	for _, name := range c.Loggers() {
		l, _ := c.lookup(name)
		if !fn(name, l) {
			return
		}
	}
}

// AddSink registers sink with the given mask. See Dispatcher.AddSink.
func (c *Context) AddSink(sink Sink, mask Severity) error {
	return c.dispatcher.AddSink(sink, mask)
}

// AddSinkValue registers v if it is a Sink. See Dispatcher.AddSinkValue.
func (c *Context) AddSinkValue(v interface{}, mask Severity) error {
	return c.dispatcher.AddSinkValue(v, mask)
}

// RemoveSink removes all registrations of sink.
func (c *Context) RemoveSink(sink Sink) {
	c.dispatcher.RemoveSink(sink)
}

// RemoveAllSinks clears the sink table.
func (c *Context) RemoveAllSinks() {
	c.dispatcher.RemoveAllSinks()
}

// Registrations returns a snapshot of the sink table.
func (c *Context) Registrations() []Registration {
	return c.dispatcher.Registrations()
}

// Metrics returns the prometheus collectors of the context.
// It returns nil if the context was created WithoutMetrics.
func (c *Context) Metrics() []prometheus.Collector {
	if c.metrics == nil {
		return nil
	}
	return m.PrometheusCollectorsFromFields(c.metrics)
}

// GetLogger returns the named logger of the Default context.
func GetLogger(name string) *Logger {
	return Default().Logger(name)
}

// AddSink registers sink with the Default context.
func AddSink(sink Sink, mask Severity) error {
	return Default().AddSink(sink, mask)
}

// RemoveSink removes all registrations of sink from the Default context.
func RemoveSink(sink Sink) {
	Default().RemoveSink(sink)
}

// RemoveAllSinks clears the sink table of the Default context.
func RemoveAllSinks() {
	Default().RemoveAllSinks()
}

// RegistryIterate iterates over the loggers of the Default context.
func RegistryIterate(fn func(name string, l *Logger) bool) {
	Default().Iterate(fn)
}
