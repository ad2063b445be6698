// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"reflect"
	"sync"
)

// Hook is fired after every delivery attempt of a record to a sink.
// The err argument is nil when the delivery succeeded.
// Note, the call must be non-blocking.
type Hook interface {
	Fire(s Severity, err error)
}

// Registration ties a Sink to the severities it receives.
type Registration struct {
	Sink Sink
	Mask Severity
}

// Dispatcher holds the ordered table of sink registrations
// and fans records out to them.
type Dispatcher struct {
	mu            sync.RWMutex
	registrations []Registration
	hooks         []Hook
}

// NewDispatcher returns an empty dispatcher that fires the given hooks.
func NewDispatcher(hooks ...Hook) *Dispatcher {
	return &Dispatcher{hooks: hooks}
}

// AddSink appends a registration of sink with the given mask.
// Registering the same sink again adds another registration,
// it never replaces an existing one.
func (d *Dispatcher) AddSink(sink Sink, mask Severity) error {
	if isNilSink(sink) {
		return &InvalidSinkError{Value: sink}
	}

	d.mu.Lock()
	d.registrations = append(d.registrations, Registration{Sink: sink, Mask: mask})
	d.mu.Unlock()
	return nil
}

// AddSinkValue registers v if it implements the Sink interface.
// It is meant for values whose type is not known at compile time.
func (d *Dispatcher) AddSinkValue(v interface{}, mask Severity) error {
	sink, ok := v.(Sink)
	if !ok {
		return &InvalidSinkError{Value: v}
	}
	return d.AddSink(sink, mask)
}

// RemoveSink removes every registration of sink.
// Removing a sink that is not registered is a no-op.
func (d *Dispatcher) RemoveSink(sink Sink) {
	if isNilSink(sink) {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	kept := make([]Registration, 0, len(d.registrations))
	for _, r := range d.registrations {
		if !sameSink(r.Sink, sink) {
			kept = append(kept, r)
		}
	}
	d.registrations = kept
}

// RemoveAllSinks clears the registration table.
func (d *Dispatcher) RemoveAllSinks() {
	d.mu.Lock()
	d.registrations = nil
	d.mu.Unlock()
}

// Registrations returns a snapshot of the table in registration order.
func (d *Dispatcher) Registrations() []Registration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Registration(nil), d.registrations...)
}

// dispatch delivers r to every registration whose mask contains s,
// in registration order. The table is snapshotted first, so sinks
// may add or remove registrations while being called.
func (d *Dispatcher) dispatch(s Severity, r Record) error {
	d.mu.RLock()
	registrations := d.registrations
	hooks := d.hooks
	d.mu.RUnlock()

	var failures []DeliveryFailure
	for i, reg := range registrations {
		if !reg.Mask.Contains(s) {
			continue
		}
		err := deliver(reg.Sink, s, r)
		for _, h := range hooks {
			h.Fire(s, err)
		}
		if err != nil {
			failures = append(failures, DeliveryFailure{Index: i, Sink: reg.Sink, Err: err})
		}
	}

	if len(failures) == 0 {
		return nil
	}
	return newSinkDeliveryError(s, failures)
}

// isNilSink reports whether sink is nil or wraps a nil pointer.
func isNilSink(sink Sink) bool {
	if sink == nil {
		return true
	}
	v := reflect.ValueOf(sink)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// sameSink compares sinks by identity without
// panicking on non-comparable dynamic types.
func sameSink(a, b Sink) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
