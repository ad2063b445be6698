// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrSinkPanicked is wrapped by delivery failures caused by a panicking sink.
var ErrSinkPanicked = errors.New("log: sink panicked")

// ConstructionError is returned when a Logger that was not
// created by a Context is used for logging.
type ConstructionError struct {
	Name string
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("log: logger %q was not created by a context; use Context.Logger or GetLogger", e.Name)
}

// InvalidSinkError is returned when a value that does not
// satisfy the Sink interface is registered.
type InvalidSinkError struct {
	Value interface{}
}

// Error implements the error interface.
func (e *InvalidSinkError) Error() string {
	if e.Value == nil {
		return "log: cannot register a nil sink"
	}
	return fmt.Sprintf("log: cannot register %T as a sink", e.Value)
}

// DeliveryFailure describes a single sink that failed to accept a record.
type DeliveryFailure struct {
	// Index is the position of the registration in the sink table
	// at the time of the delivery.
	Index int
	Sink  Sink
	Err   error
}

// SinkDeliveryError aggregates every sink failure of a single logging call.
// Sinks that did not fail still received the record.
type SinkDeliveryError struct {
	Severity Severity
	Failures []DeliveryFailure

	merr *multierror.Error
}

func newSinkDeliveryError(s Severity, failures []DeliveryFailure) *SinkDeliveryError {
	merr := &multierror.Error{ErrorFormat: joinErrors}
	for _, f := range failures {
		merr = multierror.Append(merr, fmt.Errorf("sink %d (%T): %w", f.Index, f.Sink, f.Err))
	}
	return &SinkDeliveryError{
		Severity: s,
		Failures: failures,
		merr:     merr,
	}
}

// Error implements the error interface.
func (e *SinkDeliveryError) Error() string {
	return fmt.Sprintf("log %s: %d sink(s) failed: %s", e.Severity, len(e.Failures), e.merr.Error())
}

// Unwrap gives errors.Is and errors.As access to the individual failures.
func (e *SinkDeliveryError) Unwrap() error {
	return e.merr.ErrorOrNil()
}

func joinErrors(es []error) string {
	parts := make([]string, len(es))
	for i, err := range es {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}
