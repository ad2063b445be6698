// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"io"

	"github.com/ethersphere/logfan/pkg/log"
)

type (
	Command = command
	Option  = option
)

var (
	NewCommand    = newCommand
	KeysAndValues = keysAndValues
)

func WithArgs(a ...string) func(c *Command) {
	return func(c *Command) {
		c.root.SetArgs(a)
	}
}

func WithInput(r io.Reader) func(c *Command) {
	return func(c *Command) {
		c.root.SetIn(r)
	}
}

func WithOutput(w io.Writer) func(c *Command) {
	return func(c *Command) {
		c.root.SetOut(w)
	}
}

func WithErrorOutput(w io.Writer) func(c *Command) {
	return func(c *Command) {
		c.root.SetErr(w)
	}
}

func WithContext(ctx context.Context) func(c *Command) {
	return func(c *Command) {
		c.root.SetContext(ctx)
	}
}

func WithNotifier(n log.Notifier) func(c *Command) {
	return func(c *Command) {
		c.notifier = n
	}
}
