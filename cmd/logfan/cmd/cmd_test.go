// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"testing"

	"github.com/ethersphere/logfan/cmd/logfan/cmd"
)

func newCommand(t *testing.T, opts ...cmd.Option) (c *cmd.Command) {
	t.Helper()

	c, err := cmd.NewCommand(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
