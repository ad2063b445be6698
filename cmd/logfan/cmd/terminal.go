// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ethersphere/logfan/pkg/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// terminalNotifier shows popup records on the command output and blocks
// until the user dismisses them with a line of input.
type terminalNotifier struct {
	mu     sync.Mutex
	in     *bufio.Reader
	out    io.Writer
	prompt bool
}

func newTerminalNotifier(cmd *cobra.Command) *terminalNotifier {
	in := cmd.InOrStdin()
	return &terminalNotifier{
		in:     bufio.NewReader(in),
		out:    cmd.OutOrStdout(),
		prompt: isTerminal(in),
	}
}

// Notify implements the log.Notifier interface.
func (n *terminalNotifier) Notify(s log.Severity, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintf(n.out, "[%s] %s\n", s, text); err != nil {
		return err
	}
	if n.prompt {
		if _, err := fmt.Fprint(n.out, "press enter to dismiss "); err != nil {
			return err
		}
	}
	if _, err := n.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read dismissal: %w", err)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
