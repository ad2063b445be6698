// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"

	"github.com/ethersphere/logfan/pkg/log"
	"github.com/spf13/cobra"
)

func (c *command) initEmitCmd() {
	cmd := &cobra.Command{
		Use:   "emit MESSAGE [KEY=VALUE...]",
		Short: "Emit a single record",
		Long: `Emit a single record through a fresh logging context.

The record is written to the command output by a sink selected with --format
and registered with --mask. With --popup, the record is also shown as an
alert that blocks until a line is read from the input.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: c.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			severity, err := log.ParseSeverity(c.config.GetString(optionNameSeverity))
			if err != nil {
				return fmt.Errorf("%s: %w", optionNameSeverity, err)
			}
			emit, err := emitFunc(severity)
			if err != nil {
				return err
			}
			mask, err := c.mask()
			if err != nil {
				return err
			}

			logs := log.NewContext(log.WithoutMetrics())
			sink, err := c.newSink(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := logs.AddSink(sink, mask); err != nil {
				return err
			}
			if c.config.GetBool(optionNamePopup) {
				notifier := c.notifier
				if notifier == nil {
					notifier = newTerminalNotifier(cmd)
				}
				if err := logs.AddSink(log.NewPopupSink(notifier), mask); err != nil {
					return err
				}
			}

			logger := logs.Logger(c.config.GetString(optionNameLogger))
			if err := emit(logger, args[0], keysAndValues(args[1:])...); err != nil {
				return fmt.Errorf("emit: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String(optionNameLogger, "logfan", "name of the emitting logger")
	cmd.Flags().String(optionNameSeverity, "notify", "severity of the record: error, warning, notify or trace")
	cmd.Flags().String(optionNameMask, "all", "severities delivered to the output, e.g. error|warning")
	cmd.Flags().String(optionNameFormat, formatPlain, "output format: "+formatFlagUsage())
	cmd.Flags().Bool(optionNamePopup, false, "also show the record as a blocking alert")

	c.root.AddCommand(cmd)
}

// emitFunc returns the logger method for a single severity.
func emitFunc(s log.Severity) (func(*log.Logger, string, ...interface{}) error, error) {
	switch s {
	case log.SeverityError:
		return (*log.Logger).Error, nil
	case log.SeverityWarning:
		return (*log.Logger).Warning, nil
	case log.SeverityNotify:
		return (*log.Logger).Notify, nil
	case log.SeverityTrace:
		return (*log.Logger).Trace, nil
	}
	return nil, fmt.Errorf("%s: %q is not a single severity", optionNameSeverity, s)
}

// keysAndValues splits KEY=VALUE arguments into alternating keys and
// values. An argument without '=' is a key with an empty value.
func keysAndValues(args []string) []interface{} {
	kv := make([]interface{}, 0, 2*len(args))
	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")
		kv = append(kv, key, value)
	}
	return kv
}
