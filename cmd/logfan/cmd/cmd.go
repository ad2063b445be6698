// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/ethersphere/logfan/pkg/log"
	"github.com/ethersphere/logfan/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	optionNameLogger   = "logger"
	optionNameSeverity = "severity"
	optionNameMask     = "mask"
	optionNameFormat   = "format"
	optionNamePopup    = "popup"
	optionNameAddr     = "addr"
)

const (
	formatPlain  = "plain"
	formatHTML   = "html"
	formatANSI   = "ansi"
	formatLogrus = "logrus"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root     *cobra.Command
	config   *viper.Viper
	notifier log.Notifier
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "logfan",
			Short:         "Structured logging dispatch engine",
			SilenceErrors: true,
			SilenceUsage:  true,
		},
	}
	c.initConfig()

	for _, o := range opts {
		o(c)
	}

	c.initEmitCmd()
	c.initServeCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

// initConfig sets up the configuration that flag values are resolved
// from. Every flag may be overridden by an environment variable with the
// LOGFAN_ prefix, e.g. LOGFAN_MASK for --mask.
func (c *command) initConfig() {
	config := viper.New()

	// Environment
	config.SetEnvPrefix("logfan")
	config.AutomaticEnv() // read in environment variables that match
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	c.config = config
}

// bindFlags binds the flags of cmd to the configuration. Subcommands
// share option names, so flags are bound only once cmd is selected.
func (c *command) bindFlags(cmd *cobra.Command, _ []string) error {
	return c.config.BindPFlags(cmd.Flags())
}

func (c *command) mask() (log.Severity, error) {
	mask, err := log.ParseSeverity(c.config.GetString(optionNameMask))
	if err != nil {
		return log.SeverityNone, fmt.Errorf("%s: %w", optionNameMask, err)
	}
	return mask, nil
}

// newSink returns the sink writing records to w in the configured format.
func (c *command) newSink(w io.Writer) (log.Sink, error) {
	switch f := c.config.GetString(optionNameFormat); f {
	case formatPlain:
		return log.NewTextSink(log.NewWriterDestination(w), log.NewPlainFormatter()), nil
	case formatHTML:
		return log.NewTextSink(log.NewWriterDestination(w), log.NewHTMLFormatter(
			log.WithEndOfLine(log.EndOfLineHTML+"\n"),
		)), nil
	case formatANSI:
		return log.NewTextSink(log.NewWriterDestination(w), log.NewANSIFormatter()), nil
	case formatLogrus:
		return logging.NewSink(logging.New(w, logrus.TraceLevel)), nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

func formatFlagUsage() string {
	return strings.Join([]string{formatPlain, formatHTML, formatANSI, formatLogrus}, "|")
}
