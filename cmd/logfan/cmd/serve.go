// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethersphere/logfan/pkg/debugapi"
	"github.com/ethersphere/logfan/pkg/log"
	"github.com/ethersphere/logfan/pkg/metrics"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (c *command) initServeCmd() {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the debug API of the default logging context",
		Args:    cobra.NoArgs,
		PreRunE: c.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			mask, err := c.mask()
			if err != nil {
				return err
			}
			sink, err := c.newSink(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			logs := log.Default()
			if err := logs.AddSink(sink, mask); err != nil {
				return err
			}
			defer logs.RemoveSink(sink)
			logger := logs.Logger("debugapi")

			registry, err := metrics.NewRegistry(logs)
			if err != nil {
				return fmt.Errorf("metrics registry: %w", err)
			}

			listener, err := net.Listen("tcp", c.config.GetString(optionNameAddr))
			if err != nil {
				return fmt.Errorf("debug api listener: %w", err)
			}
			server := &http.Server{
				Handler:           debugapi.New(logs, logger, registry),
				ReadHeaderTimeout: 10 * time.Second,
			}

			cmd.Println("debug api address:", listener.Addr())

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("debug api server: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				// Wait for termination or interrupt signals.
				ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				<-ctx.Done()

				_ = logger.Notify("debug api shutting down")

				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				if err := server.Shutdown(ctx); err != nil {
					return fmt.Errorf("debug api server shutdown: %w", err)
				}
				return nil
			})
			return g.Wait()
		},
	}

	cmd.Flags().String(optionNameAddr, "127.0.0.1:1635", "debug HTTP API listen address")
	cmd.Flags().String(optionNameMask, "all", "severities of access records written to the error output")
	cmd.Flags().String(optionNameFormat, formatPlain, "access log format: "+formatFlagUsage())

	c.root.AddCommand(cmd)
}
