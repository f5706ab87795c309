package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/incoming/pkg/api"
	"github.com/dmitrymomot/incoming/pkg/httpserver"
	"github.com/dmitrymomot/incoming/pkg/logger"
	"github.com/dmitrymomot/incoming/pkg/schemasource"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation API over HTTP",
		Long: "Serve the validation API over HTTP.\n" +
			"Schemas are reloaded on SIGHUP and every $INCOMING_RELOAD_INTERVAL when set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			src, err := schemasource.Open(ctx, a.cfg.Schemas)
			if err != nil {
				return err
			}
			defer func() { _ = src.Close() }()

			reg, err := schemasource.Load(ctx, src)
			if err != nil {
				return err
			}
			a.logger.Info("schemas loaded",
				logger.Source(src.String()),
				logger.SchemaCount(len(reg.Names())),
			)

			handler := api.NewHandler(reg,
				api.WithLogger(a.logger),
				api.WithMaxDepth(a.cfg.MaxDepth),
				api.WithReadinessChecks(src.Check),
			)

			hup := make(chan os.Signal, 1)
			signal.Notify(hup, syscall.SIGHUP)
			defer signal.Stop(hup)

			var tick <-chan time.Time
			if a.cfg.ReloadInterval > 0 {
				ticker := time.NewTicker(a.cfg.ReloadInterval)
				defer ticker.Stop()
				tick = ticker.C
			}

			r := &reloader{src: src, handler: handler, logger: a.logger}
			go r.run(ctx, hup, tick)

			opts := []httpserver.Option{httpserver.WithLogger(a.logger)}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			return httpserver.NewFromConfig(a.cfg.HTTP, opts...).Run(ctx, handler.Routes())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $HTTP_ADDR)")
	return cmd
}
