package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/incoming/pkg/api"
	"github.com/dmitrymomot/incoming/pkg/logger"
	"github.com/dmitrymomot/incoming/pkg/schemasource"
)

// reloader swaps the served registry for a freshly loaded one. A failed
// load keeps the previous registry in service.
type reloader struct {
	src     schemasource.Source
	handler *api.Handler
	logger  *slog.Logger
}

func (r *reloader) run(ctx context.Context, hup <-chan os.Signal, tick <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
		case <-tick:
		}
		_ = r.reload(ctx)
	}
}

func (r *reloader) reload(ctx context.Context) error {
	reg, err := schemasource.Load(ctx, r.src)
	if err != nil {
		r.logger.WarnContext(ctx, "schema reload failed",
			logger.Source(r.src.String()),
			logger.Error(err),
		)
		return err
	}

	r.handler.SetRegistry(reg)
	r.logger.InfoContext(ctx, "schemas reloaded",
		logger.Source(r.src.String()),
		logger.SchemaCount(len(reg.Names())),
	)
	return nil
}
