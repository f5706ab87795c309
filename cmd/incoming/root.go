package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/incoming/pkg/api"
	"github.com/dmitrymomot/incoming/pkg/config"
	"github.com/dmitrymomot/incoming/pkg/logger"
	"github.com/dmitrymomot/incoming/pkg/schemasource"
	"github.com/dmitrymomot/incoming/pkg/validator"
)

var errInvalidPayload = errors.New("payload is invalid")

// app carries state shared by subcommands, filled in by the root
// PersistentPreRunE.
type app struct {
	cfg    Config
	logger *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	schemas  string
	logLevel string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "incoming [sub]",
		Short:         "Declarative JSON payload validation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&a.schemas, "schemas", "", "schema document path or glob, overrides $INCOMING_SCHEMA_SOURCE (default $INCOMING_SCHEMA_FILE)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default $LOG_LEVEL)")

	cmd.AddCommand(
		newValidateCmd(a),
		newLintCmd(a),
		newServeCmd(a),
		newTypesCmd(a),
	)
	return cmd
}

func (a *app) setup() error {
	if err := config.Load(&a.cfg); err != nil {
		return err
	}
	if a.schemas != "" {
		a.cfg.Schemas.Kind = schemasource.KindFile
		a.cfg.Schemas.Path = a.schemas
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}

	a.logger = logger.New(
		logger.WithEnvironment(a.cfg.AppEnv, a.cfg.AppName),
		logger.WithLevelName(a.cfg.LogLevel),
		logger.WithOutput(a.stderr),
		logger.WithContextExtractors(api.RequestIDExtractor()),
	)
	return nil
}

// loadRegistry builds the registry from the configured schema source.
func (a *app) loadRegistry(ctx context.Context) (*validator.Registry, error) {
	h, err := schemasource.Open(ctx, a.cfg.Schemas)
	if err != nil {
		return nil, err
	}
	defer func() { _ = h.Close() }()

	return schemasource.Load(ctx, h)
}
