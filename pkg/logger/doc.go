// Package logger builds *slog.Logger values configured with functional
// options and provides the attribute constructors used across incoming, so
// every package logs the same keys.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(api.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "schemas loaded", logger.Source("schemas.yaml"), logger.SchemaCount(3))
//
// WithEnvironment picks the output format and level: text at debug level in
// development, JSON at debug level in staging and JSON at info level in
// production.
//
// Context extractors run on every record logged with a context, which is how
// request-scoped values such as the request id end up on log lines written
// deep inside the validator.
//
// NewNop returns a logger that discards everything. Components accepting an
// optional *slog.Logger default to it.
package logger
