// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type for the life of the process.
//   - Reload and ResetCache drop cached values, mostly for tests.
//
// # Usage
//
//	type Config struct {
//	    SchemaFile string `env:"INCOMING_SCHEMA_FILE,required"`
//	    MaxDepth   int    `env:"INCOMING_MAX_DEPTH" envDefault:"32"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// ErrParsingConfig, ErrLoadingEnvFile and ErrNilPointer can be matched with
// errors.Is; the underlying library error is joined to them.
package config
