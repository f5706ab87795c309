package main

import (
	"time"

	"github.com/dmitrymomot/incoming/pkg/httpserver"
	"github.com/dmitrymomot/incoming/pkg/schemasource"
)

// Config is read from the environment, and from a .env file when present.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"incoming"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`

	MaxDepth int `env:"INCOMING_MAX_DEPTH" envDefault:"32"`
	// ReloadInterval makes serve reload schemas periodically. Zero disables
	// it; SIGHUP always triggers a reload.
	ReloadInterval time.Duration `env:"INCOMING_RELOAD_INTERVAL" envDefault:"0s"`

	Schemas schemasource.Config

	HTTP httpserver.Config
}
