package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/incoming/pkg/config"
)

type fileConfig struct {
	SchemaFile string   `env:"INCOMING_TEST_SCHEMA_FILE"`
	MaxDepth   int      `env:"INCOMING_TEST_MAX_DEPTH"`
	Strict     bool     `env:"INCOMING_TEST_STRICT"`
	Tags       []string `env:"INCOMING_TEST_TAGS" envSeparator:","`
	Quoted     string   `env:"INCOMING_TEST_QUOTED"`
	Priority   string   `env:"INCOMING_TEST_PRIORITY"`
	Unique     string   `env:"INCOMING_TEST_UNIQUE"`
}

var fileVars = []string{
	"INCOMING_TEST_SCHEMA_FILE",
	"INCOMING_TEST_MAX_DEPTH",
	"INCOMING_TEST_STRICT",
	"INCOMING_TEST_TAGS",
	"INCOMING_TEST_QUOTED",
	"INCOMING_TEST_PRIORITY",
	"INCOMING_TEST_UNIQUE",
}

func cleanFileVars(t *testing.T) {
	t.Helper()
	for _, name := range fileVars {
		os.Unsetenv(name)
	}
	config.ResetCache()
	t.Cleanup(func() {
		for _, name := range fileVars {
			os.Unsetenv(name)
		}
		config.ResetCache()
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		cleanFileVars(t)
		require.NoError(t, config.LoadEnv("testdata/.env.custom"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "schemas/custom.yaml", cfg.SchemaFile)
		assert.Equal(t, 8, cfg.MaxDepth)
		assert.True(t, cfg.Strict)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
		assert.Equal(t, "quoted value", cfg.Quoted)
		assert.Equal(t, "custom", cfg.Priority)
	})

	t.Run("later files take precedence", func(t *testing.T) {
		cleanFileVars(t)
		require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 16, cfg.MaxDepth)
		assert.Equal(t, "override", cfg.Priority)
		assert.Equal(t, "only_here", cfg.Unique)
		assert.Equal(t, "schemas/custom.yaml", cfg.SchemaFile)
	})

	t.Run("process environment wins", func(t *testing.T) {
		cleanFileVars(t)
		t.Setenv("INCOMING_TEST_PRIORITY", "from_env")
		require.NoError(t, config.LoadEnv("testdata/.env.custom"))
		assert.Equal(t, "from_env", os.Getenv("INCOMING_TEST_PRIORITY"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/missing.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestMustLoadEnv(t *testing.T) {
	cleanFileVars(t)
	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.custom") })
	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
}
