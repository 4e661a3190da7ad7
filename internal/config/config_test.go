package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 256, cfg.CorrelationCapacity)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"AFMCTL_FORMAT":               " JSON ",
		"AFMCTL_LOG_LEVEL":            "debug",
		"AFMCTL_LOG_FORMAT":           "json",
		"AFMCTL_CORRELATION_CAPACITY": "16",
	}))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 16, cfg.CorrelationCapacity)
}

func TestFromLookup_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"format":        {"AFMCTL_FORMAT": "yaml"},
		"log format":    {"AFMCTL_LOG_FORMAT": "xml"},
		"capacity text": {"AFMCTL_CORRELATION_CAPACITY": "many"},
		"capacity zero": {"AFMCTL_CORRELATION_CAPACITY": "0"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config: AFMCTL_")
		})
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "afmctl.env")
	require.NoError(t, os.WriteFile(path, []byte("AFMCTL_CORRELATION_CAPACITY=8\nAFMCTL_LOG_LEVEL=info\n"), 0o644))

	// godotenv sets variables process-wide; register cleanup through t.Setenv.
	t.Setenv("AFMCTL_CORRELATION_CAPACITY", "")
	t.Setenv("AFMCTL_LOG_LEVEL", "error")
	require.NoError(t, os.Unsetenv("AFMCTL_CORRELATION_CAPACITY"))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.CorrelationCapacity)
	assert.Equal(t, "error", cfg.LogLevel, "environment wins over dotenv")
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultFormat, cfg.Format)
}
