// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{"ELECTION_TITLE", "ELECTION_DATE", "RESULTS_FORMAT", "LOG_LEVEL", "CODE_SEED", "NO_COLOR"}

// clearEnv unsets every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "") // restores the original value on cleanup
		os.Unsetenv(key)
	}
}

// noEnvFile points the parser at a .env that does not exist
func noEnvFile(t *testing.T) string {
	return "-env=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	require.NoError(t, err)

	assert.Empty(t, cfg.Title)
	assert.True(t, cfg.Date.IsZero())
	assert.Equal(t, FormatText, cfg.ResultsFormat)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Zero(t, cfg.CodeSeed)
	assert.False(t, cfg.NoColor)
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("ELECTION_TITLE", "Board election")
	t.Setenv("ELECTION_DATE", "2025-11-04")
	t.Setenv("RESULTS_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CODE_SEED", "42")
	t.Setenv("NO_COLOR", "1")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "Board election", cfg.Title)
	assert.Equal(t, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC), cfg.Date)
	assert.Equal(t, FormatJSON, cfg.ResultsFormat)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.CodeSeed)
	assert.True(t, cfg.NoColor)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ELECTION_TITLE", "From env")
	t.Setenv("RESULTS_FORMAT", "json")

	cfg, err := ParseFlags([]string{noEnvFile(t), "-t", "From flag", "-format", "text", "-seed", "7", "-no-color"})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, "From flag", cfg.Title)
	assert.Equal(t, FormatText, cfg.ResultsFormat)
	assert.Equal(t, uint64(7), cfg.CodeSeed)
	assert.True(t, cfg.NoColor)
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Cleanup(func() {
		for _, key := range configEnv {
			os.Unsetenv(key)
		}
	})

	path := filepath.Join(t.TempDir(), "test.env")
	content := "ELECTION_TITLE=\"Dotenv election\"\nRESULTS_FORMAT=json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// Real environment beats the file
	os.Setenv("RESULTS_FORMAT", "text")

	cfg, err := ParseFlags([]string{"-env", path})
	require.NoError(t, err)

	assert.Equal(t, "Dotenv election", cfg.Title)
	assert.Equal(t, FormatText, cfg.ResultsFormat)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad date", args: []string{"-date", "04/11/2025"}},
		{name: "bad format", args: []string{"-format", "xml"}},
		{name: "bad log level", args: []string{"-log-level", "loud"}},
		{name: "bad seed", args: []string{"-seed", "-3"}},
		{name: "bad env seed", env: map[string]string{"CODE_SEED": "abc"}},
		{name: "unknown flag", args: []string{"-port", "80"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(append([]string{noEnvFile(t)}, tt.args...))
			assert.Error(t, err)
		})
	}
}
