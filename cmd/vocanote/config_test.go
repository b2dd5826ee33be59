package main_test

import (
	"bytes"
	"os"
	"testing"

	main "github.com/fwojciec/vocanote/cmd/vocanote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("HOME", "/home/tester")
		for _, key := range []string{"VOCANOTE_STORAGE", "VOCANOTE_DIR", "VOCANOTE_LANG", "VOCANOTE_LOG_LEVEL", "VOCANOTE_LOG_PRETTY", "VOCANOTE_MODEL", "GEMINI_API_KEY"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := main.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, main.StorageFile, cfg.Storage)
		assert.Equal(t, "/home/tester/.vocanote", cfg.Dir)
		assert.Equal(t, "pt-BR", cfg.Lang)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.True(t, cfg.LogPretty)
		assert.Equal(t, "gemini-2.5-flash", cfg.Model)
		assert.Empty(t, cfg.APIKey)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("VOCANOTE_STORAGE", "sqlite")
		t.Setenv("VOCANOTE_DIR", "/data/notes")
		t.Setenv("VOCANOTE_LANG", "en-US")
		t.Setenv("VOCANOTE_LOG_PRETTY", "false")
		t.Setenv("GEMINI_API_KEY", "secret")

		cfg, err := main.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, main.StorageSQLite, cfg.Storage)
		assert.Equal(t, "/data/notes", cfg.Dir)
		assert.False(t, cfg.LogPretty)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, "en-US", cfg.RecognitionOptions().Lang)
		assert.True(t, cfg.RecognitionOptions().Continuous)
	})

	t.Run("rejects malformed booleans", func(t *testing.T) {
		t.Setenv("VOCANOTE_LOG_PRETTY", "maybe")

		_, err := main.LoadConfig()

		require.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json output respects level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := main.NewLogger(&buf, "warn", false)
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "key", "value")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"key":"value"`)
	})

	t.Run("pretty output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := main.NewLogger(&buf, "debug", true)
		require.NoError(t, err)

		logger.Debug("details")

		assert.Contains(t, buf.String(), "details")
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		t.Parallel()

		_, err := main.NewLogger(&bytes.Buffer{}, "loud", false)

		require.Error(t, err)
	})
}

func TestNotifier(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	n := main.NewNotifier(stdout, stderr)

	n.Success("saved")
	n.Alert("unsupported")

	assert.Equal(t, "saved\n", stdout.String())
	assert.Equal(t, "alert: unsupported\n", stderr.String())
}
