package bootstrap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/bootstrap"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		_, err := bootstrap.NewLogger(config.AppConfig{}, config.LogConfig{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("file sink", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "api.log")

		logger, err := bootstrap.NewLogger(
			config.AppConfig{Env: "production"},
			config.LogConfig{Level: "info", File: path, MaxSizeMB: 1},
		)
		require.NoError(t, err)

		logger.Info("hello")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"hello"`)
	})
}
