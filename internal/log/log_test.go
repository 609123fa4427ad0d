package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithoutFileIsNop(t *testing.T) {
	logger, err := Init(ZapConfig{Level: "debug"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}

func TestInitWritesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todomvc.log")
	logger, err := Init(ZapConfig{Level: "info", Mode: "production", Encoding: "json", File: p})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"shown"`)
	assert.NotContains(t, string(b), "hidden")
}

func TestInitBadLevel(t *testing.T) {
	_, err := Init(ZapConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}
