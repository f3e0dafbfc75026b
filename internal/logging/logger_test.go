package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "key", "coins")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "coins")
}

func TestNew_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "chatty")

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Error("boom")
	assert.Contains(t, buf.String(), "boom")
}

func TestNewFile_WritesLogfmt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pomodomate.log")

	logger, closer, err := NewFile(path, "info")
	require.NoError(t, err)
	logger.Info("interval complete", "mode", "work")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode=work")
}
