package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	var buf strings.Builder
	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "score", 120)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "score=120")
	assert.Contains(t, out, "blockfall")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&strings.Builder{}, "loud")
	assert.Error(t, err)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "blockfall.log")

	logger, closer, err := OpenFile(path, "debug")
	require.NoError(t, err)
	logger.Debug("game started", "seed", 7)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game started")
}
