package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurora/internal/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{})
	require.NoError(t, err)
	logger.Info("goes nowhere")
	require.NoError(t, logger.Sync())
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aurora.log")
	logger, err := New(config.LoggingConfig{File: path, Level: "debug"})
	require.NoError(t, err)

	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{File: "/tmp/x.log", Level: "loud"})
	assert.Error(t, err)
}
