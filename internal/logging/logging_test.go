package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	file := filepath.Join(t.TempDir(), "nested", "gopatterns.log")

	logger, cleanup, err := Setup(Options{File: file, Level: slog.LevelInfo, Console: &console})
	require.NoError(t, err)
	logger.Info("scenario done", "scenario", "decorator")
	logger.Debug("dropped")
	cleanup()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, console.String(), string(data))

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "scenario done", entry["msg"])
	assert.Equal(t, "decorator", entry["scenario"])
}

func TestSetup_NoFile(t *testing.T) {
	var console bytes.Buffer
	logger, cleanup, err := Setup(Options{Level: slog.LevelDebug, Console: &console})
	require.NoError(t, err)
	defer cleanup()

	logger.Debug("swap", "category", "fly")
	assert.Contains(t, console.String(), `"category":"fly"`)
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 3, orDefault(0, 3))
	assert.Equal(t, 3, orDefault(-2, 3))
	assert.Equal(t, 7, orDefault(7, 3))
}
