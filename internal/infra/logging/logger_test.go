package logging

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarefa-app/tarefa/internal/domain"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestLogger_WritesLeveledEntries(t *testing.T) {
	dir := t.TempDir()
	l := New(dir, slog.LevelInfo)
	defer l.Close()

	l.Debug("store", "should be filtered")
	l.Info("store", "task saved")
	l.Error("award", "increment failed")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	out := string(content)
	assert.NotContains(t, out, "should be filtered")
	assert.Contains(t, out, "[INFO] [store] task saved")
	assert.Contains(t, out, "[ERROR] [award] increment failed")
}

func TestLogger_DisabledWithoutDir(t *testing.T) {
	l := New("", slog.LevelDebug)
	l.Info("store", "dropped")
	assert.Empty(t, l.Path())
	assert.NoError(t, l.Close())
}

func TestFormatLog(t *testing.T) {
	at := time.Date(2025, time.December, 30, 9, 32, 51, 0, time.UTC)
	entry := formatLog(at, slog.LevelWarn, "config", "unknown key")
	assert.Equal(t, "[2025-12-30 09:32:51] [WARN] [config] unknown key\n", entry)
	assert.True(t, strings.HasSuffix(entry, "\n"))
}
