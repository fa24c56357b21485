package logger_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/logger"
)

func TestNewLogger_DefaultOptions(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	logPath := log.GetLogPath()
	assert.Equal(t, filepath.Join(tmpDir, "winutilz", "winutilz.log"), logPath)
	assert.DirExists(t, filepath.Join(tmpDir, "winutilz"))
}

func TestNewLogger_CustomLogDir(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:  tmpDir,
		Console: &bytes.Buffer{},
	})
	require.NoError(t, err)
	defer log.Close()

	assert.Equal(t, filepath.Join(tmpDir, "winutilz.log"), log.GetLogPath())
}

func TestGetLogPath_FallbackToUserProfile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("USERPROFILE", tmpDir)

	expected := filepath.Join(tmpDir, "AppData", "Local", "winutilz", "winutilz.log")
	assert.Equal(t, expected, logger.GetLogPath(logger.LoggerOptions{}))
}

func TestLogger_WritesFileAndConsole(t *testing.T) {
	tmpDir := t.TempDir()
	console := &bytes.Buffer{}

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:  tmpDir,
		Console: console,
	})
	require.NoError(t, err)

	log.Trace("trace message")
	log.Debug("debug message", slog.String("key", "value"))
	log.Info("info message", slog.Int("count", 42))
	log.Warn("warn message", slog.Bool("flag", true))
	log.Error("error message", slog.Any("error", assert.AnError))
	log.Close()

	out := console.String()
	assert.NotContains(t, out, "trace message")
	assert.NotContains(t, out, "debug message", "debug requires verbose")
	assert.Contains(t, out, "info message count=42")
	assert.Contains(t, out, "WARNING: warn message flag=true")
	assert.Contains(t, out, "ERROR: error message")

	data, err := os.ReadFile(log.GetLogPath())
	require.NoError(t, err)

	file := string(data)
	assert.Contains(t, file, "level=TRACE")
	assert.Contains(t, file, "debug message")
	assert.Contains(t, file, "key=value")
}

func TestLogger_VerboseConsole(t *testing.T) {
	console := &bytes.Buffer{}

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:  t.TempDir(),
		Verbose: true,
		Console: console,
	})
	require.NoError(t, err)
	defer log.Close()

	log.Debug("probing", slog.String("path", "C:\\x"))
	assert.Contains(t, console.String(), "VERBOSE: probing path=C:\\x")
}

func TestConsoleHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	l := slog.New(logger.NewConsoleHandler(buf, false)).With(slog.String("module", "cursor"))

	l.Info("set")
	assert.Equal(t, "set module=cursor", strings.TrimSpace(buf.String()))
}

func TestPrintLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	opts := logger.LoggerOptions{LogDir: tmpDir}

	err := logger.PrintLogFile(&bytes.Buffer{}, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(logger.GetLogPath(opts), []byte("line one\n"), 0o644))

	out := &bytes.Buffer{}
	require.NoError(t, logger.PrintLogFile(out, opts))
	assert.Equal(t, "line one\n", out.String())
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	log := logger.NewNoOpLogger()
	assert.Empty(t, log.GetLogPath())

	assert.NotPanics(t, func() {
		log.Trace("test")
		log.Debug("test")
		log.Info("test")
		log.Warn("test")
		log.Error("test")
		log.Close()
	})
}
