// Package iologger sets up the default slog logger of the application.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gnames/gndefrag/pkg/config"
)

// LogFile is the name of the log file inside of the logs directory.
const LogFile = "gndefrag.log"

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init initializes the global slog logger with the given configuration.
// When destination is "file", a fresh log file is created in logDir.
// A log file opened by the previous Init is closed once the new logger
// is in place. If Init fails, the previous logger stays active.
func Init(logDir string, cfg config.LogConfig) error {
	mu.Lock()
	defer mu.Unlock()

	writer, err := destination(logDir, cfg.Destination)
	if err != nil {
		return err
	}
	slog.SetDefault(New(writer, cfg))

	prev := logFile
	logFile, _ = writer.(*os.File)
	if logFile == os.Stdout || logFile == os.Stderr {
		logFile = nil
	}
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// Close closes the log file opened by Init, if any. Logging continues
// to stderr afterwards.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	err := logFile.Close()
	logFile = nil
	return err
}

// New creates a logger that writes to w using format and level from cfg.
// Unknown formats fall back to JSON, unknown levels to info.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text", "tint":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

func destination(logDir, dest string) (io.Writer, error) {
	switch dest {
	case "stdout":
		return os.Stdout, nil
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		file, err := os.Create(logPath)
		if err != nil {
			return nil, CreateLogFileError(logPath, err)
		}
		return file, nil
	default:
		return os.Stderr, nil
	}
}

// ParseLevel converts string level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
