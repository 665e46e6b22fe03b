// Package logging owns the process log sink: a JSON slog handler writing to
// stdout and, when a path is configured, to an append-only log file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Has no effect once the
// logger has been requested.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		multiWriter = os.Stdout

		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			return
		}

		logFile = f
		multiWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

// Logger returns the process logger.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		setup()

		logger = New(multiWriter, levelVar)
	})
	return logger
}

// New builds a JSON logger over w. Used by Logger and by tests that need to
// inspect log output.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else is info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLevel(rawLevel string) {
	SetLevel(ParseLevel(rawLevel))
}

func Close() {
	if logFile != nil {
		logFile.Close()
	}
}
