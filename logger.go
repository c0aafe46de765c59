package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logMu   sync.RWMutex
	logger  = slog.New(slog.NewJSONHandler(io.Discard, nil))
	logFile *os.File
)

// setupLogger sends structured logs to a file under dir, since the terminal
// belongs to the UI while the program runs.
func setupLogger(dir string, debug bool) (func() error, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "parallines.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	logMu.Lock()
	logger = slog.New(h)
	logFile = f
	logMu.Unlock()

	L().Info("logger.initialized", "path", path, "debug", debug)

	return func() error {
		logMu.Lock()
		defer logMu.Unlock()
		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return cerr
	}, nil
}

func L() *slog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

// stateDir is where the log file lives: $XDG_STATE_HOME/parallines, falling
// back to ~/.local/state/parallines.
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "parallines")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "parallines")
	}
	return "."
}
