package specialangles

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logMu   sync.Mutex
	onceMap sync.Map
)

// SetLogOutput replaces the logger; level follows Debug.
func SetLogOutput(w io.Writer) {
	level := slog.LevelInfo
	if Debug {
		level = slog.LevelDebug
	}
	logMu.Lock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	logMu.Unlock()
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	return logger
}

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	Logger().Debug(fmt.Sprintf(format, args...))
}

// DebugLogOnce logs a given format string only the first time it is seen.
func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	if _, seen := onceMap.LoadOrStore(format, struct{}{}); seen {
		return
	}
	Logger().Debug(fmt.Sprintf(format, args...))
}
