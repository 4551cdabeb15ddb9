package ui

import (
	"fmt"
	"log/slog"
	"os"
)

// uiLogLevel controls the log level for library debug logging.
// Info and above by default; SetDebugLogging(true) enables Debug.
var uiLogLevel = new(slog.LevelVar)

// uiLogger is the logger used throughout the package.
var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))

// SetDebugLogging toggles debug-level logging for the library.
func SetDebugLogging(enabled bool) {
	if enabled {
		uiLogLevel.Set(slog.LevelDebug)
	} else {
		uiLogLevel.Set(slog.LevelInfo)
	}
}

// SetLogger replaces the package logger. Pass nil to restore the default
// stderr text handler.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))
	}
	uiLogger = l
}

// DebugChecks makes usage errors panic instead of being tolerated.
// With the flag off (the default) the same conditions are clamped or
// ignored and logged as warnings. Enable it in tests and development
// builds.
var DebugChecks = false

// debugPanic reports a usage error: panic under DebugChecks, warning log
// otherwise. Callers must still recover to a sane state after it returns.
func debugPanic(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if DebugChecks {
		panic("ui: " + msg)
	}
	uiLogger.Warn(msg)
}
