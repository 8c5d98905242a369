// Package logging holds the *slog.Logger used for debug output across the
// extraction pipeline.
package logging

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// SetLogger replaces the package-level logger. Passing nil restores the
// default, which discards everything.
//
// SetLogger is safe for concurrent use.
//
// Example enabling debug output to stderr:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard()
	}
	logger.Store(l)
}

// Logger returns the package-level logger.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = discard()
		logger.CompareAndSwap(nil, l)
		return logger.Load()
	}
	return l
}
