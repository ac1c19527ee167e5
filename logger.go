package vellum

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the package-level logger. Defaults to nil, which makes Logger
// return a discard logger.
var logger atomic.Pointer[slog.Logger]

// SetLogger configures the package-level logger used for debug-mode warnings
// and policy rejections. Pass nil to disable logging.
//
//	vellum.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the package-level logger, or a discard logger if none has
// been set.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = slog.New(slog.DiscardHandler)
		logger.Store(l)
	}
	return l
}
