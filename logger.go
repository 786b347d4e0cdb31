package shadergui

import (
	"log/slog"
	"sync/atomic"
)

var (
	discardLogger = slog.New(slog.DiscardHandler)
	pkgLogger     atomic.Pointer[slog.Logger]
)

// SetLogger installs the logger used by inspectors whose Config leaves
// Logger nil; nil silences them again. Debug records cover dropped
// annotations, unsupported kinds and pass stats. Warnings cover queue resets
// and selectors holding values with no matching option.
func SetLogger(l *slog.Logger) { pkgLogger.Store(l) }

// Logger returns the package logger, which discards everything until
// SetLogger is called.
func Logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return discardLogger
}
