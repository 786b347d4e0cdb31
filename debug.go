package shadergui

import (
	"log/slog"
	"time"
)

// PassStats counts what one render pass did.
type PassStats struct {
	Parameters     int // parameters declared by the resource
	Drawn          int // parameters that reached the widget resolver
	Hidden         int // skipped by FlagHideInInspector
	Suppressed     int // hidden by a closed foldout
	Dropped        int // annotations that produced no directive
	Unsupported    int // parameters of unknown kind
	SettingsBlocks int // render-settings blocks drawn
	Changed        bool
	Duration       time.Duration
}

// log writes the stats at debug level.
func (s PassStats) log(l *slog.Logger) {
	l.Debug("inspector pass",
		"params", s.Parameters,
		"drawn", s.Drawn,
		"hidden", s.Hidden,
		"suppressed", s.Suppressed,
		"dropped", s.Dropped,
		"unsupported", s.Unsupported,
		"settings", s.SettingsBlocks,
		"changed", s.Changed,
		"took", s.Duration)
}
