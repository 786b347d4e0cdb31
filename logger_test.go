package shadergui

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerSilentByDefault(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r := newRig(Config{}, Parameter{Name: "_Odd", Kind: ParamKind(9)})
	r.pass()
	if !strings.Contains(buf.String(), "unsupported parameter kind") {
		t.Errorf("package logger not used: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

func TestConfigLoggerOverridesPackageLogger(t *testing.T) {
	var pkg, own bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&pkg, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	logger := slog.New(slog.NewTextHandler(&own, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newRig(Config{Logger: logger}, floatParam("a", "Header"))
	r.pass()
	if pkg.Len() != 0 {
		t.Errorf("package logger written: %q", pkg.String())
	}
	if !strings.Contains(own.String(), "annotation dropped") {
		t.Errorf("config logger not used: %q", own.String())
	}
}
