package cmdutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, false, "bad byte 0x%02x", 0x20)
	if got := buf.String(); got != "WARN: bad byte 0x20\n" {
		t.Errorf("Warnf = %q", got)
	}
	buf.Reset()
	Warnf(&buf, true, "hidden")
	if buf.Len() != 0 {
		t.Errorf("quiet Warnf wrote %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "": slog.LevelInfo,
		"warn": slog.LevelWarn, "Warning": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v,%v want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewLoggerFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelWarn, "check")
	log.Info("dropped")
	log.Warn("kept", "offset", 3)
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line leaked: %q", out)
	}
	if !strings.Contains(out, "component=check") || !strings.Contains(out, "offset=3") {
		t.Errorf("missing attrs: %q", out)
	}
}
