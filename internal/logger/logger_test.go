package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelWarn))

	log.Info("hidden")
	log.Warn("shown", "fund", "bogus")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered: %q", out)
	}

	if !strings.Contains(out, "[WRN] shown fund=bogus") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelDebug)).With("content", 7)

	log.Debug("built")

	if !strings.Contains(buf.String(), "[DBG] built content=7") {
		t.Errorf("attrs missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel("WARN"); err != nil || l != slog.LevelWarn {
		t.Errorf("ParseLevel(WARN): got %v, %v", l, err)
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
