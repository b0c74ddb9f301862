package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	SetLevel(Warning)
	defer SetLevel(Notice)

	logger := New("test")
	logger.Info("hidden message")
	logger.Warning("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("expected info message to be filtered; got %q", out)
	}
	if !strings.Contains(out, "visible message") {
		t.Errorf("expected warning message in output; got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("expected module name in output; got %q", out)
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	SetLevel(Debug)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("sink").Debug("still verbose")
	if !strings.Contains(buf.String(), "still verbose") {
		t.Errorf("expected debug level to survive a sink change; got %q", buf.String())
	}
}

func TestSetLevelUnknownFallsBackToNotice(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	SetLevel(Level(42))
	defer SetLevel(Notice)

	logger := New("fallback")
	logger.Info("dropped")
	logger.Notice("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Errorf("expected notice filtering; got %q", out)
	}
}
