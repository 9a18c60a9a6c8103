package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNilLoggerIsSafe(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// Must not panic before Init.
	Info("info")
	Debug("debug")
	Warn("warn")
	Error("error")
}

func TestInitWriterLevel(t *testing.T) {
	saved := Logger
	defer func() { Logger = saved }()

	var buf bytes.Buffer
	InitWriter(&buf, "warn")

	Info("hidden message")
	Warn("visible message", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "key=value") {
		t.Errorf("warn line missing or malformed: %q", out)
	}
}

func TestInitWriterBadLevelDefaultsToInfo(t *testing.T) {
	saved := Logger
	defer func() { Logger = saved }()

	var buf bytes.Buffer
	InitWriter(&buf, "loud")

	Debug("debug line")
	Info("info line")

	out := buf.String()
	if strings.Contains(out, "debug line") {
		t.Error("debug should be filtered at the default info level")
	}
	if !strings.Contains(out, "info line") {
		t.Error("info should be written at the default level")
	}
}

func TestInitCreatesDatedFile(t *testing.T) {
	saved := Logger
	defer func() { Logger = saved }()

	dir := filepath.Join(t.TempDir(), "logs")
	if err := Init(dir, "debug"); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Info("hello file")
	Close()

	matches, err := filepath.Glob(filepath.Join(dir, "tutoriais-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one log file, got %v (err %v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file missing message: %q", data)
	}
}
