package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"softmodal/internal/config"
)

func TestLogWritesConsoleFileAndObserver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "softmodal.log")
	var console bytes.Buffer
	l := NewWithWriter(&console, path)

	var observed []string
	l.SetObserver(func(line string) { observed = append(observed, line) })

	l.Logf("dialog closed with %d", 6)
	l.Log("   ")

	if !strings.Contains(console.String(), "dialog closed with 6") {
		t.Errorf("console output missing message: %q", console.String())
	}
	if len(observed) != 1 || !strings.HasSuffix(observed[0], "dialog closed with 6") {
		t.Errorf("observer lines = %q", observed)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log file is not a single JSON line: %v (%q)", err, data)
	}
	if entry["message"] != "dialog closed with 6" || entry["level"] != "info" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestDebugOnlyWhenVerbose(t *testing.T) {
	var console bytes.Buffer
	l := NewWithWriter(&console, "")
	l.Debug().Str("layout", "legacy").Msg("hidden")
	if strings.Contains(console.String(), "hidden") {
		t.Error("debug event printed without verbose")
	}
	l.SetVerbose(true)
	l.Debug().Str("layout", "legacy").Msg("shown")
	if !strings.Contains(console.String(), "shown") {
		t.Error("debug event missing with verbose")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Log("ignored")
	l.Logf("%s", "ignored")
	l.Debug().Msg("ignored")
	l.Warn().Msg("ignored")
	l.SetObserver(nil)
	l.SetVerbose(true)
	if l.Path() != "" {
		t.Error("nil logger should have no path")
	}
}

func TestNewUsesInstallDir(t *testing.T) {
	dir := t.TempDir()
	l := New(&config.Config{InstallDir: dir})
	if want := filepath.Join(dir, "softmodal.log"); l.Path() != want {
		t.Errorf("Path = %q, want %q", l.Path(), want)
	}
	if New(nil).Path() != "" {
		t.Error("nil config should disable file logging")
	}
}
