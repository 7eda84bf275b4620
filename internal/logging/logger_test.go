package logging

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// readEntries parses every JSON log line from the logger's file.
func readEntries(t *testing.T, dir string) []map[string]any {
	t.Helper()

	f, err := os.Open(filepath.Join(dir, "podium.log"))
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("parse log line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger_WritesJSON(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("debate started", "debate_id", "d1")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	entries := readEntries(t, dir)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0]["msg"] != "debate started" {
		t.Errorf("msg = %v, want %q", entries[0]["msg"], "debate started")
	}
	if entries[0]["debate_id"] != "d1" {
		t.Errorf("debate_id = %v, want %q", entries[0]["debate_id"], "d1")
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelWarn)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Debug("ignored")
	logger.Info("ignored too")
	logger.Warn("kept")
	logger.Error("kept as well")
	_ = logger.Close()

	entries := readEntries(t, dir)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
}

func TestWithDebate_PropagatesAttribute(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	child := logger.WithDebate("d42").WithView("live")
	child.Info("step applied", "step", 3)
	_ = logger.Close()

	entries := readEntries(t, dir)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	entry := entries[0]
	if entry["debate_id"] != "d42" {
		t.Errorf("debate_id = %v, want %q", entry["debate_id"], "d42")
	}
	if entry["view"] != "live" {
		t.Errorf("view = %v, want %q", entry["view"], "live")
	}
	if entry["step"] != float64(3) {
		t.Errorf("step = %v, want 3", entry["step"])
	}
}

func TestWith_IgnoresNonStringKeys(t *testing.T) {
	logger := NopLogger()
	child := logger.With(42, "value", "ok", "yes")
	if len(child.attrs) != 1 {
		t.Errorf("attrs = %d, want 1 (non-string key dropped)", len(child.attrs))
	}
}

func TestWith_Empty(t *testing.T) {
	logger := NopLogger()
	if child := logger.With(); child != logger {
		t.Error("With() with no args should return the same logger")
	}
}

func TestClose_Idempotent(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}

func TestNopLogger_DoesNotPanic(t *testing.T) {
	logger := NopLogger()
	logger.Debug("a")
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidLevels(t *testing.T) {
	levels := ValidLevels()
	if len(levels) != 4 {
		t.Fatalf("ValidLevels() length = %d, want 4", len(levels))
	}
	for _, lvl := range levels {
		if ParseLevel(lvl) != lvl {
			t.Errorf("ParseLevel(%q) = %q, want round-trip", lvl, ParseLevel(lvl))
		}
	}
}
