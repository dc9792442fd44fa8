package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_NoFileIsNop(t *testing.T) {
	l, err := New(Config{Level: "debug"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// Must not panic or write anywhere.
	l.Info("ignored", "k", "v")
	l.Sync()
}

func TestNew_WritesJSONToFile(t *testing.T) {
	// Given a logger writing to a nested path
	path := filepath.Join(t.TempDir(), "logs", "assistant.log")
	l, err := New(Config{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// When entries at several levels are logged
	l.With("session", "abc").Info("command dispatched", "command", "add")
	l.Debug("below threshold")
	l.Sync()

	// Then only the info entry is written, as JSON with its fields
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log lines = %d, want 1:\n%s", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "command dispatched" || entry["command"] != "add" || entry["session"] != "abc" {
		t.Errorf("entry = %v, want msg/command/session fields", entry)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.log")
	if _, err := New(Config{Level: "loud", File: path}); err == nil {
		t.Fatal("New() should reject an unknown level")
	}
}
