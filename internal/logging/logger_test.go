package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger_CreatesDirAndWritesJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, err := NewLogger(Options{Dir: dir, Level: "debug"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	log.Info("test_message_from_logging_test")
	_ = log.Sync()

	// Directory should exist
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("log dir missing: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(raw), &entry); err != nil {
		t.Fatalf("want one JSON entry, got %q: %v", raw, err)
	}
	if entry["msg"] != "test_message_from_logging_test" {
		t.Fatalf("unexpected msg: %v", entry)
	}
	if id, _ := entry["run_id"].(string); len(id) != 36 {
		t.Fatalf("want uuid run_id, got %v", entry["run_id"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("want ts time key, got %v", entry)
	}
}

func TestNewLogger_ConsoleIsWarnOrAbove(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(Options{Level: "debug", Stderr: &buf})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	log.Info("quiet")
	log.Warn("loud")
	_ = log.Sync()

	if strings.Contains(buf.String(), "quiet") {
		t.Fatalf("info must not reach the console: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("warn should reach the console: %q", buf.String())
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	if _, err := NewLogger(Options{Level: "loud"}); err == nil {
		t.Fatalf("want error for unknown level")
	}
}
