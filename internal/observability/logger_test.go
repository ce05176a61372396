package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerWritesComponentAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, zerolog.InfoLevel, "tui").With("page", "teacher")
	l.Debugf("hidden %d", 1)
	l.Warnf("missing %s", "Salary")

	line := strings.TrimSpace(buf.String())
	if strings.Contains(line, "hidden") {
		t.Fatalf("debug line should be filtered: %q", line)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("expected one json line, got %q: %v", line, err)
	}
	if entry["level"] != "warn" || entry["component"] != "tui" || entry["page"] != "teacher" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry["message"] != "missing Salary" {
		t.Fatalf("unexpected message: %#v", entry["message"])
	}
}

func TestOpenWithoutPathIsNop(t *testing.T) {
	l, closeFn, err := Open("", "debug", "tui")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	l.Errorf("nowhere")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestOpenAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "school.log")
	l, closeFn, err := Open(path, "debug", "main")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	l.Debugf("started")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(data), `"message":"started"`) {
		t.Fatalf("expected log line, got %q", data)
	}
}

func TestOpenRejectsBadLevel(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "x.log"), "loud", "main"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
