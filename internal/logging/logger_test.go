package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("creates log file and parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "ptree.log")

		logger, err := New(Options{Level: LevelDebug, File: path})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		defer logger.Close()

		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("log file was not created at %s", path)
		}
	})

	t.Run("writes to stderr when no file or writer is given", func(t *testing.T) {
		logger, err := New(Options{Level: LevelInfo})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		defer logger.Close()

		if logger.file != nil {
			t.Error("expected file to be nil when File is empty")
		}
	})

	t.Run("defaults to INFO level for invalid level string", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Options{Level: "invalid", Writer: &buf})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		logger.Debug("hidden")
		logger.Info("shown")

		if strings.Contains(buf.String(), "hidden") {
			t.Error("debug message should be filtered at default INFO level")
		}
		if !strings.Contains(buf.String(), "shown") {
			t.Error("info message should be logged at default INFO level")
		}
	})
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: LevelDebug, Format: FormatJSON, Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 log lines, got %d", len(lines))
	}

	expectedLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	expectedMsgs := []string{"debug message", "info message", "warn message", "error message"}

	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
			continue
		}

		if entry["level"] != expectedLevels[i] {
			t.Errorf("line %d: expected level %s, got %v", i, expectedLevels[i], entry["level"])
		}
		if entry["msg"] != expectedMsgs[i] {
			t.Errorf("line %d: expected msg %s, got %v", i, expectedMsgs[i], entry["msg"])
		}
		if entry["key"] != "value" {
			t.Errorf("line %d: expected key=value, got key=%v", i, entry["key"])
		}
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: LevelWarn, Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines (WARN and ERROR only), got %d: %s", len(lines), buf.String())
	}
}

func TestContextPropagation(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: LevelInfo, Format: FormatJSON, Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.WithComponent("proc").WithPID(4242).Warn("skipping process", "error", "gone")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log entry: %v", err)
	}

	if entry["component"] != "proc" {
		t.Errorf("expected component=proc, got %v", entry["component"])
	}
	// JSON numbers decode as float64
	if entry["pid"] != float64(4242) {
		t.Errorf("expected pid=4242, got %v", entry["pid"])
	}
	if entry["error"] != "gone" {
		t.Errorf("expected error=gone, got %v", entry["error"])
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: LevelInfo, Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if logger.With() != logger {
		t.Error("With() without args should return the same logger")
	}

	logger.With("foo", "bar", 3, "ignored", "count", 42).Info("test message")

	out := buf.String()
	for _, want := range []string{"foo=bar", "count=42", `msg="test message"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ptree.log")
	logger, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("before close")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Second close is a no-op
	if err := logger.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "before close") {
		t.Errorf("log file missing entry: %s", content)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	// Must not panic
	logger.WithPID(1).Error("discarded")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
