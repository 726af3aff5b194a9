package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/planflow/planflow/internal/errors"
)

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	logger.Info("plan generated", "model", "llama-3.3-70b-versatile")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if entry["msg"] != "plan generated" {
		t.Errorf("msg = %v, want 'plan generated'", entry["msg"])
	}
	if entry["model"] != "llama-3.3-70b-versatile" {
		t.Errorf("model = %v, want llama-3.3-70b-versatile", entry["model"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("not shown")
	logger.Info("not shown either")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "not shown") {
		t.Errorf("output should not contain filtered levels: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("output should contain warn message: %q", out)
	}
}

func TestLogger_WithError_PlanFlowError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	err := errors.NewInputTooVagueError()
	logger.WithError(err).Warn("rejected input")

	var entry map[string]any
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("output is not valid JSON: %v", jsonErr)
	}

	if entry["error_code"] != string(errors.ErrCodeGateTooVague) {
		t.Errorf("error_code = %v, want %s", entry["error_code"], errors.ErrCodeGateTooVague)
	}
	if _, ok := entry["suggestions"]; !ok {
		t.Error("expected suggestions attribute on the log entry")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
