package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("logtest")

	SetLevel(Warning)
	logger.Info("hidden")
	logger.Warningf("shown %d", 42)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message leaked at warning level: %q", out)
	}
	if !strings.Contains(out, "shown 42") || !strings.Contains(out, "[logtest]") {
		t.Errorf("Expected warning with module name, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debug("details")
	if !strings.Contains(buf.String(), "details") {
		t.Errorf("Expected debug output, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
		wantErr  bool
	}{
		{"debug", Debug, false},
		{" Info ", Info, false},
		{"WARNING", Warning, false},
		{"error", Error, false},
		{"loud", Notice, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if level != tt.expected {
				t.Errorf("Expected level %v, got %v", tt.expected, level)
			}
		})
	}
}
