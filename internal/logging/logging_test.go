package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}
	for _, c := range cases {
		if got := ParseLevel(c.in); got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("quiet %d", 1)
	l.Info("quiet %d", 2)
	l.Warn("loud %d", 3)
	l.Error("loud %d", 4)

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("messages below level leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] loud 3") || !strings.Contains(out, "[ERROR] loud 4") {
		t.Errorf("expected warn and error lines, got %q", out)
	}
}

func TestLoggerLineFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug)
	l.SetOutput(&buf)
	l.Info("refresh in %s", "30s")

	line := strings.TrimSuffix(buf.String(), "\n")
	// "15:04:05.000 [INFO] refresh in 30s"
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 || len(parts[0]) != 12 || parts[1] != "[INFO]" || parts[2] != "refresh in 30s" {
		t.Errorf("unexpected log line %q", line)
	}
}

func TestDiscardWritesNothing(t *testing.T) {
	l := Discard()
	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.Error("dropped")
	if buf.Len() != 0 {
		t.Errorf("Discard logger wrote %q", buf.String())
	}
}
