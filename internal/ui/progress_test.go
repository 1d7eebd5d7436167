package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgress_Done(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 2)

	p.Done("ArduinoMap updated")
	p.Done("Servo updated")

	out := buf.String()
	if !strings.Contains(out, "[1/2] ArduinoMap updated") {
		t.Errorf("missing first progress line: %s", out)
	}
	if !strings.Contains(out, "[2/2] Servo updated") {
		t.Errorf("missing second progress line: %s", out)
	}
}

func TestProgress_Warn(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 1)

	p.Warn("failed to update %s", "Servo")

	out := buf.String()
	if !strings.Contains(out, "[1/1] Warning: failed to update Servo") {
		t.Errorf("missing warning line: %s", out)
	}
}

func TestProgress_Log(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 1)

	p.Log("Updating %s ...", "Servo")
	p.Done("Servo updated")

	out := buf.String()
	if !strings.Contains(out, "Updating Servo ...") {
		t.Errorf("missing log message: %s", out)
	}
	if !strings.Contains(out, "[1/1] Servo updated") {
		t.Errorf("Log should not advance the counter: %s", out)
	}
}
