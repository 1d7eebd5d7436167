package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "LIBRARY", "VERSION")
	tbl.Row("ArduinoMap", "1.2.0")
	tbl.Row("Servo") // short row is padded
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "LIBRARY") {
		t.Errorf("header missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "ArduinoMap") || !strings.Contains(lines[1], "1.2.0") {
		t.Errorf("row missing values: %q", lines[1])
	}
}
