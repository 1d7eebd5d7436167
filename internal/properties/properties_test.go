package properties

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse_valid(t *testing.T) {
	data := []byte(`
name=ArduinoMap
version=1.2.0
author=Someone <someone@example.com>
sentence=A generic map container.
architectures=avr, esp32

# trailing comment
url=https://github.com/user/ArduinoMap
`)
	props, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if props.Name() != "ArduinoMap" {
		t.Errorf("name = %q, want %q", props.Name(), "ArduinoMap")
	}
	if props.Version() != "1.2.0" {
		t.Errorf("version = %q, want %q", props.Version(), "1.2.0")
	}
	archs := props.Architectures()
	if len(archs) != 2 || archs[0] != "avr" || archs[1] != "esp32" {
		t.Errorf("architectures = %v, want [avr esp32]", archs)
	}
}

func TestParse_valueWithEquals(t *testing.T) {
	props, err := Parse([]byte("sentence=a=b tradeoff\n"))
	if err != nil {
		t.Fatal(err)
	}
	if props["sentence"] != "a=b tradeoff" {
		t.Errorf("value = %q", props["sentence"])
	}
}

func TestParse_missingEquals(t *testing.T) {
	if _, err := Parse([]byte("name=x\nbogus line\n")); err == nil {
		t.Error("expected error for line without '='")
	}
}

func TestParse_emptyKey(t *testing.T) {
	if _, err := Parse([]byte("=value\n")); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := "name=Servo\nversion=2.0.0\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	props, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if props.Version() != "2.0.0" {
		t.Errorf("version = %q", props.Version())
	}
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing metadata file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}
