package lock

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	lf := &File{
		Version:     1,
		GeneratedAt: "2026-01-01T00:00:00Z",
		ToolVersion: "test",
		Libraries: map[string]*Library{
			"ArduinoMap": {
				URL:    "https://github.com/user/ArduinoMap.git",
				Commit: "0123456789abcdef0123456789abcdef01234567",
			},
		},
	}

	if err := Save(path, lf); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Version != 1 {
		t.Errorf("version = %d, want 1", got.Version)
	}
	lib, ok := got.Libraries["ArduinoMap"]
	if !ok {
		t.Fatal("missing ArduinoMap entry")
	}
	if lib.Commit != lf.Libraries["ArduinoMap"].Commit {
		t.Errorf("commit = %q", lib.Commit)
	}
	if lib.URL != lf.Libraries["ArduinoMap"].URL {
		t.Errorf("url = %q", lib.URL)
	}
}

func TestParse_badYAML(t *testing.T) {
	if _, err := Parse([]byte("{not yaml")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestParse_wrongVersion(t *testing.T) {
	if _, err := Parse([]byte("version: 2\nlibraries: {}\n")); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestLoad_missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing lock file")
	}
}
