package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aykutozdemir/fsmos-libman/internal/git"
	"github.com/aykutozdemir/fsmos-libman/internal/testutil"
)

func TestUpdate_pullsAll(t *testing.T) {
	libs := t.TempDir()
	bareA := testutil.CreateBareRepo(t)
	bareB := testutil.CreateBareRepo(t)

	for name, bare := range map[string]string{"LibA": bareA, "LibB": bareB} {
		if _, _, err := runLibman(t, libs, "integrate", bare, name); err != nil {
			t.Fatalf("integrate %s: %v", name, err)
		}
	}

	dirA := filepath.Join(libs, "LibA")
	before, err := git.HeadCommitFull(dirA)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AddCommit(t, bareA)

	_, errOut, err := runLibman(t, libs, "update")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !strings.Contains(errOut, "[2/2]") {
		t.Errorf("expected progress up to [2/2]:\n%s", errOut)
	}

	after, err := git.HeadCommitFull(dirA)
	if err != nil {
		t.Fatal(err)
	}
	if before == after {
		t.Error("LibA should advance after update")
	}
}

func TestUpdate_selectedOnly(t *testing.T) {
	libs := t.TempDir()
	bareA := testutil.CreateBareRepo(t)
	bareB := testutil.CreateBareRepo(t)
	for name, bare := range map[string]string{"LibA": bareA, "LibB": bareB} {
		if _, _, err := runLibman(t, libs, "integrate", bare, name); err != nil {
			t.Fatalf("integrate %s: %v", name, err)
		}
	}

	_, errOut, err := runLibman(t, libs, "update", "LibB")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if strings.Contains(errOut, "LibA") {
		t.Errorf("LibA should not be touched:\n%s", errOut)
	}
	if !strings.Contains(errOut, "LibB updated") {
		t.Errorf("LibB should be updated:\n%s", errOut)
	}
}

func TestUpdate_unknownName(t *testing.T) {
	libs := t.TempDir()
	bare := testutil.CreateBareRepo(t)
	if _, _, err := runLibman(t, libs, "integrate", bare); err != nil {
		t.Fatal(err)
	}

	_, _, err := runLibman(t, libs, "update", "nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown library name")
	}
}

func TestUpdate_skipsPlainDir(t *testing.T) {
	libs := t.TempDir()
	if err := os.Mkdir(filepath.Join(libs, "handmade"), 0755); err != nil {
		t.Fatal(err)
	}

	out, errOut, err := runLibman(t, libs, "update")
	if err != nil {
		t.Fatalf("plain dirs must not fail the update: %v", err)
	}
	if !strings.Contains(errOut, "not a git checkout") {
		t.Errorf("missing skip warning:\n%s", errOut)
	}
	if !strings.Contains(out, "Update complete.") {
		t.Errorf("missing completion line:\n%s", out)
	}
}

func TestUpdate_emptyLibsDir(t *testing.T) {
	libs := t.TempDir()
	out, _, err := runLibman(t, libs, "update")
	if err != nil {
		t.Fatalf("update on empty libs dir: %v", err)
	}
	if !strings.Contains(out, "No libraries to update.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestUpdate_missingLibsDir(t *testing.T) {
	_, _, err := runLibman(t, filepath.Join(t.TempDir(), "absent"), "update")
	if err == nil {
		t.Fatal("expected error when the libs directory does not exist")
	}
}
