package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// CreateBareRepo creates a bare git repository with an initial commit in a
// temp directory. Returns the path to the bare repo, usable as a clone URL.
func CreateBareRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bare := filepath.Join(dir, "library.git")

	// Create a working repo first, then clone it bare.
	work := filepath.Join(dir, "work")
	run(t, dir, "git", "init", "-b", "main", work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")

	writeFile(t, filepath.Join(work, "README.md"), "# library\n")
	run(t, work, "git", "add", ".")
	run(t, work, "git", "commit", "-m", "initial commit")

	run(t, dir, "git", "clone", "--bare", work, bare)
	return bare
}

// AddCommit pushes a new commit to the bare repo so that existing clones
// fall behind and a pull has something to fetch.
func AddCommit(t *testing.T, bare string) {
	t.Helper()
	dir := t.TempDir()
	work := filepath.Join(dir, "work")
	run(t, dir, "git", "clone", bare, work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")

	name := fmt.Sprintf("note-%d.txt", time.Now().UnixNano())
	writeFile(t, filepath.Join(work, name), "update\n")
	run(t, work, "git", "add", ".")
	run(t, work, "git", "commit", "-m", "follow-up commit")
	run(t, work, "git", "push", "origin", "HEAD:main")
}

// WriteLibraryProperties writes an Arduino library.properties file with the
// given name and version into a library directory.
func WriteLibraryProperties(t *testing.T, libDir, name, version string) {
	t.Helper()
	content := fmt.Sprintf("name=%s\nversion=%s\nauthor=Test\narchitectures=avr,esp32\n", name, version)
	writeFile(t, filepath.Join(libDir, "library.properties"), content)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
