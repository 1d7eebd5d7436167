package library

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Library is a single integrated library: a subdirectory of the libs dir.
type Library struct {
	Name string
	Dir  string
}

// DeriveName extracts a library name from a Git URL: the final path segment
// with a trailing .git stripped. Handles both SSH (git@host:org/repo.git)
// and HTTPS (https://host/org/repo.git) forms.
func DeriveName(url string) string {
	url = strings.TrimRight(url, "/")

	// SSH format: git@github.com:org/repo.git
	if idx := strings.LastIndex(url, ":"); idx != -1 && !strings.Contains(url, "://") {
		url = url[idx+1:]
	}

	name := path.Base(url)
	name = strings.TrimSuffix(name, ".git")

	return name
}

// DefaultDir returns the libs directory anchored at the running executable:
// a "libs" directory sibling to the executable's parent directory, so a
// binary installed at <framework>/tools/libman resolves <framework>/libs.
func DefaultDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	toolDir := filepath.Dir(exe)
	return filepath.Join(filepath.Dir(toolDir), "libs"), nil
}

// ResolveDir returns the absolute libs directory, preferring the explicit
// override (the --libs flag) over the executable-anchored default.
func ResolveDir(override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolving libs directory: %w", err)
		}
		return abs, nil
	}
	return DefaultDir()
}

// EnsureDir creates the libs directory and any missing parents. An existing
// directory is not an error.
func EnsureDir(libsDir string) error {
	if err := os.MkdirAll(libsDir, 0755); err != nil {
		return fmt.Errorf("creating libs directory %s: %w", libsDir, err)
	}
	return nil
}

// Dest computes the destination path for a named library and rejects names
// that would escape the libs directory.
func Dest(libsDir, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(libsDir, name), nil
}

// ValidateName ensures a library name is a simple directory name.
func ValidateName(name string) error {
	if name == "" || name == "." {
		return fmt.Errorf("library name must not be empty")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("invalid library name %q: absolute path is not allowed", name)
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("invalid library name %q: must be a simple directory name", name)
	}
	if name == ".." {
		return fmt.Errorf("invalid library name %q: must not escape the libs directory", name)
	}
	return nil
}

// List returns the integrated libraries, sorted by name. Regular files in
// the libs directory (e.g. the lock file) are ignored.
func List(libsDir string) ([]Library, error) {
	entries, err := os.ReadDir(libsDir)
	if err != nil {
		return nil, fmt.Errorf("reading libs directory: %w", err)
	}

	var libs []Library
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		libs = append(libs, Library{
			Name: e.Name(),
			Dir:  filepath.Join(libsDir, e.Name()),
		})
	}
	sort.Slice(libs, func(i, j int) bool { return libs[i].Name < libs[j].Name })
	return libs, nil
}

// Select filters libs down to the named subset, preserving order. It errors
// on names that are not integrated.
func Select(libs []Library, names []string) ([]Library, error) {
	if len(names) == 0 {
		return libs, nil
	}
	byName := make(map[string]Library, len(libs))
	for _, l := range libs {
		byName[l.Name] = l
	}
	selected := make([]Library, 0, len(names))
	for _, n := range names {
		l, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("library %q is not integrated", n)
		}
		selected = append(selected, l)
	}
	return selected, nil
}
