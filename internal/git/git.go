package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Clone clones a repository into dest. Git's own output is streamed to the
// console so the user sees clone progress.
func Clone(url, dest string) error {
	if err := run(".", "clone", url, dest); err != nil {
		return fmt.Errorf("cloning %s: %w", url, err)
	}
	return nil
}

// Pull updates an existing checkout from its remote, with the working
// directory set to repoDir.
func Pull(repoDir string) error {
	if err := run(repoDir, "pull"); err != nil {
		return fmt.Errorf("pulling in %s: %w", repoDir, err)
	}
	return nil
}

// CurrentBranch returns the current branch name, or empty string if detached.
func CurrentBranch(repoDir string) (string, error) {
	out, err := output(repoDir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		// Detached HEAD: symbolic-ref fails.
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// HeadCommit returns the short SHA of HEAD.
func HeadCommit(repoDir string) (string, error) {
	out, err := output(repoDir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// HeadCommitFull returns the full SHA of HEAD.
func HeadCommitFull(repoDir string) (string, error) {
	out, err := output(repoDir, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsDirty returns true if the working tree has uncommitted changes.
func IsDirty(repoDir string) (bool, error) {
	out, err := output(repoDir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// RemoteURL returns the URL of the origin remote.
func RemoteURL(repoDir string) (string, error) {
	out, err := output(repoDir, "remote", "get-url", "origin")
	if err != nil {
		return "", fmt.Errorf("reading origin URL: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// IsCloned returns true if the directory is a git repository.
func IsCloned(repoDir string) bool {
	info, err := os.Stat(filepath.Join(repoDir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsInstalled returns true if git is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Version returns the installed git version string (e.g. "git version 2.43.0").
func Version() (string, error) {
	out, err := output(".", "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RemoteReachable verifies that a repo URL answers to ls-remote.
func RemoteReachable(url string) bool {
	cmd := exec.Command("git", "ls-remote", "--exit-code", "--quiet", url)
	return cmd.Run() == nil
}

// run executes a git command in the given directory, streaming output.
func run(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

// output executes a git command and returns its stdout without printing
// to the console. Stderr is captured and included in the error on failure.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
