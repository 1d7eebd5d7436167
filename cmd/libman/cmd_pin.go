package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/aykutozdemir/fsmos-libman/internal/git"
	"github.com/aykutozdemir/fsmos-libman/internal/library"
	"github.com/aykutozdemir/fsmos-libman/internal/lock"
	"github.com/spf13/cobra"
)

func newPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin",
		Short: "Record each library's origin URL and HEAD commit in the lock file",
		RunE:  runPin,
	}
}

func runPin(cmd *cobra.Command, _ []string) error {
	libsFlag, _ := cmd.Flags().GetString("libs")

	libsDir, err := library.ResolveDir(libsFlag)
	if err != nil {
		return err
	}
	libs, err := library.List(libsDir)
	if err != nil {
		return err
	}

	lf := &lock.File{
		Version:     1,
		GeneratedAt: time.Now().Format(time.RFC3339),
		ToolVersion: version,
		Libraries:   make(map[string]*lock.Library, len(libs)),
	}

	out := cmd.OutOrStdout()
	for _, l := range libs {
		if !git.IsCloned(l.Dir) {
			_, _ = fmt.Fprintf(out, "Skipping %s (not a git checkout)\n", l.Name)
			continue
		}
		commit, err := git.HeadCommitFull(l.Dir)
		if err != nil {
			return fmt.Errorf("reading HEAD for %s: %w", l.Name, err)
		}
		url, err := git.RemoteURL(l.Dir)
		if err != nil {
			// A checkout without an origin remote can still be pinned.
			url = ""
		}
		lf.Libraries[l.Name] = &lock.Library{
			URL:    url,
			Commit: commit,
		}
		_, _ = fmt.Fprintf(out, "Pinned %s @ %s\n", l.Name, commit[:minLen(len(commit), 7)])
	}

	lockPath := filepath.Join(libsDir, lock.FileName)
	if err := lock.Save(lockPath, lf); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Lock file written to %s\n", lockPath)
	return nil
}

func minLen(a, b int) int {
	if a < b {
		return a
	}
	return b
}
