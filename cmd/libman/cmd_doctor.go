package main

import (
	"fmt"
	"os"

	"github.com/aykutozdemir/fsmos-libman/internal/git"
	"github.com/aykutozdemir/fsmos-libman/internal/library"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ok := true

	// Check git.
	_, _ = fmt.Fprint(out, "Checking git... ")
	if !git.IsInstalled() {
		_, _ = fmt.Fprintln(out, "NOT FOUND")
		_, _ = fmt.Fprintln(out, "  git is required. Install it from https://git-scm.com/")
		ok = false
	} else if ver, err := git.Version(); err != nil {
		_, _ = fmt.Fprintln(out, "ERROR")
		ok = false
	} else {
		_, _ = fmt.Fprintln(out, ver)
	}

	// Check the libs directory.
	libsFlag, _ := cmd.Flags().GetString("libs")
	libsDir, err := library.ResolveDir(libsFlag)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Libs directory: %s ... ", libsDir)
	if info, statErr := os.Stat(libsDir); statErr != nil {
		_, _ = fmt.Fprintln(out, "missing (will be created on first integrate)")
	} else if !info.IsDir() {
		_, _ = fmt.Fprintln(out, "NOT A DIRECTORY")
		ok = false
	} else {
		libs, listErr := library.List(libsDir)
		if listErr != nil {
			_, _ = fmt.Fprintln(out, "UNREADABLE")
			ok = false
		} else {
			_, _ = fmt.Fprintf(out, "%d libraries\n", len(libs))
			checkLibraries(cmd, libs)
		}
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// checkLibraries reports each library's checkout state and remote reachability.
// Findings here are informational and do not fail the doctor run.
func checkLibraries(cmd *cobra.Command, libs []library.Library) {
	out := cmd.OutOrStdout()
	for _, l := range libs {
		_, _ = fmt.Fprintf(out, "  Checking %s... ", l.Name)
		if !git.IsCloned(l.Dir) {
			_, _ = fmt.Fprintln(out, "not a git checkout")
			continue
		}
		url, err := git.RemoteURL(l.Dir)
		if err != nil {
			_, _ = fmt.Fprintln(out, "no origin remote")
			continue
		}
		if git.RemoteReachable(url) {
			_, _ = fmt.Fprintln(out, "OK")
		} else {
			_, _ = fmt.Fprintf(out, "origin unreachable (%s)\n", url)
		}
	}
}
