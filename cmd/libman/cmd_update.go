package main

import (
	"fmt"

	"github.com/aykutozdemir/fsmos-libman/internal/git"
	"github.com/aykutozdemir/fsmos-libman/internal/library"
	"github.com/aykutozdemir/fsmos-libman/internal/ui"
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [name ...]",
		Short: "Pull the latest changes for all or selected libraries",
		RunE:  runUpdate,
	}
}

func runUpdate(cmd *cobra.Command, args []string) error {
	libsFlag, _ := cmd.Flags().GetString("libs")

	libsDir, err := library.ResolveDir(libsFlag)
	if err != nil {
		return err
	}

	libs, err := library.List(libsDir)
	if err != nil {
		return err
	}
	libs, err = library.Select(libs, args)
	if err != nil {
		return err
	}

	if len(libs) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No libraries to update.")
		return nil
	}

	// Same policy as integrate's update branch: pull failures are warnings.
	progress := ui.NewProgress(cmd.ErrOrStderr(), len(libs))
	for _, l := range libs {
		if !git.IsCloned(l.Dir) {
			progress.Warn("skipping %s: not a git checkout", l.Name)
			continue
		}
		progress.Log("Updating %s ...", l.Name)
		if err := git.Pull(l.Dir); err != nil {
			progress.Warn("failed to update %s: %v", l.Name, err)
			continue
		}
		progress.Done(fmt.Sprintf("%s updated", l.Name))
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Update complete.")
	return nil
}
