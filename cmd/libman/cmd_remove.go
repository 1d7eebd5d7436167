package main

import (
	"fmt"
	"os"

	"github.com/aykutozdemir/fsmos-libman/internal/library"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an integrated library (destructive)",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
	cmd.Flags().Bool("force", false, "Skip the confirmation prompt")
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	libsFlag, _ := cmd.Flags().GetString("libs")
	force, _ := cmd.Flags().GetBool("force")
	name := args[0]

	libsDir, err := library.ResolveDir(libsFlag)
	if err != nil {
		return err
	}
	dest, err := library.Dest(libsDir, name)
	if err != nil {
		return err
	}

	if _, err := os.Stat(dest); err != nil {
		return fmt.Errorf("library %q is not integrated (no %s)", name, dest)
	}

	if !force {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("remove is destructive; pass --force to confirm")
		}
		ok, err := promptConfirm(fmt.Sprintf("Remove %s?", dest))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("removing library: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Library removed: %s\n", dest)
	return nil
}
