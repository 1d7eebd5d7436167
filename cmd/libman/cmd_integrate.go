package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aykutozdemir/fsmos-libman/internal/git"
	"github.com/aykutozdemir/fsmos-libman/internal/library"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newIntegrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "integrate <url> [name]",
		Short:   "Clone or update a library into the libs directory",
		Example: "  libman integrate https://github.com/user/library.git MyLibrary",
		Args:    cobra.MaximumNArgs(2),
		RunE:    runIntegrate,
	}
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for URL and name")
	return cmd
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	libsFlag, _ := cmd.Flags().GetString("libs")
	interactive, _ := cmd.Flags().GetBool("interactive")

	var url, name string
	switch {
	case interactive:
		if len(args) > 0 {
			return fmt.Errorf("--interactive takes no positional arguments")
		}
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--interactive requires a TTY; pass the URL as an argument instead")
		}
		var err error
		url, name, err = promptIntegrate()
		if err != nil {
			return fmt.Errorf("interactive integrate: %w", err)
		}
	case len(args) == 0:
		return fmt.Errorf("requires a repository URL")
	default:
		url = args[0]
		if len(args) > 1 {
			name = args[1]
		}
	}

	if name == "" {
		name = library.DeriveName(url)
	}
	if err := library.ValidateName(name); err != nil {
		return fmt.Errorf("cannot use library name derived from %q: %w", url, err)
	}

	libsDir, err := library.ResolveDir(libsFlag)
	if err != nil {
		return err
	}
	dest, err := library.Dest(libsDir, name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Integrating library: %s\n", name)
	_, _ = fmt.Fprintf(out, "From: %s\n", url)
	_, _ = fmt.Fprintf(out, "To: %s\n", dest)

	if err := library.EnsureDir(libsDir); err != nil {
		return err
	}

	// Any existing entry counts as already integrated, even when it is not
	// a valid git checkout. A failed update is a warning, not an error.
	if _, statErr := os.Stat(dest); statErr == nil {
		_, _ = fmt.Fprintf(out, "Directory %s already exists. Updating...\n", dest)
		if err := git.Pull(dest); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to update library: %v\n", err)
		}
	} else {
		_, _ = fmt.Fprintln(out, "Cloning repository...")
		if err := git.Clone(url, dest); err != nil {
			return fmt.Errorf("failed to clone repository: %w", err)
		}
	}

	printIntegrationSummary(out, dest)
	return nil
}

// printIntegrationSummary reports success plus the manual follow-up checklist.
func printIntegrationSummary(out io.Writer, dest string) {
	_, _ = fmt.Fprintln(out, "\nLibrary integrated successfully!")
	_, _ = fmt.Fprintf(out, "Location: %s\n", dest)
	_, _ = fmt.Fprintln(out, "\nNext steps:")
	_, _ = fmt.Fprintln(out, "1. Review the library structure")
	_, _ = fmt.Fprintln(out, "2. Check for compatibility with FsmOS")
	_, _ = fmt.Fprintln(out, "3. Update library.properties if needed")
	_, _ = fmt.Fprintln(out, "4. Test integration")
}
