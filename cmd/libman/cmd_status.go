package main

import (
	"encoding/json"

	"github.com/aykutozdemir/fsmos-libman/internal/git"
	"github.com/aykutozdemir/fsmos-libman/internal/library"
	"github.com/aykutozdemir/fsmos-libman/internal/properties"
	"github.com/aykutozdemir/fsmos-libman/internal/ui"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of every integrated library",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type libStatus struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Cloned  bool   `json:"cloned"`
	Branch  string `json:"branch,omitempty"`
	Head    string `json:"head,omitempty"`
	Dirty   bool   `json:"dirty"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	libsFlag, _ := cmd.Flags().GetString("libs")
	asJSON, _ := cmd.Flags().GetBool("json")

	libsDir, err := library.ResolveDir(libsFlag)
	if err != nil {
		return err
	}
	libs, err := library.List(libsDir)
	if err != nil {
		return err
	}

	statuses := make([]libStatus, 0, len(libs))
	for _, l := range libs {
		statuses = append(statuses, collectStatus(l))
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "LIBRARY", "VERSION", "STATE", "BRANCH", "HEAD", "DIRTY")
	for _, s := range statuses {
		state := "git"
		if !s.Cloned {
			state = "plain dir"
		}
		tbl.Row(s.Name, s.Version, state, s.Branch, s.Head, s.Dirty)
	}
	return tbl.Flush()
}

func collectStatus(l library.Library) libStatus {
	s := libStatus{Name: l.Name}

	if props, err := properties.Load(l.Dir); err == nil {
		s.Version = props.Version()
	}

	if !git.IsCloned(l.Dir) {
		return s
	}
	s.Cloned = true

	if branch, err := git.CurrentBranch(l.Dir); err == nil {
		if branch == "" {
			s.Branch = "(detached)"
		} else {
			s.Branch = branch
		}
	}
	if head, err := git.HeadCommit(l.Dir); err == nil {
		s.Head = head
	}
	if dirty, err := git.IsDirty(l.Dir); err == nil {
		s.Dirty = dirty
	}

	return s
}
