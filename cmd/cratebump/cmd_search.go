package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cratebump/cmd/cratebump/ui"
	"cratebump/internal/logging"
	"cratebump/internal/search"
)

var (
	searchName    string
	searchVersion string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search version declarations across Cargo.toml manifests",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchName, "package-name", "p", "", "package or dependency name to match")
	searchCmd.Flags().StringVarP(&searchVersion, "version", "i", "", "version to match")
}

func runSearch(cmd *cobra.Command, args []string) error {
	log := logging.Get(logging.CategoryCLI)

	root, err := workDir()
	if err != nil {
		return err
	}
	log.Debugw("searching", "root", root, "name", searchName, "version", searchVersion)

	s, err := search.New(root, search.Criteria{Name: searchName, Version: searchVersion})
	if err != nil {
		return err
	}

	matches := s.Run()
	if len(matches) == 0 {
		if similar := s.Fuzzy(); similar != nil {
			fmt.Fprintf(cmd.OutOrStdout(),
				"Found similar package (exact package name not found): %s\n",
				ui.PkgName.Render(similar.Record.Package.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatPath(root, similar.Path))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No matches found.")
		return nil
	}

	for _, fr := range matches {
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatPath(root, fr.Path))
		fmt.Fprint(cmd.OutOrStdout(), ui.FormatRecord(fr.Record, ui.Green))
	}
	return nil
}
