package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cratebump/cmd/cratebump/ui"
	"cratebump/internal/logging"
	"cratebump/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Run cargo publish in every crate directory under the tree",
	Long: `publish finds every directory holding a Cargo.toml and runs cargo
publish in each, sweeping repeatedly so crates that depend on others in
the same tree succeed once their dependencies are up.`,
	RunE: runPublish,
}

func runPublish(cmd *cobra.Command, args []string) error {
	log := logging.Get(logging.CategoryCLI)

	root, err := workDir()
	if err != nil {
		return err
	}
	dirs, err := publish.FindDirs(root)
	if err != nil {
		return err
	}
	log.Debugw("publishing", "root", root, "crates", len(dirs))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	statuses := publish.Run(ctx, dirs, publish.CargoRunner)

	out := cmd.OutOrStdout()
	var published, failed []string
	for _, st := range statuses {
		if st.Published {
			published = append(published, st.Dir)
		} else {
			failed = append(failed, st.Dir)
		}
	}
	if len(published) > 0 {
		fmt.Fprintln(out, "Published modules:")
		for _, dir := range published {
			fmt.Fprintln(out, "  "+ui.Green(ui.FormatPath(root, dir)))
		}
	}
	if len(failed) > 0 {
		fmt.Fprintln(out, "Unpublished modules:")
		for _, dir := range failed {
			fmt.Fprintln(out, "  "+ui.Red(ui.FormatPath(root, dir)))
		}
	}
	return nil
}
