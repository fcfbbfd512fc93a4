package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cratebump/cmd/cratebump/ui"
	"cratebump/internal/bump"
	"cratebump/internal/config"
	"cratebump/internal/logging"
)

var (
	bumpName    string
	bumpCurrent string
	bumpNext    string
	bumpYes     bool
)

var bumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Rewrite matching version declarations to a new version",
	RunE:  runBump,
}

func init() {
	bumpCmd.Flags().StringVarP(&bumpName, "package-name", "p", "", "restrict the bump to one package or dependency name")
	bumpCmd.Flags().StringVarP(&bumpCurrent, "version", "i", "", "current version to replace")
	bumpCmd.Flags().StringVarP(&bumpNext, "new-version", "r", "", "version to write in its place")
	bumpCmd.Flags().BoolVarP(&bumpYes, "yes", "y", false, "skip the confirmation prompt")
	_ = bumpCmd.MarkFlagRequired("version")
	_ = bumpCmd.MarkFlagRequired("new-version")
}

func runBump(cmd *cobra.Command, args []string) error {
	log := logging.Get(logging.CategoryCLI)

	root, err := workDir()
	if err != nil {
		return err
	}
	cfg := config.Load()
	log.Debugw("bumping", "root", root, "name", bumpName,
		"current", bumpCurrent, "next", bumpNext, "always_ask", cfg.AlwaysAsk)

	b, err := bump.New(root, bumpCurrent, bumpNext, bumpName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Packages to bump:")
	for _, fr := range b.Matches() {
		fmt.Fprintln(out, ui.FormatPathWithMatches(root, fr.Path, fr.Record.Count()))
		fmt.Fprint(out, ui.FormatRecord(fr.Record, ui.Red))
	}

	if !bumpYes && cfg.AlwaysAsk {
		ok, err := confirm(cmd.InOrStdin(), out, "Proceed to bump all to the new version? [y/N]: ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Execution interrupted.")
			return nil
		}
	}

	if err := b.Run(); err != nil {
		return fmt.Errorf("bumping manifests: %w", err)
	}

	after, err := b.PostMatches()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Updated packages:")
	for _, fr := range after {
		fmt.Fprintln(out, ui.FormatPathWithMatches(root, fr.Path, fr.Record.Count()))
		fmt.Fprint(out, ui.FormatRecord(fr.Record, ui.Green))
	}
	return nil
}

// confirm reads one line from in and reports whether it is an
// affirmative answer. EOF counts as a refusal.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
