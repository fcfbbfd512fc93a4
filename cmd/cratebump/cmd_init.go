package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cratebump/internal/config"
	"cratebump/internal/logging"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively set and persist cratebump's configuration",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	log := logging.Get(logging.CategoryCLI)

	cfg := config.Load()
	out := cmd.OutOrStdout()

	current := "no"
	if cfg.AlwaysAsk {
		current = "yes"
	}
	fmt.Fprintf(out, "Always ask for permission to modify files? (yes/no, current: %s): ", current)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		// EOF with no input keeps the current setting.
		line = current
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer != "" {
		cfg.AlwaysAsk = answer == "yes"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}
	path, err := config.Path()
	if err == nil {
		fmt.Fprintf(out, "Configuration saved to %s\n", path)
	} else {
		fmt.Fprintln(out, "Configuration saved.")
	}
	log.Debugw("configuration updated", "always_ask", cfg.AlwaysAsk)
	return nil
}
