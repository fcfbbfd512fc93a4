// cratebump searches and rewrites version declarations across a tree
// of Cargo.toml manifests.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cratebump/internal/logging"
)

var (
	verbose bool
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "cratebump",
	Short: "Search and bump crate versions across Cargo.toml manifests",
	Long: `cratebump scans a directory tree for Cargo.toml files and lets you
search package and dependency version declarations, rewrite them in
place, and publish the crates that declare them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", "", "directory to operate on (default: current directory)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(bumpCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(initCmd)
}

// workDir resolves the directory commands operate on, preferring the
// --dir flag over the process working directory.
func workDir() (string, error) {
	if rootDir != "" {
		return rootDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return wd, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
