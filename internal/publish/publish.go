// Package publish runs `cargo publish` across every manifest directory
// under a root. Directories whose crates depend on siblings not yet
// published will fail on early attempts, so the whole set is retried in
// full sweeps until a sweep makes no additional progress; that bounds the
// dependency-order problem without building an explicit dependency graph.
package publish

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"cratebump/internal/logging"
	"cratebump/internal/search"
)

// Runner attempts to publish one directory. Injectable so tests never
// shell out.
type Runner func(ctx context.Context, dir string) error

// CargoRunner invokes `cargo publish` in dir with all standard streams
// silenced.
func CargoRunner(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "cargo", "publish")
	cmd.Dir = dir
	cmd.Stdin = nil
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cargo publish in %s: %w", dir, err)
	}
	return nil
}

// Status is the final publish outcome for one directory.
type Status struct {
	Dir       string
	Published bool
}

// FindDirs returns every directory under root that contains a Cargo.toml,
// excluding anything under a `target` directory.
func FindDirs(root string) ([]string, error) {
	log := logging.Get(logging.CategoryPublish)

	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				return err
			}
			log.Warnw("skipping unreadable entry", "path", path, "error", err)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == "target" {
			return filepath.SkipDir
		}
		if _, statErr := os.Stat(filepath.Join(path, search.ManifestName)); statErr == nil {
			log.Debugw("publishable directory", "dir", path)
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finding publishable dirs under %s: %w", root, err)
	}
	return dirs, nil
}
