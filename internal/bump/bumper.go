package bump

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"

	"cratebump/internal/logging"
	"cratebump/internal/search"
)

// ErrVersionsIdentical rejects an update whose current and next versions
// are the same. Checked before any scanning begins.
var ErrVersionsIdentical = errors.New("current and next versions are identical")

// ErrNoMatches reports a directory in which no manifest satisfies the
// update criteria. A single file yielding nothing is normal; a whole tree
// yielding nothing aborts the operation.
var ErrNoMatches = errors.New("no declarations match the given criteria")

// Bumper drives one version update over a whole directory tree.
type Bumper struct {
	root   string
	update Update
	files  []search.FileRecord
}

// New validates the requested versions, scans root, and fails fast when
// the versions are identical or nothing under root matches.
func New(root, current, next, name string) (*Bumper, error) {
	curVer, err := semver.NewVersion(current)
	if err != nil {
		return nil, fmt.Errorf("current version %q: %w", current, err)
	}
	nextVer, err := semver.NewVersion(next)
	if err != nil {
		return nil, fmt.Errorf("next version %q: %w", next, err)
	}
	if curVer.Equal(nextVer) {
		return nil, ErrVersionsIdentical
	}

	u := Update{Name: name, Current: current, Next: next}
	s, err := search.New(root, u.Criteria())
	if err != nil {
		return nil, err
	}
	files := s.Run()

	total := 0
	for _, f := range files {
		total += f.Record.Count()
	}
	if total == 0 {
		return nil, ErrNoMatches
	}

	logging.Get(logging.CategoryBump).Debugw("bumper ready",
		"root", root, "files", len(files), "declarations", total)
	return &Bumper{root: root, update: u, files: files}, nil
}

// Matches returns the per-file matches at the current version, for the
// before-edit summary.
func (b *Bumper) Matches() []search.FileRecord { return b.files }

// Run rewrites every matching manifest to its fixpoint and overwrites the
// file with the new content. A read or write failure aborts that file's
// update and is reported, but the remaining files still proceed; there is
// no rollback across files.
func (b *Bumper) Run() error {
	log := logging.Get(logging.CategoryBump)

	var errs []error
	for _, f := range b.files {
		content, err := os.ReadFile(f.Path)
		if err != nil {
			err = fmt.Errorf("reading %s: %w", f.Path, err)
			log.Warnw("skipping file", "error", err)
			errs = append(errs, err)
			continue
		}
		updated := b.update.Apply(content)
		if err := os.WriteFile(f.Path, updated, 0o644); err != nil {
			err = fmt.Errorf("writing %s: %w", f.Path, err)
			log.Warnw("update failed", "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PostMatches rescans root at the next version, for the after-edit
// summary.
func (b *Bumper) PostMatches() ([]search.FileRecord, error) {
	s, err := search.New(b.root, search.Criteria{Version: b.update.Next, Name: b.update.Name})
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}
