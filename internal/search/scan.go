package search

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"cratebump/internal/logging"
	"cratebump/internal/manifest"
)

// ManifestName is the file name the scan looks for.
const ManifestName = "Cargo.toml"

// ErrNotUTF8 reports manifest content that is not valid UTF-8.
var ErrNotUTF8 = errors.New("manifest is not valid UTF-8")

// FileRecord pairs a manifest path with the record extracted from it. It
// lives for one scan; the bump flow rebuilds records per edit pass instead
// of reusing these.
type FileRecord struct {
	Path   string
	Record manifest.Record
}

// ScanDir walks root recursively and extracts a record from every
// Cargo.toml found. Directories named `target` are excluded wholesale,
// matching the build-output convention. Unreadable or unparsable files are
// logged and skipped, never aborting the scan. Files with nothing
// extractable are omitted from the result.
func ScanDir(root string) ([]FileRecord, error) {
	log := logging.Get(logging.CategorySearch)

	var files []FileRecord
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
		if d.IsDir() {
			if d.Name() == "target" {
				log.Debugw("excluding build output", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != ManifestName {
			return nil
		}

		rec, err := LoadRecord(path)
		if err != nil {
			log.Warnw("skipping manifest", "path", path, "error", err)
			return nil
		}
		if rec.Count() == 0 {
			return nil
		}
		files = append(files, FileRecord{Path: path, Record: rec})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	log.Debugw("scan completed", "root", root, "manifests", len(files))
	return files, nil
}

// LoadRecord reads, parses, and extracts a single manifest file.
func LoadRecord(path string) (manifest.Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return manifest.Record{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return manifest.Record{}, fmt.Errorf("%s: %w", path, ErrNotUTF8)
	}
	tree, err := manifest.Parse(content)
	if err != nil {
		return manifest.Record{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()
	return tree.Extract(), nil
}
