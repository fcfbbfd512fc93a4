package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const coreManifest = `[package]
name = "core"
version = "0.1.0"

[dependencies]
util = { version = "0.1.0", path = "../util" }
`

const utilManifest = `[package]
name = "util"
version = "0.1.0"
`

func TestScanDirFindsManifests(t *testing.T) {
	root := t.TempDir()
	corePath := writeManifest(t, filepath.Join(root, "core"), coreManifest)
	utilPath := writeManifest(t, filepath.Join(root, "util"), utilManifest)

	files, err := ScanDir(root)
	require.NoError(t, err)
	require.Len(t, files, 2)

	paths := []string{files[0].Path, files[1].Path}
	assert.Contains(t, paths, corePath)
	assert.Contains(t, paths, utilPath)
}

func TestScanDirExcludesTarget(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "core"), coreManifest)
	writeManifest(t, filepath.Join(root, "core", "target", "package", "core-0.1.0"), coreManifest)
	writeManifest(t, filepath.Join(root, "target", "debug"), utilManifest)

	files, err := ScanDir(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "core", ManifestName), files[0].Path)
}

func TestScanDirSkipsEmptyRecords(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "meta"), "[workspace]\nmembers = [\"core\"]\n")
	writeManifest(t, filepath.Join(root, "core"), coreManifest)

	files, err := ScanDir(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "core", files[0].Record.Package.Name)
}

func TestScanDirSkipsInvalidUTF8(t *testing.T) {
	root := t.TempDir()
	bad := filepath.Join(root, "bad")
	require.NoError(t, os.MkdirAll(bad, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bad, ManifestName), []byte{0xff, 0xfe, 0xfd}, 0o644))
	writeManifest(t, filepath.Join(root, "core"), coreManifest)

	files, err := ScanDir(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestScanDirMissingRoot(t *testing.T) {
	_, err := ScanDir(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestLoadRecord(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, coreManifest)

	rec, err := LoadRecord(path)
	require.NoError(t, err)
	require.NotNil(t, rec.Package)
	assert.Equal(t, "core", rec.Package.Name)
	require.Len(t, rec.Deps, 1)
	assert.Equal(t, "util", rec.Deps[0].Name)
}
