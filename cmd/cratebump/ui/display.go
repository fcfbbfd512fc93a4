package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"cratebump/internal/manifest"
)

// Colorizer picks the color a version literal is rendered in. Search
// output uses Green; bump previews use Red for the version about to be
// replaced.
type Colorizer func(string) string

// FormatRecord renders an extracted record as indented lines, one per
// matching declaration, with the version highlighted inside its pair
// text.
func FormatRecord(rec manifest.Record, color Colorizer) string {
	var b strings.Builder
	if rec.Package != nil {
		fmt.Fprintf(&b, "  %s %s\n",
			PkgName.Render(rec.Package.Name),
			highlightVersion(rec.Package.VersionPair, rec.Package.Version, color))
	}
	for _, dep := range rec.Deps {
		fmt.Fprintf(&b, "  %s %s\n",
			DepName.Render(dep.Name),
			highlightVersion(dep.VersionPair, dep.Version, color))
	}
	return b.String()
}

// highlightVersion colors the version literal inside its full pair
// text, leaving the surrounding key and punctuation untouched.
func highlightVersion(pair, version string, color Colorizer) string {
	lit := `"` + version + `"`
	before, after, found := strings.Cut(pair, lit)
	if !found {
		return pair
	}
	return before + color(lit) + after
}

// FormatPath renders a manifest path relative to root, highlighting
// the immediate parent directory so crate names stand out in long
// listings.
func FormatPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	parts := strings.Split(rel, string(filepath.Separator))
	switch len(parts) {
	case 1:
		return rel
	case 2:
		return PathAccent.Render(parts[0]) + string(filepath.Separator) + parts[1]
	default:
		head := strings.Join(parts[:len(parts)-2], string(filepath.Separator))
		return head + string(filepath.Separator) +
			PathAccent.Render(parts[len(parts)-2]) +
			string(filepath.Separator) + parts[len(parts)-1]
	}
}

// FormatPathWithMatches appends a match count to a formatted path.
func FormatPathWithMatches(root, path string, n int) string {
	return fmt.Sprintf("%s %s", FormatPath(root, path),
		MatchCount.Render(fmt.Sprintf("(%d)", n)))
}
