// Package search implements the query surface over extracted manifest
// records: directory scanning, exact name/version filtering, and the
// edit-distance fallback used when an exact package-name match comes up
// empty. The bump flow reuses the same filtering for its match selection.
package search

import (
	"strings"

	"cratebump/internal/manifest"
)

// Criteria are the optional predicates a query applies. Empty fields are
// inactive; active predicates combine as a single AND.
type Criteria struct {
	Version string
	Name    string
}

func (c Criteria) matches(id manifest.Identity) bool {
	if c.Version != "" && id.Version != c.Version {
		return false
	}
	if c.Name != "" && stripQuotes(id.Name) != stripQuotes(c.Name) {
		return false
	}
	return true
}

// Filter prunes a record to the identities matching the criteria. A
// package failing any active predicate becomes absent; failing
// dependencies are dropped, never replaced with placeholders. With no
// active predicates the record passes through unchanged.
func Filter(rec manifest.Record, c Criteria) manifest.Record {
	var out manifest.Record
	if rec.Package != nil && c.matches(*rec.Package) {
		pkg := *rec.Package
		out.Package = &pkg
	}
	for _, dep := range rec.Deps {
		if c.matches(dep) {
			out.Deps = append(out.Deps, dep)
		}
	}
	return out
}

func stripQuotes(s string) string { return strings.ReplaceAll(s, `"`, "") }
