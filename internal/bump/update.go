// Package bump rewrites version declarations across a directory tree, one
// byte-precise edit at a time.
package bump

import (
	"cratebump/internal/logging"
	"cratebump/internal/manifest"
	"cratebump/internal/search"
)

// Update describes one version change. Name narrows the change to a single
// package; empty means every declaration at Current.
type Update struct {
	Name    string
	Current string
	Next    string
}

// Criteria is the match selection this update applies, identical to the
// read-only search predicates.
func (u Update) Criteria() search.Criteria {
	return search.Criteria{Version: u.Current, Name: u.Name}
}

// Pass performs one update pass: parse, extract, filter, apply a single
// edit. The package match is preferred; otherwise the first dependency
// match in extraction order. Reports false when nothing was left to change
// or the source no longer parses.
func (u Update) Pass(source []byte) ([]byte, bool) {
	log := logging.Get(logging.CategoryBump)

	tree, err := manifest.Parse(source)
	if err != nil {
		log.Debugw("pass aborted, source does not parse", "error", err)
		return nil, false
	}
	defer tree.Close()

	rec := search.Filter(tree.Extract(), u.Criteria())
	lit := manifest.Quote(u.Next)

	if rec.Package != nil {
		log.Debugw("updating package version",
			"name", rec.Package.Name, "from", rec.Package.Version, "to", u.Next)
		return manifest.Splice(source, rec.Package.ValueSpan, lit), true
	}
	if len(rec.Deps) > 0 {
		dep := rec.Deps[0]
		log.Debugw("updating dependency version",
			"name", dep.Name, "from", dep.Version, "to", u.Next)
		return manifest.Splice(source, dep.ValueSpan, lit), true
	}
	return nil, false
}

// Apply runs passes to the fixpoint. Every edit shifts byte offsets and
// invalidates every span computed from the pre-edit source, so each pass
// re-parses from scratch. The loop is bounded by the initial match count:
// an edited declaration no longer equals Current and no pass creates new
// occurrences.
func (u Update) Apply(source []byte) []byte {
	current := source
	passes := 0
	for {
		next, changed := u.Pass(current)
		if !changed {
			logging.Get(logging.CategoryBump).Debugw("fixpoint reached", "edits", passes)
			return current
		}
		current = next
		passes++
	}
}
