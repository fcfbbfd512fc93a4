package search

import (
	"github.com/agext/levenshtein"

	"cratebump/internal/logging"
)

// Candidate is the name-only projection of a scanned manifest used for
// similarity ranking.
type Candidate struct {
	Path string
	Name string
}

// Closest returns the candidate whose package name has the smallest
// Levenshtein distance to target. Ties keep the first candidate in scan
// order. Returns nil when the candidate set is empty.
func Closest(candidates []Candidate, target string) *Candidate {
	log := logging.Get(logging.CategorySearch)

	best := -1
	var found *Candidate
	for i := range candidates {
		d := levenshtein.Distance(candidates[i].Name, target, nil)
		log.Debugw("similarity candidate",
			"name", candidates[i].Name, "distance", d)
		if best < 0 || d < best {
			best = d
			found = &candidates[i]
		}
	}
	if found != nil {
		log.Debugw("closest package", "name", found.Name, "distance", best)
	}
	return found
}
