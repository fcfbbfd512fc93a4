package search

import "cratebump/internal/manifest"

// Search runs the exact-match query over a directory tree and, when that
// yields nothing and a package name was supplied, the similarity fallback.
type Search struct {
	Root     string
	Criteria Criteria
	Files    []FileRecord
}

// New scans root once and returns a Search holding the unfiltered records.
func New(root string, c Criteria) (*Search, error) {
	files, err := ScanDir(root)
	if err != nil {
		return nil, err
	}
	return &Search{Root: root, Criteria: c, Files: files}, nil
}

// Run applies the criteria to every scanned file and returns the matches.
// Files left with neither a package nor any surviving dependency are
// excluded entirely rather than kept as empty entries.
func (s *Search) Run() []FileRecord {
	var out []FileRecord
	for _, f := range s.Files {
		rec := Filter(f.Record, s.Criteria)
		if rec.Count() == 0 {
			continue
		}
		out = append(out, FileRecord{Path: f.Path, Record: rec})
	}
	return out
}

// Fuzzy is the fallback for an empty exact search. It ranks the scanned
// package names by edit distance against the name criterion, independent
// of any version criterion; an absent name criterion never triggers it.
// The result carries just the matched package, no dependencies.
func (s *Search) Fuzzy() *FileRecord {
	if s.Criteria.Name == "" {
		return nil
	}

	var candidates []Candidate
	for _, f := range s.Files {
		if f.Record.Package == nil {
			continue
		}
		candidates = append(candidates, Candidate{Path: f.Path, Name: f.Record.Package.Name})
	}

	c := Closest(candidates, s.Criteria.Name)
	if c == nil {
		return nil
	}
	for _, f := range s.Files {
		if f.Path == c.Path && f.Record.Package != nil {
			pkg := *f.Record.Package
			return &FileRecord{Path: f.Path, Record: manifest.Record{Package: &pkg}}
		}
	}
	return nil
}
