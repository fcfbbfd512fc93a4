package manifest

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"cratebump/internal/logging"
)

// Span is a half-open byte range into the source a record was extracted
// from.
type Span struct {
	Start uint32
	End   uint32
}

// Identity is one extracted name+version declaration. NamePair and
// VersionPair hold the full `key = value` declaration text for display;
// ValueSpan is the narrower range of the quoted version literal, the only
// bytes an edit replaces. The literal named by ValueSpan always appears
// inside VersionPair.
type Identity struct {
	Name        string
	Version     string
	NamePair    string
	VersionPair string
	ValueSpan   Span
}

// Record is everything extractable from one manifest: an optional package
// identity plus the dependency identities in source order, deduplicated by
// byte position.
type Record struct {
	Package *Identity
	Deps    []Identity
}

// Count reports how many declarations the record carries.
func (r Record) Count() int {
	n := len(r.Deps)
	if r.Package != nil {
		n++
	}
	return n
}

// Extract walks the tree's top-level tables and produces the typed record.
// Only a `[package]` table with both a quoted name and a quoted version
// yields a package identity; a name without a version is useless for
// version operations, so partial identities are absent rather than
// half-filled. Dependencies come only from `[dependencies]` entries whose
// value is an inline table with a quoted `version` key.
func (t *Tree) Extract() Record {
	log := logging.Get(logging.CategoryManifest)

	root := t.tree.RootNode()
	if root.Type() != "document" {
		log.Debugw("root is not a document, nothing to extract", "kind", root.Type())
		return Record{}
	}

	var rec Record
	seen := make(map[uint32]bool)
	for i := 0; i < int(root.ChildCount()); i++ {
		table := root.Child(i)
		if table.Type() != "table" {
			continue
		}
		// The table header key is the first bare_key in document order.
		key := findChildByType(table, "bare_key")
		if key == nil {
			continue
		}
		switch strings.TrimSpace(t.text(key)) {
		case "package":
			if rec.Package == nil {
				rec.Package = t.extractPackage(table)
			}
		case "dependencies":
			for _, dep := range t.extractDeps(table) {
				if seen[dep.ValueSpan.Start] {
					continue
				}
				seen[dep.ValueSpan.Start] = true
				rec.Deps = append(rec.Deps, dep)
			}
		}
	}

	log.Debugw("extracted manifest record",
		"package", rec.Package != nil, "deps", len(rec.Deps))
	return rec
}

func (t *Tree) extractPackage(table *sitter.Node) *Identity {
	var id Identity
	var haveName, haveVersion bool

	for i := 0; i < int(table.ChildCount()); i++ {
		pair := table.Child(i)
		if pair.Type() != "pair" {
			continue
		}
		key := findChildByType(pair, "bare_key")
		if key == nil {
			continue
		}
		switch strings.TrimSpace(t.text(key)) {
		case "name":
			if str := findChildByType(pair, "string"); str != nil {
				id.Name = stripQuotes(t.text(str))
				id.NamePair = strings.TrimSpace(t.text(pair))
				haveName = true
			}
		case "version":
			if str := findChildByType(pair, "string"); str != nil {
				id.Version = stripQuotes(t.text(str))
				id.VersionPair = strings.TrimSpace(t.text(pair))
				id.ValueSpan = Span{Start: str.StartByte(), End: str.EndByte()}
				haveVersion = true
			}
		}
	}

	if !haveName || !haveVersion {
		return nil
	}
	return &id
}

func (t *Tree) extractDeps(table *sitter.Node) []Identity {
	var deps []Identity

	for i := 0; i < int(table.ChildCount()); i++ {
		pair := table.Child(i)
		if pair.Type() != "pair" {
			continue
		}
		key := findChildByType(pair, "bare_key")
		if key == nil {
			continue
		}
		// Bare-string dependencies (`dep = "1.0"`) carry no independently
		// addressable version literal in this grammar subset and are not
		// extracted as editable entities.
		inline := findChildByType(pair, "inline_table")
		if inline == nil {
			continue
		}
		version, versionPair, valueSpan, ok := t.versionFromInlineTable(inline)
		if !ok {
			continue
		}
		deps = append(deps, Identity{
			Name:        strings.TrimSpace(t.text(key)),
			Version:     version,
			NamePair:    strings.TrimSpace(t.text(pair)),
			VersionPair: versionPair,
			ValueSpan:   valueSpan,
		})
	}

	return deps
}

// versionFromInlineTable finds the first `version = "..."` pair inside an
// inline table and reports the quote-stripped version, the declaration
// text, and the literal's byte range.
func (t *Tree) versionFromInlineTable(inline *sitter.Node) (string, string, Span, bool) {
	for i := 0; i < int(inline.ChildCount()); i++ {
		pair := inline.Child(i)
		if pair.Type() != "pair" {
			continue
		}
		key := findChildByType(pair, "bare_key")
		if key == nil || strings.TrimSpace(t.text(key)) != "version" {
			continue
		}
		str := findChildByType(pair, "string")
		if str == nil {
			continue
		}
		span := Span{Start: str.StartByte(), End: str.EndByte()}
		return stripQuotes(t.text(str)), strings.TrimSpace(t.text(pair)), span, true
	}
	return "", "", Span{}, false
}

func (t *Tree) text(n *sitter.Node) string { return n.Content(t.source) }

// findChildByType returns the first descendant of the given kind in
// document order.
func findChildByType(n *sitter.Node, kind string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == kind {
			return child
		}
		if found := findChildByType(child, kind); found != nil {
			return found
		}
	}
	return nil
}

func stripQuotes(s string) string { return strings.ReplaceAll(s, `"`, "") }
