package manifest

// Splice returns a new source with the bytes inside span replaced by lit.
// Every byte outside the span is preserved verbatim. The caller supplies
// lit already quoted for the grammar; Splice performs no quoting logic.
func Splice(source []byte, span Span, lit string) []byte {
	out := make([]byte, 0, len(source)-int(span.End-span.Start)+len(lit))
	out = append(out, source[:span.Start]...)
	out = append(out, lit...)
	out = append(out, source[span.End:]...)
	return out
}

// Quote wraps a bare version string in the double quotes the grammar's
// basic strings use.
func Quote(version string) string { return `"` + version + `"` }
