// Package substitute computes the new name for each listed file.
package substitute

import "strings"

const (
	// From is the substring replaced in every listed filename.
	From = "jane"
	// To is what From is replaced with.
	To = "jdoe"
)

// Pair is the (old, new) filename mapping derived from one list line.
type Pair struct {
	Old string
	New string
}

// Unchanged reports whether renaming the pair would be a no-op.
func (p Pair) Unchanged() bool {
	return p.Old == p.New
}

// Substitute replaces every non-overlapping occurrence of From in name with To.
// Matching is literal and case-sensitive.
func Substitute(name string) string {
	return strings.ReplaceAll(name, From, To)
}

// PairFor derives the rename pair for a single trimmed list line.
func PairFor(line string) Pair {
	return Pair{Old: line, New: Substitute(line)}
}
