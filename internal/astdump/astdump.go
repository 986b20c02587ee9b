/*
File   : stolac/internal/astdump/astdump.go
Package: astdump

Package astdump renders a raw, fully-expanded struct dump of an AST
subtree (no stolac command-line flag exposes it) for when astprint's curated outline isn't enough to
see what's actually in a node (nil slices vs. empty, exact token.Kind
values, pointer identity of shared subtrees). It exists alongside
internal/astprint rather than replacing it — spec.md's own corpus shows
both a curated pretty-printer and raw struct inspection serving different
debugging needs, so stolac keeps both instead of collapsing to one.
*/
package astdump

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/stola-lang/stolac/ast"
)

var config = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump returns a deep, field-by-field rendering of node, suitable for
// diffing against a golden fixture in a test or pasting into a bug report.
func Dump(node ast.Node) string {
	return config.Sdump(node)
}
