package format

import "ronfmt/internal/ast"

// Layout is the rendering chosen for one value at one depth.
type Layout uint8

const (
	SingleLine Layout = iota
	MultiLine
)

func (l Layout) String() string {
	if l == MultiLine {
		return "multi-line"
	}
	return "single-line"
}

// Decide picks the layout of v rendered at depth. it is the item wrapping v,
// nil for map keys.
//
// Atoms and empty collections without comments stay on one line. A comment
// on the item or anywhere inside v forces expansion. Otherwise v stays on one
// line when depth*indent + min_width fits into the limit, ties included.
func Decide(v ast.Value, it *ast.Item, depth int, opt Options) Layout {
	opt = opt.withDefaults()
	if _, ok := v.(*ast.Atom); ok {
		return SingleLine
	}
	if ast.Len(v) == 0 && len(ast.Dangling(v)) == 0 {
		return SingleLine
	}
	if it != nil && it.HasTrivia() {
		return MultiLine
	}
	if v.HasComments() {
		return MultiLine
	}
	if depth*opt.IndentWidth+v.MinWidth() <= opt.MaxLineWidth {
		return SingleLine
	}
	return MultiLine
}
