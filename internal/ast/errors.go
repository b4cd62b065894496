package ast

import (
	"fmt"

	"ronfmt/internal/parser"
	"ronfmt/internal/source"
)

// StructuralError is returned by Build for a parse tree shape it does not
// know. The parser never produces one for input it accepted.
type StructuralError struct {
	Kind parser.NodeKind
	Span source.Span
	Msg  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s node at %s: %s", e.Kind, e.Span, e.Msg)
}

func structural(n *parser.Node, format string, args ...any) *StructuralError {
	return &StructuralError{Kind: n.Kind, Span: n.Span, Msg: fmt.Sprintf(format, args...)}
}
