package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"ronfmt/internal/parser"
	"ronfmt/internal/source"
)

// CheckTreeInvariants runs a minimal set of span invariants on a parse tree:
// 1) the root is a File node whose span lies within file content bounds
// 2) every node span belongs to sf and is fully contained in its parent span
// 3) non-comment siblings appear in source order and do not overlap
func CheckTreeInvariants(root *parser.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil root or file")
	}
	if root.Kind != parser.NodeFile {
		return fmt.Errorf("root is %s, want File", root.Kind)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if root.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", root.Span.End, lenContent)
	}
	return checkNode(root, sf.ID)
}

func checkNode(n *parser.Node, file source.FileID) error {
	if n.Span.File != file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", n.Kind, n.Span.File, file)
	}
	if n.Span.End < n.Span.Start {
		return fmt.Errorf("%s span is inverted: %v", n.Kind, n.Span)
	}

	var prev *parser.Node
	for _, c := range n.Children {
		if c == nil {
			return fmt.Errorf("nil child in %s at %v", n.Kind, n.Span)
		}
		// child inside parent
		if c.Span.Start < n.Span.Start || c.Span.End > n.Span.End {
			return fmt.Errorf("%s span %v is outside %s span %v", c.Kind, c.Span, n.Kind, n.Span)
		}
		if err := checkNode(c, file); err != nil {
			return err
		}
		if c.Kind == parser.NodeComment {
			continue
		}
		if prev != nil && c.Span.Start < prev.Span.End {
			return fmt.Errorf("%s span %v overlaps previous %s span %v", c.Kind, c.Span, prev.Kind, prev.Span)
		}
		prev = c
	}
	return nil
}
