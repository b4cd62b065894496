package format

import (
	"errors"
	"fmt"

	"ronfmt/internal/ast"
	"ronfmt/internal/diag"
	"ronfmt/internal/lexer"
	"ronfmt/internal/parser"
	"ronfmt/internal/source"
)

// ParseError carries the diagnostics of a document the parser rejected.
type ParseError struct {
	Files *source.FileSet
	Bag   *diag.Bag
	Path  string
}

func (e *ParseError) Error() string {
	items := e.Bag.Items()
	if len(items) == 0 {
		return fmt.Sprintf("%s: parse failed", e.Path)
	}
	first := items[0]
	pos, _ := e.Files.Resolve(first.Primary)
	msg := fmt.Sprintf("%s:%d:%d: %s %s", e.Path, pos.Line, pos.Col, first.Code.ID(), first.Message)
	if n := len(items) - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}

// Source formats one document: source -> lexer -> parser -> tree -> text.
// It returns *ParseError for rejected input and *ast.StructuralError for a
// parse tree the builder does not understand.
func Source(name string, src []byte, opt Options) ([]byte, error) {
	doc, err := Parse(name, src, opt)
	if err != nil {
		return nil, err
	}
	return Document(doc, opt, len(src)), nil
}

// Parse builds the document model of src.
func Parse(name string, src []byte, opt Options) (*ast.Document, error) {
	fs := source.NewFileSetWithBase("")
	fileID := fs.AddVirtual(name, src)
	return ParseFile(fs, fs.Get(fileID), opt)
}

// ParseFile is Parse for a file already in fs.
func ParseFile(fs *source.FileSet, sf *source.File, opt Options) (*ast.Document, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	bag := diag.NewBag(opt.MaxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(sf, lexer.Options{Reporter: reporter})
	// the bag limit must not stop the parser from counting errors
	res := parser.ParseFile(lx, parser.Options{Reporter: reporter})
	if res.Errors > 0 || bag.HasErrors() {
		bag.Sort()
		bag.Dedup()
		return nil, &ParseError{Files: fs, Bag: bag, Path: sf.Path}
	}
	return ast.Build(res.Root)
}

// Document renders doc into a fresh buffer.
func Document(doc *ast.Document, opt Options, sizeHint int) []byte {
	w := NewWriter(opt, sizeHint)
	Emit(w, doc, opt)
	return w.Bytes()
}
