package driver

import (
	"ronfmt/internal/ast"
	"ronfmt/internal/diag"
	"ronfmt/internal/lexer"
	"ronfmt/internal/parser"
	"ronfmt/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	// Root is the parse tree; Doc is nil when Bag has errors.
	Root *parser.Node
	Doc  *ast.Document
	Bag  *diag.Bag
}

// Parse loads a file and builds its parse tree and, when it is error free,
// its document model. The error return is for I/O and structural errors;
// syntax errors are in Bag.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fs.Get(fileID), maxDiagnostics)
}

// ParseBytes is Parse for in-memory content such as stdin.
func ParseBytes(name string, data []byte, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, data)
	return parseLoaded(fs, fs.Get(fileID), maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, file *source.File, maxDiagnostics int) (*ParseResult, error) {
	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := parser.ParseFile(lx, parser.Options{Reporter: reporter})

	result := &ParseResult{
		FileSet: fs,
		File:    file,
		Root:    res.Root,
		Bag:     bag,
	}
	if res.Errors > 0 || bag.HasErrors() {
		bag.Sort()
		bag.Dedup()
		return result, nil
	}
	doc, err := ast.Build(res.Root)
	if err != nil {
		return result, err
	}
	result.Doc = doc
	return result, nil
}
