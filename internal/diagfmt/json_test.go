package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"ronfmt/internal/diag"
	"ronfmt/internal/source"
)

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.ron", []byte("[1, 2\n(x: )\n"))
	bag := diag.NewBag(10)
	d := diag.New(diag.SevError, diag.SynUnclosedDelimiter, source.Span{File: id, Start: 12, End: 12}, "unclosed '['")
	d.Notes = []diag.Note{{Span: source.Span{File: id, Start: 0, End: 1}, Msg: "opened here"}}
	bag.Add(d)
	bag.Add(diag.New(diag.SevError, diag.SynExpectValue, source.Span{File: id, Start: 10, End: 11}, "expected a value"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	first := out.Diagnostics[0]
	if first.Code != "SYN2002" || first.Severity != "ERROR" {
		t.Errorf("first = %+v", first)
	}
	if first.Location.File != "bad.ron" || first.Location.StartLine != 3 || first.Location.StartCol != 1 {
		t.Errorf("location = %+v", first.Location)
	}
	if len(first.Notes) != 1 || first.Notes[0].Location.StartLine != 1 {
		t.Errorf("notes = %+v", first.Notes)
	}
}

func TestJSONMaxAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.ron", []byte("??"))
	bag := diag.NewBag(10)
	for i := range uint32(2) {
		d := diag.New(diag.SevError, diag.LexUnknownChar, source.Span{File: id, Start: i, End: i + 1}, "unknown character")
		d.Notes = []diag.Note{{Span: d.Primary, Msg: "here"}}
		bag.Add(d)
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Fatalf("Max not applied: %d", out.Count)
	}
	if out.Diagnostics[0].Notes != nil {
		t.Fatalf("notes included without IncludeNotes")
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Fatalf("positions included without IncludePositions")
	}
}
