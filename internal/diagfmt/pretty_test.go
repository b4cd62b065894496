package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"ronfmt/internal/diag"
	"ronfmt/internal/source"
)

func singleDiag(t *testing.T, fs *source.FileSet, id source.FileID, start, end uint32, code diag.Code, msg string) *diag.Bag {
	t.Helper()
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, code, source.Span{File: id, Start: start, End: end}, msg))
	return bag
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	content := []byte("(name: \"unterminated)\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.ron", content)
	bag := singleDiag(t, fs, fileID, 7, 21, diag.LexUnterminatedString, "Unterminated string literal")

	tests := []struct {
		name     string
		mode     PathMode
		contains string
		excludes string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.ron:1:8:", ""},
		{"Relative path", PathModeRelative, "src/test.ron:1:8:", "/home/"},
		{"Basename only", PathModeBasename, "test.ron:1:8:", "src/"},
		{"Auto inside base", PathModeAuto, "src/test.ron:1:8:", "/home/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if tt.excludes != "" && strings.Contains(output, tt.excludes) {
				t.Errorf("expected output without %q, got:\n%s", tt.excludes, output)
			}
			if !strings.Contains(output, "ERROR LEX1002: Unterminated string literal") {
				t.Errorf("missing header, got:\n%s", output)
			}
		})
	}
}

func TestPathModeAutoOutsideBase(t *testing.T) {
	fs := source.NewFileSetWithBase("/srv/app")
	id := fs.AddVirtual("/etc/conf.ron", []byte("x\n"))
	f := fs.Get(id)
	if got := formatPath(f, fs, PathModeAuto); got != "/etc/conf.ron" {
		t.Fatalf("auto path = %q", got)
	}
	if got := formatPath(nil, fs, PathModeAuto); got != "<unknown>" {
		t.Fatalf("nil file path = %q", got)
	}
}

func TestPrettySnippet(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ron", []byte("(a: 1 b: 2)\n"))
	bag := singleDiag(t, fs, id, 6, 7, diag.SynExpectComma, "expected ',' or ')'")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "test.ron:1:7: ERROR SYN2005: expected ',' or ')'\n" +
		"   1 | (a: 1 b: 2)\n" +
		"     |       ^\n"
	if got := buf.String(); got != want {
		t.Fatalf("output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestPrettyUnderlineAndContext(t *testing.T) {
	fs := source.NewFileSet()
	src := "[\n\t\"日本\", oops\n]\n"
	id := fs.AddVirtual("ctx.ron", []byte(src))
	start := uint32(strings.Index(src, "oops"))
	bag := singleDiag(t, fs, id, start, start+4, diag.SynUnexpectedToken, "unexpected token")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("want header, two context lines and a caret line, got:\n%s", buf.String())
	}
	if lines[1] != "   1 | [" {
		t.Errorf("context line = %q", lines[1])
	}
	// the tab is kept, each CJK rune takes two columns
	wantCaret := "     | \t" + strings.Repeat(" ", 8) + "^~~~"
	if lines[3] != wantCaret {
		t.Errorf("caret line = %q, want %q", lines[3], wantCaret)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("notes.ron", []byte("[1, 2\n"))
	bag := diag.NewBag(4)
	d := diag.New(diag.SevError, diag.SynUnclosedDelimiter, source.Span{File: id, Start: 6, End: 6}, "unclosed '['")
	d.Notes = append(d.Notes, diag.Note{Span: source.Span{File: id, Start: 0, End: 1}, Msg: "opened here"})
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(buf.String(), "note: notes.ron:1:1: opened here\n") {
		t.Fatalf("note missing:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Fatalf("notes printed while disabled:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.ron", []byte("?\n"))
	bag := singleDiag(t, fs, id, 0, 1, diag.LexUnknownChar, "unknown character")

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colored output has no escapes: %q", colored.String())
	}
}
