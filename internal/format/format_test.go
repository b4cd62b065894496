package format

import (
	"errors"
	"strings"
	"testing"

	"ronfmt/internal/ast"
	"ronfmt/internal/diag"
)

func formatString(t *testing.T, src string, opt Options) string {
	t.Helper()
	out, err := Source("test.ron", []byte(src), opt)
	if err != nil {
		t.Fatalf("format %q: %v", src, err)
	}
	return string(out)
}

func opts(indent, width int) Options {
	return Options{IndentWidth: indent, MaxLineWidth: width}
}

func TestFormatScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opt  Options
		want string
	}{
		{
			name: "record fits",
			src:  "(a:1,b:2)",
			opt:  opts(4, 40),
			want: "(a: 1, b: 2)\n",
		},
		{
			name: "list expands at width 10",
			src:  "[1,2,3,4,5,6,7,8,9,10]",
			opt:  opts(4, 10),
			want: "[\n    1,\n    2,\n    3,\n    4,\n    5,\n    6,\n    7,\n    8,\n    9,\n    10,\n]\n",
		},
		{
			name: "comment forces expansion",
			src:  "(\n// note\na: 1, b: 2)",
			opt:  opts(4, 40),
			want: "(\n    // note\n    a: 1,\n    b: 2,\n)\n",
		},
		{
			name: "extension header canonical",
			src:  "#![enable(b)]\n#![enable(a)]\n#![enable(a)]\n1",
			opt:  opts(4, 40),
			want: "#![enable(a, b)]\n\n1\n",
		},
		{
			name: "named tuple and record",
			src:  "Point( x : 1 , y : 2 )",
			opt:  opts(4, 40),
			want: "Point(x: 1, y: 2)\n",
		},
		{
			name: "map",
			src:  `{ "a" : [ ] , "b" : ( ) }`,
			opt:  opts(4, 40),
			want: "{\"a\": [], \"b\": ()}\n",
		},
		{
			name: "nested expands outer only",
			src:  "Config(name: \"server\", ports: [80, 443], debug: false)",
			opt:  opts(4, 40),
			want: "Config(\n    name: \"server\",\n    ports: [80, 443],\n    debug: false,\n)\n",
		},
		{
			name: "two spaces indent",
			src:  "[[1, 2, 3], [4, 5, 6]]",
			opt:  opts(2, 12),
			want: "[\n  [1, 2, 3],\n  [4, 5, 6],\n]\n",
		},
		{
			name: "eol and post comments",
			src:  "[\n1, // one\n2\n// after\n]",
			opt:  opts(4, 40),
			want: "[\n    1, // one\n    2,\n    // after\n]\n",
		},
		{
			name: "dangling comment in empty list",
			src:  "[ /* todo */ ]",
			opt:  opts(4, 40),
			want: "[\n    /* todo */\n]\n",
		},
		{
			name: "top level comments",
			src:  "// head\n1 // tail\n",
			opt:  opts(4, 40),
			want: "// head\n1 // tail\n",
		},
		{
			name: "comments only",
			src:  "  // lonely   \n",
			opt:  opts(4, 40),
			want: "// lonely\n",
		},
		{
			name: "empty document",
			src:  "\n\n",
			opt:  opts(4, 40),
			want: "",
		},
		{
			name: "map value expands with key inline",
			src:  `{"key": [1000, 2000, 3000]}`,
			opt:  opts(4, 20),
			want: "{\n    \"key\": [\n        1000,\n        2000,\n        3000,\n    ],\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatString(t, tt.src, tt.opt)
			if got != tt.want {
				t.Fatalf("mismatch:\nwant %q\ngot  %q", tt.want, got)
			}
		})
	}
}

func TestFormatWidthTieBreak(t *testing.T) {
	// min_width of [1, 2, 3] is 9; depth 0 adds nothing
	src := "[1, 2, 3]"
	if got := formatString(t, src, opts(4, 9)); got != "[1, 2, 3]\n" {
		t.Errorf("width == max must stay single-line, got %q", got)
	}
	if got := formatString(t, src, opts(4, 8)); !strings.HasPrefix(got, "[\n") {
		t.Errorf("width == max+1 must expand, got %q", got)
	}
}

func TestFormatEmptyCollectionsAtZeroWidth(t *testing.T) {
	for _, src := range []string{"[]", "{}", "Unit()", "()"} {
		got := formatString(t, src, opts(4, 0))
		if got != src+"\n" {
			t.Errorf("%s at width 0: got %q", src, got)
		}
	}
	got := formatString(t, "[[]]", opts(4, 0))
	if got != "[\n    [],\n]\n" {
		t.Errorf("nested empty list at width 0: got %q", got)
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"(a: 1, b: [1, 2, 3], c: {\"k\": Some((x: 1.5, y: -2))})",
		"#![enable(implicit_some)]\n// cfg\nConfig(\n// the name\nname: \"x\", // inline\nitems: [ /* none */ ],\n)\n",
		"[1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25]",
		"{[1, /* key */ 2]: 3}",
		"// a\n/* b */\n",
		"Nested(Inner(Deep(Deeper(\"a long string that will not fit\", 12345))))",
	}
	for _, opt := range []Options{opts(4, 40), opts(2, 10), opts(4, 0), opts(8, 120)} {
		for _, src := range inputs {
			once := formatString(t, src, opt)
			twice := formatString(t, once, opt)
			if once != twice {
				t.Errorf("not idempotent (indent %d, width %d):\nonce  %q\ntwice %q",
					opt.IndentWidth, opt.MaxLineWidth, once, twice)
			}
			if ok, msg := CheckRoundTrip("rt.ron", []byte(src), opt); !ok {
				t.Errorf("round trip %q: %s", src, msg)
			}
		}
	}
}

func TestFormatNoTrailingWhitespace(t *testing.T) {
	src := "(\n  // c\n  a: [1, 2], /* x */\n  b: {1: 2},\n)"
	got := formatString(t, src, opts(4, 10))
	for i, line := range strings.Split(got, "\n") {
		if strings.TrimRight(line, " \t") != line {
			t.Errorf("line %d has trailing whitespace: %q", i+1, line)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("output must end with a newline: %q", got)
	}
}

func TestFormatParseError(t *testing.T) {
	_, err := Source("bad.ron", []byte("[1, 2"), DefaultOptions())
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Bag.Len() == 0 {
		t.Fatal("parse error without diagnostics")
	}
	if pe.Bag.Items()[0].Code != diag.SynUnclosedDelimiter {
		t.Errorf("unexpected first diagnostic: %v", pe.Bag.Items()[0].Code)
	}
	if !strings.HasPrefix(pe.Error(), "bad.ron:1:") {
		t.Errorf("error message should start with the position: %q", pe.Error())
	}
}

func TestFormatLexError(t *testing.T) {
	_, err := Source("bad.ron", []byte(`"unterminated`), DefaultOptions())
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestDocumentFromModel(t *testing.T) {
	doc := &ast.Document{
		Extensions: []string{"implicit_some"},
		Items: []ast.Item{{
			Value: ast.NewRecord("", []ast.Field{
				{Key: "a", Val: ast.Item{Value: ast.NewAtom("1")}},
			}, nil),
			Post: []ast.Comment{{Text: "// bye"}},
		}},
	}
	got := string(Document(doc, DefaultOptions(), 0))
	want := "#![enable(implicit_some)]\n\n(\n    a: 1,\n)\n// bye\n"
	if got != want {
		t.Fatalf("want %q\ngot  %q", want, got)
	}
}
