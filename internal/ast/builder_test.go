package ast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ronfmt/internal/ast"
	"ronfmt/internal/parser"
)

func TestBuildValues(t *testing.T) {
	doc := build(t, `Config(name: "x", tags: ["a", "b"], pos: (1, 2), opt: Some(3), m: {1: None}, u: ())`)
	require.Len(t, doc.Items, 1)
	rec, ok := doc.Items[0].Value.(*ast.Record)
	require.True(t, ok)
	assert.Equal(t, "Config", rec.Name)
	require.Len(t, rec.Fields, 6)

	keys := make([]string, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"name", "tags", "pos", "opt", "m", "u"}, keys)

	assert.IsType(t, &ast.Atom{}, rec.Fields[0].Val.Value)
	assert.IsType(t, &ast.List{}, rec.Fields[1].Val.Value)
	pos := rec.Fields[2].Val.Value.(*ast.Tuple)
	assert.Empty(t, pos.Name)
	assert.Len(t, pos.Elems, 2)
	opt := rec.Fields[3].Val.Value.(*ast.Tuple)
	assert.Equal(t, "Some", opt.Name)
	m := rec.Fields[4].Val.Value.(*ast.Map)
	require.Len(t, m.Entries, 1)
	assert.Equal(t, "1", m.Entries[0].Key.(*ast.Atom).Text)
	assert.Equal(t, "None", m.Entries[0].Val.Value.(*ast.Atom).Text)
	assert.Equal(t, "()", rec.Fields[5].Val.Value.(*ast.Atom).Text)
}

func TestBuildMapKeepsInsertionOrder(t *testing.T) {
	doc := build(t, `{"z": 1, "a": 2, "m": 3}`)
	m := doc.Items[0].Value.(*ast.Map)
	var keys []string
	for _, e := range m.Entries {
		keys = append(keys, e.Key.(*ast.Atom).Text)
	}
	assert.Equal(t, []string{`"z"`, `"a"`, `"m"`}, keys)
}

func TestBuildExtensionsCanonical(t *testing.T) {
	doc := build(t, "#![enable(b)]\n#![enable(a)]\n#![enable(a, unwrap_newtypes,)]\n1")
	assert.Equal(t, []string{"a", "b", "unwrap_newtypes"}, doc.Extensions)
	require.Len(t, doc.Items, 1)

	none := build(t, "1")
	assert.Empty(t, none.Extensions)
}

func TestBuildExtensionsCaseSensitive(t *testing.T) {
	doc := build(t, "#![enable(A, a)]\n1")
	assert.Equal(t, []string{"A", "a"}, doc.Extensions)
}

func TestBuildAttachesComments(t *testing.T) {
	input := `(
    // note
    a: 1, // tail
    b: /* inner */ 2,
    // last
)
`
	doc := build(t, input)
	rec := doc.Items[0].Value.(*ast.Record)
	require.Len(t, rec.Fields, 2)

	a := rec.Fields[0].Val
	assert.Equal(t, []string{"// note"}, texts(a.Pre))
	require.NotNil(t, a.EOL)
	assert.Equal(t, "// tail", a.EOL.Text)
	assert.Empty(t, a.Post)

	b := rec.Fields[1].Val
	assert.Equal(t, []string{"/* inner */"}, texts(b.Pre))
	assert.True(t, b.Pre[0].Block)
	assert.Equal(t, []string{"// last"}, texts(b.Post))
	assert.Nil(t, b.EOL)
	assert.Empty(t, rec.Dangling)
}

func TestBuildCommentRunGoesToNextValue(t *testing.T) {
	doc := build(t, "[\n    1,\n    // one\n    // two\n    2,\n]")
	list := doc.Items[0].Value.(*ast.List)
	assert.Empty(t, list.Elems[0].Post)
	assert.Equal(t, []string{"// one", "// two"}, texts(list.Elems[1].Pre))
}

func TestBuildOnlyOneEOL(t *testing.T) {
	doc := build(t, "[\n    1, /* a */ /* b */\n    2,\n]")
	list := doc.Items[0].Value.(*ast.List)
	require.NotNil(t, list.Elems[0].EOL)
	assert.Equal(t, "/* a */", list.Elems[0].EOL.Text)
	assert.Equal(t, []string{"/* b */"}, texts(list.Elems[1].Pre))
}

func TestBuildDanglingComments(t *testing.T) {
	doc := build(t, "[\n    // nothing yet\n]")
	list := doc.Items[0].Value.(*ast.List)
	assert.Empty(t, list.Elems)
	assert.Equal(t, []string{"// nothing yet"}, texts(list.Dangling))
	assert.True(t, list.HasComments())

	empty := build(t, "// just a comment\n")
	assert.Empty(t, empty.Items)
	assert.Equal(t, []string{"// just a comment"}, texts(empty.Dangling))
}

func TestBuildHoistsKeyComments(t *testing.T) {
	doc := build(t, "{\n    [1, /* k */ 2]: /* v */ 3,\n}")
	m := doc.Items[0].Value.(*ast.Map)
	require.Len(t, m.Entries, 1)
	e := m.Entries[0]
	assert.False(t, e.Key.HasComments())
	assert.Equal(t, []string{"/* k */", "/* v */"}, texts(e.Val.Pre))
}

func TestBuildTopLevelComments(t *testing.T) {
	doc := build(t, "// head\n#![enable(x)]\n// body\n1 // end\n")
	require.Len(t, doc.Items, 1)
	it := doc.Items[0]
	assert.Equal(t, []string{"// head", "// body"}, texts(it.Pre))
	require.NotNil(t, it.EOL)
	assert.Equal(t, "// end", it.EOL.Text)
}

func TestBuildStructuralError(t *testing.T) {
	root := &parser.Node{
		Kind:     parser.NodeFile,
		Children: []*parser.Node{{Kind: parser.NodeField}},
	}
	_, err := ast.Build(root)
	var se *ast.StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, parser.NodeField, se.Kind)
	assert.Contains(t, se.Error(), "Field")

	_, err = ast.Build(&parser.Node{Kind: parser.NodeList})
	require.Error(t, err)
	_, err = ast.Build(nil)
	require.Error(t, err)
}
