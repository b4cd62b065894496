package ast

// Comment is one comment, kept verbatim with its delimiters.
type Comment struct {
	Text  string
	Block bool // /* ... */ rather than // ...
}

// Item is a value together with the comments attached to it.
type Item struct {
	Value Value
	Pre   []Comment // own-line comments before the value
	Post  []Comment // own-line comments after the value, before the next sibling or closer
	EOL   *Comment  // same-line comment after the value's separator
}

// HasTrivia reports whether any comment is attached to the item itself.
func (it Item) HasTrivia() bool {
	return len(it.Pre) > 0 || len(it.Post) > 0 || it.EOL != nil
}

// hasComments is true when the item or anything under it carries a comment.
func (it Item) hasComments() bool {
	return it.HasTrivia() || (it.Value != nil && it.Value.HasComments())
}

// Document is a whole formatted unit.
// It is immutable once built; the stored widths depend on that.
type Document struct {
	// Extensions are deduplicated and sorted.
	Extensions []string
	Items      []Item
	// Dangling holds the comments of a document without any value.
	Dangling []Comment
}

// Value is one of *Atom, *List, *Map, *Tuple, *Record.
type Value interface {
	// MinWidth is the width of the most compact single-line rendering,
	// comments excluded.
	MinWidth() int
	// HasComments reports whether a comment sits anywhere inside the value.
	HasComments() bool
	isValue()
}

// Atom is a scalar rendered verbatim: bool, char, string, number, unit or a
// bare identifier.
type Atom struct {
	Text  string
	width int
}

type List struct {
	Elems    []Item
	Dangling []Comment
	width    int
	comments bool
}

// MapEntry keys never carry comments; they are moved to Val.Pre.
type MapEntry struct {
	Key Value
	Val Item
}

type Map struct {
	Entries  []MapEntry
	Dangling []Comment
	width    int
	comments bool
}

// Tuple with an empty Name is a plain tuple.
type Tuple struct {
	Name     string
	Elems    []Item
	Dangling []Comment
	width    int
	comments bool
}

type Field struct {
	Key string
	Val Item
}

// Record with an empty Name is an anonymous record.
type Record struct {
	Name     string
	Fields   []Field
	Dangling []Comment
	width    int
	comments bool
}

func (*Atom) isValue()   {}
func (*List) isValue()   {}
func (*Map) isValue()    {}
func (*Tuple) isValue()  {}
func (*Record) isValue() {}

func (a *Atom) MinWidth() int   { return a.width }
func (l *List) MinWidth() int   { return l.width }
func (m *Map) MinWidth() int    { return m.width }
func (t *Tuple) MinWidth() int  { return t.width }
func (r *Record) MinWidth() int { return r.width }

func (*Atom) HasComments() bool     { return false }
func (l *List) HasComments() bool   { return l.comments }
func (m *Map) HasComments() bool    { return m.comments }
func (t *Tuple) HasComments() bool  { return t.comments }
func (r *Record) HasComments() bool { return r.comments }

// Kind names the variant of v, for dumps and errors.
func Kind(v Value) string {
	switch v.(type) {
	case *Atom:
		return "Atom"
	case *List:
		return "List"
	case *Map:
		return "Map"
	case *Tuple:
		return "Tuple"
	case *Record:
		return "Record"
	default:
		return "Unknown"
	}
}

// Len is the number of direct children; 0 for atoms.
func Len(v Value) int {
	switch v := v.(type) {
	case *List:
		return len(v.Elems)
	case *Map:
		return len(v.Entries)
	case *Tuple:
		return len(v.Elems)
	case *Record:
		return len(v.Fields)
	}
	return 0
}

// Dangling returns the comments of an empty collection.
func Dangling(v Value) []Comment {
	switch v := v.(type) {
	case *List:
		return v.Dangling
	case *Map:
		return v.Dangling
	case *Tuple:
		return v.Dangling
	case *Record:
		return v.Dangling
	}
	return nil
}
