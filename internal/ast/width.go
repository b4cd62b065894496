package ast

// Per-child overhead of the compact form. A list of N elements needs
// N-1 ", " separators and one pair of delimiters, which is N*2 in total.
// A map additionally spends ": " on every entry.
const (
	seqOverhead   = 2
	entryOverhead = 4
)

// MinWidth returns the stored single-line width of v.
func MinWidth(v Value) int {
	if v == nil {
		return 0
	}
	return v.MinWidth()
}

func NewAtom(text string) *Atom {
	return &Atom{Text: text, width: len(text)}
}

func NewList(elems []Item, dangling []Comment) *List {
	w, c := seqWidth(elems)
	return &List{
		Elems:    elems,
		Dangling: dangling,
		width:    w,
		comments: c || len(dangling) > 0,
	}
}

func NewTuple(name string, elems []Item, dangling []Comment) *Tuple {
	w, c := seqWidth(elems)
	return &Tuple{
		Name:     name,
		Elems:    elems,
		Dangling: dangling,
		width:    w + len(name),
		comments: c || len(dangling) > 0,
	}
}

func NewMap(entries []MapEntry, dangling []Comment) *Map {
	w, c := 0, len(dangling) > 0
	for _, e := range entries {
		w += MinWidth(e.Key) + MinWidth(e.Val.Value) + entryOverhead
		c = c || e.Val.hasComments()
	}
	return &Map{Entries: entries, Dangling: dangling, width: w, comments: c}
}

func NewRecord(name string, fields []Field, dangling []Comment) *Record {
	w, c := len(name), len(dangling) > 0
	for _, f := range fields {
		w += len(f.Key) + MinWidth(f.Val.Value) + entryOverhead
		c = c || f.Val.hasComments()
	}
	return &Record{Name: name, Fields: fields, Dangling: dangling, width: w, comments: c}
}

func seqWidth(elems []Item) (width int, comments bool) {
	for _, it := range elems {
		width += MinWidth(it.Value) + seqOverhead
		comments = comments || it.hasComments()
	}
	return width, comments
}
