package token

var words = map[string]Kind{
	"true":  BoolLit,
	"false": BoolLit,
	"inf":   FloatLit,
	"NaN":   FloatLit,
}

// LookupWord reports whether an identifier-shaped word is really a literal.
// Lookup is case sensitive.
func LookupWord(s string) (Kind, bool) {
	k, ok := words[s]
	return k, ok
}
