package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is a bare identifier: a struct or variant name, a field key,
	// an extension name or a unit value like None.
	Ident
	// IntLit is a signed or unsigned integer literal in any base.
	IntLit
	// FloatLit is a floating point literal, including inf and NaN.
	FloatLit
	// BoolLit is true or false.
	BoolLit
	// StringLit is a quoted, raw or byte string literal.
	StringLit
	// CharLit is a character or byte literal.
	CharLit

	Hash     // #
	Bang     // !
	Comma    // ,
	Colon    // :
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	BoolLit:   "BoolLit",
	StringLit: "StringLit",
	CharLit:   "CharLit",
	Hash:      "Hash",
	Bang:      "Bang",
	Comma:     "Comma",
	Colon:     "Colon",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Closer returns the closing delimiter for an opening one, or Invalid.
func (k Kind) Closer() Kind {
	switch k {
	case LParen:
		return RParen
	case LBrace:
		return RBrace
	case LBracket:
		return RBracket
	default:
		return Invalid
	}
}
