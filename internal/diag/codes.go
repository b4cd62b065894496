package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005

	// syntax
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynExpectValue        Code = 2003
	SynExpectColon        Code = 2004
	SynExpectComma        Code = 2005
	SynExpectIdentifier   Code = 2006
	SynBadExtension       Code = 2007
	SynUnknownAttribute   Code = 2008
	SynMixedFieldsAndElem Code = 2009
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	LexUnterminatedChar:         "Unterminated character literal",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynExpectValue:              "Expected value",
	SynExpectColon:              "Expected ':'",
	SynExpectComma:              "Expected ','",
	SynExpectIdentifier:         "Expected identifier",
	SynBadExtension:             "Malformed extension block",
	SynUnknownAttribute:         "Unknown inner attribute",
	SynMixedFieldsAndElem:       "Mixed named fields and positional elements",
}

// ID returns the stable short identifier, e.g. LEX1002.
func (c Code) ID() string {
	ic := int(c)
	switch {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
