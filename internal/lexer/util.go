package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

const utf8RuneSelf = 0x80

func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
}

func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isSignedNumber checks "+1", "-.5", "-inf", "-NaN" at the cursor.
func (lx *Lexer) isSignedNumber() bool {
	b1 := lx.cursor.PeekAt(1)
	if isDec(b1) || (b1 == '.' && isDec(lx.cursor.PeekAt(2))) {
		return true
	}
	return lx.hasWordAt(1, "inf") || lx.hasWordAt(1, "NaN")
}

// hasWordAt reports whether word starts at Off+n and is not followed by an identifier byte.
func (lx *Lexer) hasWordAt(n uint32, word string) bool {
	for i := range len(word) {
		if lx.cursor.PeekAt(n+uint32(i)) != word[i] { // #nosec G115 -- short literal
			return false
		}
	}
	return !isIdentContinueByte(lx.cursor.PeekAt(n + uint32(len(word)))) // #nosec G115
}

// isRawStart recognizes r"...", r#"..."# and r#ident.
func (lx *Lexer) isRawStart() bool {
	b1 := lx.cursor.PeekAt(1)
	return b1 == '"' || b1 == '#'
}
