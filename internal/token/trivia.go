package token

import "ronfmt/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "TriviaKind(?)"
}

// Trivia is a run of whitespace or a single comment.
// SameLine is set for comments not separated by a newline from the previous
// significant token.
type Trivia struct {
	Kind     TriviaKind
	Span     source.Span
	Text     string
	SameLine bool
}

func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBlockComment
}
