// Package token defines lexical token kinds and trivia for RON documents.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Whitespace and comments never appear in the main token stream; they are
//     attached to the following token as Leading trivia.
//   - A leading sign is part of a numeric literal ("-1", "+2.5", "-inf").
//   - Bare words such as None or Some are identifiers; true/false are
//     BoolLit and inf/NaN are FloatLit, see LookupWord.
package token
