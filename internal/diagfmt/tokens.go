package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"ronfmt/internal/source"
	"ronfmt/internal/token"
)

type TriviaOutput struct {
	Kind     string `json:"kind"`
	Text     string `json:"text,omitempty"`
	SameLine bool   `json:"same_line,omitempty"`
}

type TokenOutput struct {
	Kind    string         `json:"kind"`
	Text    string         `json:"text,omitempty"`
	Span    source.Span    `json:"span"`
	Leading []TriviaOutput `json:"leading,omitempty"`
}

// describeTrivia renders whitespace by kind and comments by their text.
func describeTrivia(tv token.Trivia) string {
	if !tv.IsComment() {
		return tv.Kind.String()
	}
	if tv.SameLine {
		return fmt.Sprintf("%s %q same-line", tv.Kind, tv.Text)
	}
	return fmt.Sprintf("%s %q", tv.Kind, tv.Text)
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, tv := range tok.Leading {
			leading = append(leading, describeTrivia(tv))
		}

		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		if len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		for _, tv := range tok.Leading {
			tvOut := TriviaOutput{Kind: tv.Kind.String(), SameLine: tv.SameLine}
			if tv.IsComment() {
				tvOut.Text = tv.Text
			}
			out.Leading = append(out.Leading, tvOut)
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
