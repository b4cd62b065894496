package format

const (
	DefaultIndentWidth  = 4
	DefaultMaxLineWidth = 40
)

type Options struct {
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int
	// MaxLineWidth is the soft limit used by the layout decision.
	// Zero is a valid limit: every non-empty collection expands.
	MaxLineWidth int
	// MaxDiagnostics caps the diagnostics kept on a parse error (0 = unlimited).
	MaxDiagnostics int
}

// DefaultOptions returns indent 4, width 40.
func DefaultOptions() Options {
	return Options{IndentWidth: DefaultIndentWidth, MaxLineWidth: DefaultMaxLineWidth}
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	if o.MaxLineWidth < 0 {
		o.MaxLineWidth = DefaultMaxLineWidth
	}
	return o
}
