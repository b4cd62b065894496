// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Producers report through a Reporter; BagReporter collects into a Bag, which
// supports sorting and deduplication. Rendering lives in internal/diagfmt.
// Package diag performs no IO and no formatting beyond Code.String.
package diag
