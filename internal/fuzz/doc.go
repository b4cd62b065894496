// Package fuzztests houses Go fuzz harnesses that exercise the formatting
// pipeline (source -> lexer -> parser -> tree -> emitter). Its goal is to
// smoke test robustness: no panics, no hangs, and formatting stays a fixed
// point on every input it accepts.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер/парсер/форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/ast, internal/format, internal/testkit.

package fuzztests
