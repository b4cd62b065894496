// Package format lays out and prints RON documents.
//
// Назначение: решение single-line / multi-line по ширине и вывод канонического текста.
// Не делает: файлового IO, обхода директорий, кэширования (см. internal/driver).
// Зависимости: internal/ast, internal/parser, internal/lexer, internal/source.
package format
