
// Package fuzztests houses Go fuzz harnesses that exercise the lint381
// pipeline (source -> lexer -> matcher -> rules). Its goal is to guard the
// token stream invariants and catch panics on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые прогоняют байты через
// FileSet, лексер, матчер и правила, и проверять результат через testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/match,
// internal/rules, internal/testkit.

package fuzztests
