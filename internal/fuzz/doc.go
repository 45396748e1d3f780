// Package fuzztests houses Go fuzz harnesses for the cell pipeline
// (source -> lexer -> parser -> transpile). They guard against panics and
// hangs on arbitrary input.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
