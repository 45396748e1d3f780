// Package lexer splits JavaScript source into tokens.
//
// The lexer works on the character slice of a source.File, so every span it
// produces is measured in characters. Comments and whitespace are collected as
// trivia; a line terminator inside them sets Token.NewlineBefore on the next
// significant token. Whether '/' starts a regular expression is decided from
// the previous significant token. Template substitutions are tracked with a
// brace stack so that the '}' closing "${" resumes the template.
package lexer
