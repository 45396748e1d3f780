// Package token defines lexical token kinds and trivia for JavaScript cells.
// Invariants:
//   - Token.Span counts characters (runes) of the lexed text, not bytes.
//   - Token.Text is exactly the characters covered by Span.
//   - Contextual words (let, async, await, yield, of, get, set, static, as, from)
//     are lexed as Ident; the parser decides what they mean.
//   - Comments and whitespace never reach the parser; they are kept as leading
//     Trivia and summarised by Token.NewlineBefore.
package token
