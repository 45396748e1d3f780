package parser

import "nbcell/internal/token"

// binaryPrec returns the binding power of a binary operator, or 0.
// noIn disables `in` inside for-statement heads.
func binaryPrec(k token.Kind, noIn bool) int {
	switch k {
	case token.QuestionQues, token.OrOr:
		return 1
	case token.AndAnd:
		return 2
	case token.Pipe:
		return 3
	case token.Caret:
		return 4
	case token.Amp:
		return 5
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return 6
	case token.Lt, token.Gt, token.LtEq, token.GtEq, token.KwInstanceof:
		return 7
	case token.KwIn:
		if noIn {
			return 0
		}
		return 7
	case token.Shl, token.Shr, token.UShr:
		return 8
	case token.Plus, token.Minus:
		return 9
	case token.Star, token.Slash, token.Percent:
		return 10
	case token.StarStar:
		return 11
	}
	return 0
}

func isLogical(k token.Kind) bool {
	return k == token.AndAnd || k == token.OrOr || k == token.QuestionQues
}
