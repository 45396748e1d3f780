package token

var keywords = map[string]Kind{
	"break":      KwBreak,
	"case":       KwCase,
	"catch":      KwCatch,
	"class":      KwClass,
	"const":      KwConst,
	"continue":   KwContinue,
	"debugger":   KwDebugger,
	"default":    KwDefault,
	"delete":     KwDelete,
	"do":         KwDo,
	"else":       KwElse,
	"export":     KwExport,
	"extends":    KwExtends,
	"finally":    KwFinally,
	"for":        KwFor,
	"function":   KwFunction,
	"if":         KwIf,
	"import":     KwImport,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"new":        KwNew,
	"return":     KwReturn,
	"super":      KwSuper,
	"switch":     KwSwitch,
	"this":       KwThis,
	"throw":      KwThrow,
	"try":        KwTry,
	"typeof":     KwTypeof,
	"var":        KwVar,
	"void":       KwVoid,
	"while":      KwWhile,
	"with":       KwWith,
	"null":       KwNull,
	"true":       KwTrue,
	"false":      KwFalse,
}

var keywordText = func() map[Kind]string {
	out := make(map[Kind]string, len(keywords))
	for text, k := range keywords {
		out[k] = text
	}
	return out
}()

// LookupKeyword returns the reserved-word kind for ident, if any.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// punctuators, longest first within each leading character.
var punctuators = []struct {
	Text string
	Kind Kind
}{
	{">>>=", UShrAssign},
	{"...", Ellipsis},
	{"===", EqEqEq},
	{"!==", BangEqEq},
	{"**=", StarStarAssign},
	{"<<=", ShlAssign},
	{">>=", ShrAssign},
	{">>>", UShr},
	{"&&=", AndAndAssign},
	{"||=", OrOrAssign},
	{"??=", QuesQuesAssign},
	{"=>", Arrow},
	{"==", EqEq},
	{"!=", BangEq},
	{"<=", LtEq},
	{">=", GtEq},
	{"**", StarStar},
	{"++", PlusPlus},
	{"--", MinusMinus},
	{"<<", Shl},
	{">>", Shr},
	{"&&", AndAnd},
	{"||", OrOr},
	{"??", QuestionQues},
	{"?.", QuestionDot},
	{"+=", PlusAssign},
	{"-=", MinusAssign},
	{"*=", StarAssign},
	{"/=", SlashAssign},
	{"%=", PercentAssign},
	{"&=", AmpAssign},
	{"|=", PipeAssign},
	{"^=", CaretAssign},
	{"{", LBrace},
	{"}", RBrace},
	{"(", LParen},
	{")", RParen},
	{"[", LBracket},
	{"]", RBracket},
	{".", Dot},
	{";", Semicolon},
	{",", Comma},
	{"<", Lt},
	{">", Gt},
	{"+", Plus},
	{"-", Minus},
	{"*", Star},
	{"/", Slash},
	{"%", Percent},
	{"&", Amp},
	{"|", Pipe},
	{"^", Caret},
	{"!", Bang},
	{"~", Tilde},
	{"?", Question},
	{":", Colon},
	{"=", Assign},
}

var punctText = func() map[Kind]string {
	out := make(map[Kind]string, len(punctuators))
	for _, p := range punctuators {
		out[p.Kind] = p.Text
	}
	return out
}()

// Punctuators returns the operator table in matching order (longest first).
func Punctuators() []struct {
	Text string
	Kind Kind
} {
	return punctuators
}
