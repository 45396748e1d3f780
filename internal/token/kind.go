package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier or a contextual keyword.
	Ident
	// PrivateName represents a class private name such as #x.
	PrivateName

	kwBegin
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwContinue
	KwDebugger
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwExport
	KwExtends
	KwFinally
	KwFor
	KwFunction
	KwIf
	KwImport
	KwIn
	KwInstanceof
	KwNew
	KwReturn
	KwSuper
	KwSwitch
	KwThis
	KwThrow
	KwTry
	KwTypeof
	KwVar
	KwVoid
	KwWhile
	KwWith
	KwNull
	KwTrue
	KwFalse
	kwEnd

	// NumberLit represents a numeric literal.
	NumberLit
	// BigIntLit represents a numeric literal with the n suffix.
	BigIntLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// RegExpLit represents a regular expression literal including flags.
	RegExpLit
	// TemplateNoSub is a whole template literal without substitutions.
	TemplateNoSub // `...`
	// TemplateHead opens a template literal: `...${
	TemplateHead
	// TemplateMiddle continues a template literal: }...${
	TemplateMiddle
	// TemplateTail closes a template literal: }...`
	TemplateTail

	LBrace       // {
	RBrace       // }
	LParen       // (
	RParen       // )
	LBracket     // [
	RBracket     // ]
	Dot          // .
	Ellipsis     // ...
	Semicolon    // ;
	Comma        // ,
	Lt           // <
	Gt           // >
	LtEq         // <=
	GtEq         // >=
	EqEq         // ==
	BangEq       // !=
	EqEqEq       // ===
	BangEqEq     // !==
	Plus         // +
	Minus        // -
	Star         // *
	Slash        // /
	Percent      // %
	StarStar     // **
	PlusPlus     // ++
	MinusMinus   // --
	Shl          // <<
	Shr          // >>
	UShr         // >>>
	Amp          // &
	Pipe         // |
	Caret        // ^
	Bang         // !
	Tilde        // ~
	AndAnd       // &&
	OrOr         // ||
	QuestionQues // ??
	Question     // ?
	QuestionDot  // ?.
	Colon        // :
	Assign       // =
	PlusAssign   // +=
	MinusAssign  // -=
	StarAssign   // *=
	SlashAssign  // /=
	PercentAssign
	StarStarAssign
	ShlAssign
	ShrAssign
	UShrAssign
	AmpAssign
	PipeAssign
	CaretAssign
	AndAndAssign
	OrOrAssign
	QuesQuesAssign
	Arrow // =>
)

var kindNames = map[Kind]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Ident:          "Ident",
	PrivateName:    "PrivateName",
	NumberLit:      "NumberLit",
	BigIntLit:      "BigIntLit",
	StringLit:      "StringLit",
	RegExpLit:      "RegExpLit",
	TemplateNoSub:  "TemplateNoSub",
	TemplateHead:   "TemplateHead",
	TemplateMiddle: "TemplateMiddle",
	TemplateTail:   "TemplateTail",
}

// String returns a stable name; punctuators and keywords spell themselves.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k.IsKeyword() {
		return "Kw(" + keywordText[k] + ")"
	}
	if text, ok := punctText[k]; ok {
		return "'" + text + "'"
	}
	return "Unknown"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k > kwBegin && k < kwEnd
}

// IsAssign reports whether k is '=' or a compound assignment operator.
func (k Kind) IsAssign() bool {
	return k >= Assign && k <= QuesQuesAssign
}
