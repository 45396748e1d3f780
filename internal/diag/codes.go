package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005
	LexUnterminatedRegExp       Code = 1006
	LexBadEscape                Code = 1007

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedParen      Code = 2002
	SynUnclosedBrace      Code = 2003
	SynUnclosedBracket    Code = 2004
	SynExpectSemicolon    Code = 2005
	SynExpectIdentifier   Code = 2006
	SynExpectExpression   Code = 2007
	SynExpectBinding      Code = 2008
	SynBadAssignTarget    Code = 2009
	SynLexicalInStatement Code = 2010
	SynMissingInitializer Code = 2011
	SynIllegalReturn      Code = 2012
	SynIllegalBreak       Code = 2013
	SynBadForHead         Code = 2014
	SynDuplicateDefault   Code = 2015
	SynNewlineNotAllowed  Code = 2016
	SynExpectModuleSource Code = 2017

	// import/export
	SynExportNotSupported Code = 2110
	SynBadImportSpecifier Code = 2111

	// Транспиляция
	TrnInfo       Code = 3000
	TrnBadWrapper Code = 3001
	TrnParse      Code = 3002

	// Ввод-вывод
	IOLoadFileError Code = 4001

	// Наблюдаемость
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	LexUnterminatedTemplate:     "Unterminated template literal",
	LexUnterminatedRegExp:       "Unterminated regular expression",
	LexBadEscape:                "Invalid escape sequence",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedBracket:          "Unclosed bracket",
	SynExpectSemicolon:          "Missing semicolon",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectExpression:         "Expected expression",
	SynExpectBinding:            "Expected binding pattern",
	SynBadAssignTarget:          "Invalid assignment target",
	SynLexicalInStatement:       "Lexical declaration in single-statement context",
	SynMissingInitializer:       "Missing initializer",
	SynIllegalReturn:            "Illegal return statement",
	SynIllegalBreak:             "Illegal break or continue",
	SynBadForHead:               "Malformed for statement head",
	SynDuplicateDefault:         "Duplicate default clause",
	SynNewlineNotAllowed:        "Line break not allowed here",
	SynExpectModuleSource:       "Expected module specifier",
	SynExportNotSupported:       "Export declarations are not supported in cells",
	SynBadImportSpecifier:       "Malformed import specifier",
	TrnInfo:                     "Transpiler information",
	TrnBadWrapper:               "Wrapper did not parse to a single function expression",
	TrnParse:                    "Cell failed to parse",
	IOLoadFileError:             "I/O load file error",
	ObsTimings:                  "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TRN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
