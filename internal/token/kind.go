package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token ('$' and '_' are identifier bytes).
	Ident

	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwNull represents the 'null' literal keyword.
	KwNull // null
	// KwUndefined represents the 'undefined' literal keyword.
	KwUndefined // undefined

	// NumberLit represents a numeric literal.
	NumberLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// TemplateLit represents a whole backtick template literal, including
	// any `${...}` substitutions; the parser splits it afterwards.
	TemplateLit

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Comma represents ','.
	Comma // ,
	// Semicolon represents ';'.
	Semicolon // ;
	// Colon represents ':'.
	Colon // :
	// Dot represents '.'.
	Dot // .
	// DotDotDot represents the spread operator '...'.
	DotDotDot // ...
	// QuestionDot represents the optional chaining operator '?.'.
	QuestionDot // ?.
	// Question represents '?'.
	Question // ?
	// QuestionQuestion represents the nullish coalescing operator '??'.
	QuestionQuestion // ??
	// Assign represents '='.
	Assign // =
	// Arrow represents '=>'.
	Arrow // =>
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// EqEq represents '=='.
	EqEq // ==
	// EqEqEq represents '==='.
	EqEqEq // ===
	// BangEq represents '!='.
	BangEq // !=
	// BangEqEq represents '!=='.
	BangEqEq // !==
	// Lt represents '<'.
	Lt // <
	// LtEq represents '<='.
	LtEq // <=
	// Gt represents '>'.
	Gt // >
	// GtEq represents '>='.
	GtEq // >=
	// AndAnd represents '&&'.
	AndAnd // &&
	// OrOr represents '||'.
	OrOr // ||
	// Bang represents '!'.
	Bang // !
	// Amp represents '&'.
	Amp // &
	// Pipe represents '|'.
	Pipe // |
	// PlusAssign represents '+='.
	PlusAssign // +=
	// MinusAssign represents '-='.
	MinusAssign // -=
	// OrOrAssign represents '||='.
	OrOrAssign // ||=
	// QuestionQuestionAssign represents '??='.
	QuestionQuestionAssign // ??=
)

var kindNames = map[Kind]string{
	Invalid:                "Invalid",
	EOF:                    "EOF",
	Ident:                  "Ident",
	KwConst:                "const",
	KwLet:                  "let",
	KwVar:                  "var",
	KwFunction:             "function",
	KwReturn:               "return",
	KwNew:                  "new",
	KwExport:               "export",
	KwDefault:              "default",
	KwImport:               "import",
	KwFrom:                 "from",
	KwAsync:                "async",
	KwAwait:                "await",
	KwIf:                   "if",
	KwElse:                 "else",
	KwFor:                  "for",
	KwWhile:                "while",
	KwTypeof:               "typeof",
	KwThis:                 "this",
	KwTrue:                 "true",
	KwFalse:                "false",
	KwNull:                 "null",
	KwUndefined:            "undefined",
	NumberLit:              "NumberLit",
	StringLit:              "StringLit",
	TemplateLit:            "TemplateLit",
	LParen:                 "(",
	RParen:                 ")",
	LBrace:                 "{",
	RBrace:                 "}",
	LBracket:               "[",
	RBracket:               "]",
	Comma:                  ",",
	Semicolon:              ";",
	Colon:                  ":",
	Dot:                    ".",
	DotDotDot:              "...",
	QuestionDot:            "?.",
	Question:               "?",
	QuestionQuestion:       "??",
	Assign:                 "=",
	Arrow:                  "=>",
	Plus:                   "+",
	Minus:                  "-",
	Star:                   "*",
	Slash:                  "/",
	Percent:                "%",
	EqEq:                   "==",
	EqEqEq:                 "===",
	BangEq:                 "!=",
	BangEqEq:               "!==",
	Lt:                     "<",
	LtEq:                   "<=",
	Gt:                     ">",
	GtEq:                   ">=",
	AndAnd:                 "&&",
	OrOr:                   "||",
	Bang:                   "!",
	Amp:                    "&",
	Pipe:                   "|",
	PlusAssign:             "+=",
	MinusAssign:            "-=",
	OrOrAssign:             "||=",
	QuestionQuestionAssign: "??=",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
