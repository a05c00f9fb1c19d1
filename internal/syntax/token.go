// Package syntax implements lexical and syntactic analysis for the SSL language.
package syntax

import "fmt"

// Kind is the kind of a lexical token.
type Kind uint

const (
	// Special tokens
	_End        Kind = iota // end of input
	_Unexpected             // unrecognized character or unterminated string

	// Literals
	_Identifier // foo, count_1
	_Number     // 42
	_Float      // 3.14
	_String     // "hello"

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Lbrace // {
	_Rbrace // }

	// Operators
	_Lss    // <
	_Gtr    // >
	_Leq    // <=
	_Geq    // >=
	_Assign // =
	_Add    // +
	_Sub    // -
	_Mul    // *
	_Div    // /
	_Rem    // %
	_Dot    // .
	_Comma  // ,
	_Colon  // :
	_Semi   // ;
	_Arrow  // ->

	// Keywords
	_Function
	_If
	_Else
	_Ret
	_Loop
	_Range
	_For
	_While
	_Int
	_Flt
	_Str
	_Bool
	_Log
	_Not
	_Equals
	_NotEquals
	_Or
	_And
	_Print
	_Call
	_True
	_False

	kindCount
)

var kindNames = [...]string{
	_End:        "End",
	_Unexpected: "Unexpected",

	_Identifier: "Identifier",
	_Number:     "Number",
	_Float:      "FloatLiteral",
	_String:     "StringLiteral",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lbrace: "{",
	_Rbrace: "}",

	_Lss:    "<",
	_Gtr:    ">",
	_Leq:    "<=",
	_Geq:    ">=",
	_Assign: "=",
	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",
	_Rem:    "%",
	_Dot:    ".",
	_Comma:  ",",
	_Colon:  ":",
	_Semi:   ";",
	_Arrow:  "->",

	_Function:  "function",
	_If:        "if",
	_Else:      "else",
	_Ret:       "ret",
	_Loop:      "loop",
	_Range:     "range",
	_For:       "for",
	_While:     "while",
	_Int:       "int",
	_Flt:       "flt",
	_Str:       "str",
	_Bool:      "bool",
	_Log:       "log",
	_Not:       "not",
	_Equals:    "equals",
	_NotEquals: "notEquals",
	_Or:        "or",
	_And:       "and",
	_Print:     "print",
	_Call:      "call",
	_True:      "true",
	_False:     "false",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= _Function && k <= _False
}

// IsTypeKeyword reports whether k names a declarable type (int, flt, str, bool).
func (k Kind) IsTypeKeyword() bool {
	return k >= _Int && k <= _Bool
}

// IsComparison reports whether k is a comparison operator. Comparisons yield bool.
func (k Kind) IsComparison() bool {
	switch k {
	case _Lss, _Gtr, _Leq, _Geq, _Equals, _NotEquals:
		return true
	}
	return false
}

// IsLogical reports whether k is the binary operator and/or.
func (k Kind) IsLogical() bool {
	return k == _And || k == _Or
}

// IsArithmetic reports whether k is an arithmetic operator.
func (k Kind) IsArithmetic() bool {
	switch k {
	case _Add, _Sub, _Mul, _Div, _Rem:
		return true
	}
	return false
}

// IsBinaryOp reports whether k may join two operands.
func (k Kind) IsBinaryOp() bool {
	return k.Precedence() > 0
}

// Precedence returns the binding strength of a binary operator,
// or 0 if k is not one. Higher binds tighter:
//
//	1: or
//	2: and
//	3: equals notEquals
//	4: < > <= >=
//	5: + -
//	6: * / %
func (k Kind) Precedence() int {
	switch k {
	case _Or:
		return 1
	case _And:
		return 2
	case _Equals, _NotEquals:
		return 3
	case _Lss, _Gtr, _Leq, _Geq:
		return 4
	case _Add, _Sub:
		return 5
	case _Mul, _Div, _Rem:
		return 6
	}
	return 0
}

// Exported kinds for consumers of the token stream and the AST.
const (
	End        Kind = _End
	Unexpected Kind = _Unexpected
	Identifier Kind = _Identifier
	Not        Kind = _Not // not
	Sub        Kind = _Sub // -
	Add        Kind = _Add // +
	Lss        Kind = _Lss // <
	And        Kind = _And // and
)

// keywords maps keyword spellings to their token kinds.
var keywords = map[string]Kind{
	"function":  _Function,
	"if":        _If,
	"else":      _Else,
	"ret":       _Ret,
	"loop":      _Loop,
	"range":     _Range,
	"for":       _For,
	"while":     _While,
	"int":       _Int,
	"flt":       _Flt,
	"str":       _Str,
	"bool":      _Bool,
	"log":       _Log,
	"not":       _Not,
	"equals":    _Equals,
	"notEquals": _NotEquals,
	"or":        _Or,
	"and":       _And,
	"print":     _Print,
	"call":      _Call,
	"true":      _True,
	"false":     _False,
}

// LookupKeyword returns the keyword kind for ident, or _Identifier.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return _Identifier
}

// Token is one lexical token.
type Token struct {
	Kind Kind
	Lit  string // raw lexeme; string literals keep their quotes and escapes
	Pos  Pos
}

func (t Token) String() string {
	if t.Kind == _End {
		return "End"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lit)
}

// LitKind classifies the value of a primary expression.
type LitKind uint8

const (
	NameLit   LitKind = iota // identifier reference
	IntLit                   // 42
	FloatLit                 // 3.14
	StringLit                // "hello"
	BoolLit                  // true, false
)

var litKindNames = [...]string{
	NameLit:   "name",
	IntLit:    "int",
	FloatLit:  "float",
	StringLit: "string",
	BoolLit:   "bool",
}

func (k LitKind) String() string {
	if k <= BoolLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}
