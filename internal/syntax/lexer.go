package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Lexer turns source text into a sequence of tokens.
// Call Next until it returns a token of kind End; End repeats forever after that.
type Lexer struct {
	source

	litBuf strings.Builder
}

// NewLexer creates a Lexer for src.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
// Lexing never stops on an error: the offending text comes back as an Unexpected token.
func NewLexer(filename string, src io.Reader, errh func(pos Pos, msg string)) *Lexer {
	return &Lexer{source: *newSource(filename, src, errh)}
}

// Next scans and returns the next token.
func (l *Lexer) Next() Token {
redo:
	for isWhitespace(l.ch) {
		l.nextch()
	}

	pos := l.pos()

	switch {
	case l.ch < 0:
		return Token{Kind: _End, Pos: pos}

	case isLetter(l.ch):
		return l.ident(pos)

	case isDigit(l.ch):
		return l.number(pos)

	case l.ch == '"':
		return l.stdString(pos)

	case l.ch == '/' && l.peek() == '/':
		l.skipLineComment()
		goto redo
	}

	if k, lit, ok := l.operator(); ok {
		return Token{Kind: k, Lit: lit, Pos: pos}
	}

	ch := byte(l.ch)
	l.nextch()
	switch {
	case isPrint(rune(ch)):
		l.errorAt(pos, fmt.Sprintf("unrecognized character %q", ch))
	case ch >= 0x80:
		l.errorAt(pos, fmt.Sprintf("unrecognized non-ASCII byte %#x", ch))
	default:
		l.errorAt(pos, fmt.Sprintf("unrecognized non-printable character %U", ch))
	}
	return Token{Kind: _Unexpected, Lit: string([]byte{ch}), Pos: pos}
}

// Tokens scans the rest of the input and returns every token, End included.
func (l *Lexer) Tokens() []Token {
	var toks []Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Kind == _End {
			return toks
		}
	}
}

func (l *Lexer) startLit() {
	l.litBuf.Reset()
	l.litBuf.WriteByte(byte(l.ch))
	l.nextch()
}

func (l *Lexer) continueLit() {
	l.litBuf.WriteByte(byte(l.ch))
	l.nextch()
}

func (l *Lexer) ident(pos Pos) Token {
	l.startLit()
	for isLetter(l.ch) || isDigit(l.ch) {
		l.continueLit()
	}
	lit := l.litBuf.String()
	return Token{Kind: LookupKeyword(lit), Lit: lit, Pos: pos}
}

// number scans digits, optionally followed by a fraction.
// A '.' that is not followed by a digit is not part of the number.
func (l *Lexer) number(pos Pos) Token {
	l.startLit()
	for isDigit(l.ch) {
		l.continueLit()
	}

	kind := _Number
	if l.ch == '.' && isDigit(l.peek()) {
		kind = _Float
		l.continueLit()
		for isDigit(l.ch) {
			l.continueLit()
		}
	}
	return Token{Kind: kind, Lit: l.litBuf.String(), Pos: pos}
}

// stdString scans a double-quoted string. The lexeme keeps the quotes and
// escapes verbatim; a backslash escapes whatever character follows it.
func (l *Lexer) stdString(pos Pos) Token {
	l.startLit() // opening "

	for {
		switch {
		case l.ch == '"':
			l.continueLit()
			return Token{Kind: _String, Lit: l.litBuf.String(), Pos: pos}

		case l.ch == '\\':
			l.continueLit()
			if l.ch == '\n' || l.ch < 0 {
				continue
			}
			l.continueLit()

		case l.ch == '\n' || l.ch < 0:
			l.errorAt(pos, "string not terminated")
			return Token{Kind: _Unexpected, Lit: l.litBuf.String(), Pos: pos}

		default:
			l.continueLit()
		}
	}
}

// operator scans an operator or delimiter. It reports false, without
// consuming anything, if the current character starts neither.
func (l *Lexer) operator() (Kind, string, bool) {
	var k Kind
	switch l.ch {
	case '(':
		k = _Lparen
	case ')':
		k = _Rparen
	case '[':
		k = _Lbrack
	case ']':
		k = _Rbrack
	case '{':
		k = _Lbrace
	case '}':
		k = _Rbrace
	case '<':
		k = _Lss
		if l.peek() == '=' {
			k = _Leq
		}
	case '>':
		k = _Gtr
		if l.peek() == '=' {
			k = _Geq
		}
	case '-':
		k = _Sub
		if l.peek() == '>' {
			k = _Arrow
		}
	case '=':
		k = _Assign
	case '+':
		k = _Add
	case '*':
		k = _Mul
	case '/':
		k = _Div
	case '%':
		k = _Rem
	case '.':
		k = _Dot
	case ',':
		k = _Comma
	case ':':
		k = _Colon
	case ';':
		k = _Semi
	default:
		return 0, "", false
	}

	lit := kindNames[k]
	for range lit {
		l.nextch()
	}
	return k, lit, true
}

// skipLineComment skips from // to the end of the line.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch >= 0 {
		l.nextch()
	}
}

// Unquote returns the value of a string literal lexeme: the surrounding
// quotes are removed and each backslash escape is replaced by the escaped
// character, with \n, \t and \r mapped to their control characters.
func Unquote(lit string) string {
	lit = strings.TrimPrefix(lit, `"`)
	lit = strings.TrimSuffix(lit, `"`)
	if !strings.Contains(lit, `\`) {
		return lit
	}

	var b strings.Builder
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		if c != '\\' || i+1 == len(lit) {
			b.WriteByte(c)
			continue
		}
		i++
		switch lit[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(lit[i])
		}
	}
	return b.String()
}
