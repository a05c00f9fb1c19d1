package syntax

import (
	"fmt"
	"io"

	"github.com/sslang/sslc/internal/types"
)

// Parser is a recursive-descent parser with one token of lookahead.
//
// The first error stops the parse: the current token is forced to End so
// every loop unwinds, and the exported Parse methods return that error.
// There is no recovery.
type Parser struct {
	lexer *Lexer

	tok  Token // current token
	peek Token // next token

	lexErrs map[Pos]string // lexer diagnostics by token position
	first   *Error         // first error encountered
}

// NewParser creates a Parser for src and primes the current and next tokens.
func NewParser(filename string, src io.Reader) *Parser {
	p := &Parser{lexErrs: make(map[Pos]string)}
	p.lexer = NewLexer(filename, src, func(pos Pos, msg string) {
		if _, ok := p.lexErrs[pos]; !ok {
			p.lexErrs[pos] = msg
		}
	})
	p.tok = p.lexer.Next()
	p.peek = p.lexer.Next()
	return p
}

// Tok returns the current token.
func (p *Parser) Tok() Token {
	return p.tok
}

// Err returns the first error encountered, or nil if none.
func (p *Parser) Err() error {
	if p.first == nil {
		return nil
	}
	return p.first
}

// ----------------------------------------------------------------------------
// Entry points

// ParseProgram parses the whole input.
func (p *Parser) ParseProgram() (*Program, error) {
	prog := p.program()
	if p.first != nil {
		return nil, p.first
	}
	return prog, nil
}

// ParseDeclaration parses one variable declaration.
func (p *Parser) ParseDeclaration() (Decl, error) {
	d := p.declaration()
	if p.first != nil {
		return nil, p.first
	}
	return d, nil
}

// ParseStatement parses one statement.
func (p *Parser) ParseStatement() (Stmt, error) {
	s := p.stmt()
	if p.first != nil {
		return nil, p.first
	}
	return s, nil
}

// ParseExpression parses one expression.
func (p *Parser) ParseExpression() (Expr, error) {
	x := p.expression()
	if p.first != nil {
		return nil, p.first
	}
	return x, nil
}

// ParseFunction parses a function definition or a call.
func (p *Parser) ParseFunction() (Function, error) {
	var f Function
	switch p.tok.Kind {
	case _Function:
		f = p.funcDef()
	case _Call:
		f = p.callStmt()
	default:
		p.syntaxError("expected 'function' or 'call'")
	}
	if p.first != nil {
		return nil, p.first
	}
	return f, nil
}

// ParseBlock parses a brace-delimited block.
func (p *Parser) ParseBlock() (*BlockStmt, error) {
	b := p.blockStmt()
	if p.first != nil {
		return nil, p.first
	}
	return b, nil
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token. After an error it stays on End.
func (p *Parser) next() {
	if p.first != nil {
		return
	}
	p.tok = p.peek
	p.peek = p.lexer.Next()
}

// got reports whether the current token is of kind k.
// If so, it consumes the token.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// want consumes a token of kind k, or stops the parse with msg.
func (p *Parser) want(k Kind, msg string) {
	if !p.got(k) {
		p.syntaxError(msg)
	}
}

// name consumes an identifier and returns its text.
func (p *Parser) name(msg string) string {
	if p.tok.Kind != _Identifier {
		p.syntaxError(msg)
		return "_"
	}
	lit := p.tok.Lit
	p.next()
	return lit
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError stops the parse at the current token.
// An Unexpected token is reported as the lexical error that produced it.
func (p *Parser) syntaxError(msg string) {
	if p.tok.Kind == _Unexpected {
		lmsg, ok := p.lexErrs[p.tok.Pos]
		if !ok {
			lmsg = fmt.Sprintf("unexpected %q", p.tok.Lit)
		}
		p.errorAt(LexicalError, p.tok.Pos, lmsg)
		return
	}
	p.errorAt(SyntaxError, p.tok.Pos, msg+", found "+describe(p.tok))
}

func (p *Parser) errorAt(kind ErrorKind, pos Pos, msg string) {
	if p.first != nil {
		return
	}
	p.first = &Error{Kind: kind, Pos: pos, Msg: msg}
	p.tok = Token{Kind: _End, Pos: pos}
	p.peek = p.tok
}

func describe(t Token) string {
	switch t.Kind {
	case _End:
		return "end of input"
	case _Identifier:
		return "identifier " + t.Lit
	case _Number, _Float, _String:
		return "literal " + t.Lit
	}
	return "'" + t.Kind.String() + "'"
}

// ----------------------------------------------------------------------------
// Program

// program parses: (Declaration | Statement | Function | Expression)* End
func (p *Parser) program() *Program {
	prog := &Program{}
	prog.pos = p.tok.Pos

	for p.tok.Kind != _End {
		switch k := p.tok.Kind; {
		case k.IsTypeKeyword():
			prog.Decls = append(prog.Decls, p.declaration())

		case k == _Function:
			prog.Funcs = append(prog.Funcs, p.funcDef())

		case k == _Call:
			prog.Funcs = append(prog.Funcs, p.callStmt())

		case isStmtStart(k):
			prog.Stmts = append(prog.Stmts, p.stmt())

		default:
			x := p.expression()
			if p.got(_Semi) {
				s := &ExprStmt{X: x}
				s.pos = x.Pos()
				prog.Stmts = append(prog.Stmts, s)
			} else {
				prog.Exprs = append(prog.Exprs, x)
			}
		}
	}

	return prog
}

func isStmtStart(k Kind) bool {
	switch k {
	case _Loop, _While, _For, _Log, _Print, _If, _Ret, _Lbrace:
		return true
	}
	return false
}

// ----------------------------------------------------------------------------
// Declarations

// declaration parses: Type Name ['=' Expression] ';'
// or the array form:  Type '[' [Number] ']' Name ['=' '{' Expression,* '}'] ';'
func (p *Parser) declaration() Decl {
	pos := p.tok.Pos
	kind := p.tok.Kind
	if !kind.IsTypeKeyword() {
		p.syntaxError("expected declaration type int, flt, str or bool")
		return p.badDecl(pos)
	}
	elem := types.FromKeyword(p.tok.Lit)
	p.next()

	if p.tok.Kind == _Lbrack {
		return p.arrayDecl(pos, elem)
	}

	sd := scalarDecl{Name: p.name("expected variable name after " + kind.String())}
	sd.pos = pos
	if p.got(_Assign) {
		sd.Value = p.expression()
	}
	p.want(_Semi, "expected ';' after declaration of "+sd.Name)

	switch kind {
	case _Int:
		return &IntDecl{sd}
	case _Flt:
		return &FloatDecl{sd}
	case _Str:
		return &StringDecl{sd}
	default:
		return &BoolDecl{sd}
	}
}

func (p *Parser) arrayDecl(pos Pos, elem types.Type) *ArrayDecl {
	d := &ArrayDecl{Elem: elem}
	d.pos = pos

	p.want(_Lbrack, "expected '['")
	if p.tok.Kind == _Number {
		d.Size = p.tok.Lit
		p.next()
	}
	p.want(_Rbrack, "expected ']' after array size")

	d.Name = p.name("expected array name")
	if p.got(_Assign) {
		p.want(_Lbrace, "expected '{' to start array initializer")
		if p.tok.Kind != _Rbrace {
			d.Elems = p.exprList()
		}
		p.want(_Rbrace, "expected '}' to end array initializer")
	}
	p.want(_Semi, "expected ';' after declaration of "+d.Name)

	return d
}

func (p *Parser) badDecl(pos Pos) Decl {
	d := &IntDecl{scalarDecl{Name: "_"}}
	d.pos = pos
	return d
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch k := p.tok.Kind; {
	case k.IsTypeKeyword():
		return p.declaration()

	case k == _Loop:
		return p.loopStmt()

	case k == _While:
		return p.whileStmt()

	case k == _For:
		return p.forStmt()

	case k == _Log, k == _Print:
		return p.printStmt()

	case k == _If:
		return p.ifStmt()

	case k == _Ret:
		return p.returnStmt()

	case k == _Lbrace:
		return p.blockStmt()

	case k == _Call:
		return p.callStmt()

	case k == _Function:
		p.syntaxError("function definitions are only allowed at top level")
		return p.badStmt()

	case k == _Else:
		p.syntaxError("'else' without 'if'")
		return p.badStmt()

	default:
		s := &ExprStmt{}
		s.pos = p.tok.Pos
		s.X = p.expression()
		p.want(_Semi, "expected ';' after expression")
		return s
	}
}

func (p *Parser) badStmt() Stmt {
	s := &BlockStmt{}
	s.pos = p.tok.Pos
	return s
}

// blockStmt parses: '{' Statement* '}'
func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.tok.Pos

	p.want(_Lbrace, "expected '{'")

	for p.tok.Kind != _Rbrace && p.tok.Kind != _End {
		b.Stmts = append(b.Stmts, p.stmt())
	}

	b.Rbrace = p.tok.Pos
	p.want(_Rbrace, "expected '}' to close block")

	return b
}

// loopStmt parses: 'loop' ('range' '(' Expression ',' Expression ')' | '(' Expression ')') Block
func (p *Parser) loopStmt() Stmt {
	pos := p.tok.Pos
	p.want(_Loop, "expected 'loop'")

	switch p.tok.Kind {
	case _Range:
		return p.rangeClause(pos)
	case _Lparen:
		return p.condClause(pos)
	}
	p.syntaxError("expected 'range' or '(' after 'loop'")
	return p.badStmt()
}

// whileStmt parses: 'while' '(' Expression ')' Block
func (p *Parser) whileStmt() Stmt {
	pos := p.tok.Pos
	p.want(_While, "expected 'while'")
	return p.condClause(pos)
}

// forStmt parses: 'for' 'range' '(' Expression ',' Expression ')' Block
func (p *Parser) forStmt() Stmt {
	pos := p.tok.Pos
	p.want(_For, "expected 'for'")
	if p.tok.Kind != _Range {
		p.syntaxError("expected 'range' after 'for'")
		return p.badStmt()
	}
	return p.rangeClause(pos)
}

func (p *Parser) condClause(pos Pos) *WhileStmt {
	s := &WhileStmt{}
	s.pos = pos

	p.want(_Lparen, "expected '(' before loop condition")
	s.Cond = p.expression()
	p.want(_Rparen, "expected ')' after loop condition")
	s.Body = p.blockStmt()

	return s
}

func (p *Parser) rangeClause(pos Pos) *ForStmt {
	s := &ForStmt{}
	s.pos = pos

	p.want(_Range, "expected 'range'")
	p.want(_Lparen, "expected '(' after 'range'")
	s.Start = p.expression()
	p.want(_Comma, "expected ',' between range bounds")
	s.End = p.expression()
	p.want(_Rparen, "expected ')' after range bounds")
	s.Body = p.blockStmt()

	return s
}

// printStmt parses: ('log' | 'print') '(' Expression ')' ';'
func (p *Parser) printStmt() Stmt {
	s := &PrintStmt{}
	s.pos = p.tok.Pos
	kw := p.tok.Kind
	p.next()

	p.want(_Lparen, "expected '(' after '"+kw.String()+"'")
	s.X = p.expression()
	if p.tok.Kind == _Comma {
		p.syntaxError("'" + kw.String() + "' takes exactly one expression")
		return s
	}
	p.want(_Rparen, "expected ')' after '"+kw.String()+"' argument")
	p.want(_Semi, "expected ';' after '"+kw.String()+"' statement")

	return s
}

// ifStmt parses: 'if' '(' Expression ')' Block ['else' Block]
func (p *Parser) ifStmt() Stmt {
	s := &IfStmt{}
	s.pos = p.tok.Pos

	p.want(_If, "expected 'if'")
	p.want(_Lparen, "expected '(' after 'if'")
	s.Cond = p.expression()
	p.want(_Rparen, "expected ')' after if condition")
	s.Then = p.blockStmt()

	if p.got(_Else) {
		s.Else = p.blockStmt()
	}

	return s
}

// returnStmt parses: 'ret' '(' Expression ')' ';'
func (p *Parser) returnStmt() Stmt {
	s := &ReturnStmt{}
	s.pos = p.tok.Pos

	p.want(_Ret, "expected 'ret'")
	p.want(_Lparen, "expected '(' after 'ret'")
	s.Result = p.expression()
	if p.tok.Kind == _Comma {
		p.syntaxError("'ret' takes exactly one expression")
		return s
	}
	p.want(_Rparen, "expected ')' after return value")
	p.want(_Semi, "expected ';' after 'ret' statement")

	return s
}

// ----------------------------------------------------------------------------
// Functions

// funcDef parses: 'function' Name '(' (Type ':' Name),* ')' '->' Type Block
func (p *Parser) funcDef() *FuncDef {
	f := &FuncDef{}
	f.pos = p.tok.Pos

	p.want(_Function, "expected 'function'")
	f.Name = p.name("expected function name")

	p.want(_Lparen, "expected '(' after function name")
	if p.tok.Kind != _Rparen {
		for {
			f.Params = append(f.Params, p.param())
			if !p.got(_Comma) {
				break
			}
		}
	}
	p.want(_Rparen, "expected ')' after parameters")

	p.want(_Arrow, "expected '->' before result type")
	f.Result = p.typeName("expected result type")
	f.Body = p.blockStmt()

	return f
}

func (p *Parser) param() *Param {
	par := &Param{Pos: p.tok.Pos}
	par.Type = p.typeName("expected parameter type")
	p.want(_Colon, "expected ':' between parameter type and name")
	par.Name = p.name("expected parameter name")
	return par
}

// typeName consumes a type keyword and returns the type it names.
func (p *Parser) typeName(msg string) types.Type {
	if !p.tok.Kind.IsTypeKeyword() {
		p.syntaxError(msg)
		return types.Invalid
	}
	t := types.FromKeyword(p.tok.Lit)
	p.next()
	return t
}

// callStmt parses: 'call' Name '(' Expression,* ')' ';'
func (p *Parser) callStmt() *CallStmt {
	c := &CallStmt{}
	c.pos = p.tok.Pos

	p.want(_Call, "expected 'call'")
	c.Name = p.name("expected function name after 'call'")
	c.Args = p.args()
	p.want(_Semi, "expected ';' after call")

	return c
}

// args parses: '(' Expression,* ')'
func (p *Parser) args() []Expr {
	var list []Expr
	p.want(_Lparen, "expected '(' before arguments")
	if p.tok.Kind != _Rparen {
		list = p.exprList()
	}
	p.want(_Rparen, "expected ')' after arguments")
	return list
}

func (p *Parser) exprList() []Expr {
	var list []Expr
	for {
		list = append(list, p.expression())
		if !p.got(_Comma) {
			return list
		}
	}
}

// ----------------------------------------------------------------------------
// Expressions
//
// There is no precedence climbing: a binary expression is an operand
// followed by an operator and the rest of the expression, so operators
// group to the right.

// expression parses: Assignment | Binary | Unary | Primary
func (p *Parser) expression() Expr {
	if p.tok.Kind == _Identifier && p.peek.Kind == _Assign {
		return p.assignment()
	}
	return p.binary()
}

// assignment parses: Name '=' Expression
func (p *Parser) assignment() Expr {
	a := &AssignExpr{}
	a.pos = p.tok.Pos
	a.Target = p.name("expected assignment target")
	p.want(_Assign, "expected '='")
	a.Value = p.expression()
	return a
}

// binary parses operator chains by precedence climbing.
// Operators of equal precedence group to the left.
func (p *Parser) binary() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression whose operators bind tighter than prec.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.operand()

	for {
		oprec := p.tok.Kind.Precedence()
		if oprec <= prec {
			return x
		}

		b := &BinaryExpr{Op: p.tok.Kind, X: x}
		b.pos = x.Pos()
		p.next()
		b.Y = p.binaryExpr(oprec)
		x = b
	}
}

// operand parses: ('-' | 'not') Operand | Name '.' Name Args | Primary
func (p *Parser) operand() Expr {
	pos := p.tok.Pos

	switch p.tok.Kind {
	case _Sub, _Not:
		u := &UnaryExpr{Op: p.tok.Kind}
		u.pos = pos
		p.next()
		u.X = p.operand()
		return u

	case _Identifier:
		if p.peek.Kind == _Dot {
			return p.methodCall()
		}
		return p.primary(NameLit)

	case _Number:
		return p.primary(IntLit)
	case _Float:
		return p.primary(FloatLit)
	case _String:
		return p.primary(StringLit)
	case _True, _False:
		return p.primary(BoolLit)
	}

	if msg, ok := forbidden(p.tok.Kind); ok {
		p.errorAt(SyntaxError, pos, msg)
	} else {
		p.syntaxError("expected expression")
	}
	return p.badExpr(pos)
}

func (p *Parser) primary(kind LitKind) *PrimaryExpr {
	x := &PrimaryExpr{Value: p.tok.Lit, Kind: kind}
	x.pos = p.tok.Pos
	p.next()
	return x
}

// methodCall parses: Name '.' Name '(' Expression,* ')'
func (p *Parser) methodCall() *MethodCall {
	m := &MethodCall{}
	m.pos = p.tok.Pos
	m.Receiver = p.name("expected receiver")
	p.want(_Dot, "expected '.'")
	m.Method = p.name("expected method name after '.'")
	m.Args = p.args()
	return m
}

func (p *Parser) badExpr(pos Pos) Expr {
	x := &PrimaryExpr{Value: "_"}
	x.pos = pos
	return x
}

// forbidden explains why a keyword or bracket cannot start an operand.
func forbidden(k Kind) (string, bool) {
	var family string
	switch k {
	case _Int, _Flt, _Str, _Bool:
		family = "declaration keyword"
	case _Loop, _Range, _For, _While:
		family = "loop keyword"
	case _Function, _Call, _Ret, _Arrow:
		family = "function keyword"
	case _If, _Else, _Log, _Print:
		family = "statement keyword"
	case _Lparen, _Rparen, _Lbrack, _Rbrack, _Lbrace, _Rbrace:
		family = "bracket"
	default:
		return "", false
	}
	return fmt.Sprintf("%s '%s' cannot appear in an expression", family, k), true
}
