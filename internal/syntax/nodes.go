package syntax

import "github.com/sslang/sslc/internal/types"

// ----------------------------------------------------------------------------
// Interfaces
//
// Nodes fall into four families: declarations, expressions, statements and
// functions, plus the Program root. The set is closed: the marker methods
// restrict implementations to this package.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos               // position of the first token of the node
	String() string         // parenthesized debug form
	Accept(v Visitor) error // double dispatch to v.VisitXxx
	aNode()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node

	// Type derives the static type of the expression against syms.
	// It does not modify syms.
	Type(syms *types.SymbolTable) (types.Type, error)

	// Name is the literal or identifier text of a primary expression,
	// "binary" or "unary" for operations, and empty otherwise.
	Name() string

	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for variable declarations.
// Declarations are statements so they may appear in blocks.
type Decl interface {
	Stmt
	Ident() string        // declared variable name
	DeclType() types.Type // declared type
	Init() []Expr         // initializer expressions, in order
	aDecl()
}

// Function is the interface for function definitions and calls.
type Function interface {
	Node
	aFunc()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type decl struct{ stmt }

func (*decl) aDecl() {}

// scalarDecl is embedded in the four scalar declarations.
type scalarDecl struct {
	decl
	Name  string
	Value Expr // initializer (nil if none)
}

func (d *scalarDecl) Ident() string { return d.Name }

func (d *scalarDecl) Init() []Expr {
	if d.Value == nil {
		return nil
	}
	return []Expr{d.Value}
}

// ----------------------------------------------------------------------------
// Program

// Program is the root of a compilation unit.
// The four lists keep source order within each family.
type Program struct {
	node
	Decls []Decl
	Stmts []Stmt
	Funcs []Function
	Exprs []Expr // top-level expressions not terminated by ';'
}

// ----------------------------------------------------------------------------
// Declarations

// IntDecl represents: int Name [= Value];
type IntDecl struct{ scalarDecl }

// FloatDecl represents: flt Name [= Value];
type FloatDecl struct{ scalarDecl }

// StringDecl represents: str Name [= Value];
type StringDecl struct{ scalarDecl }

// BoolDecl represents: bool Name [= Value];
type BoolDecl struct{ scalarDecl }

func (*IntDecl) DeclType() types.Type    { return types.Int }
func (*FloatDecl) DeclType() types.Type  { return types.Float }
func (*StringDecl) DeclType() types.Type { return types.String }
func (*BoolDecl) DeclType() types.Type   { return types.Bool }

// ArrayDecl represents: Elem[Size] Name [= {Elems...}];
type ArrayDecl struct {
	decl
	Elem  types.Type // element type
	Size  string     // capacity literal ("" if unsized)
	Name  string
	Elems []Expr // initial elements
}

func (d *ArrayDecl) Ident() string        { return d.Name }
func (d *ArrayDecl) DeclType() types.Type { return types.ArrayOf(d.Elem) }
func (d *ArrayDecl) Init() []Expr         { return d.Elems }

// ----------------------------------------------------------------------------
// Expressions

// AssignExpr represents: Target = Value
type AssignExpr struct {
	expr
	Target string
	Value  Expr
}

// BinaryExpr represents: X Op Y
type BinaryExpr struct {
	expr
	Op Kind
	X  Expr
	Y  Expr
}

// UnaryExpr represents: Op X, where Op is - or not.
type UnaryExpr struct {
	expr
	Op Kind
	X  Expr
}

// PrimaryExpr is a literal or an identifier reference.
type PrimaryExpr struct {
	expr
	Value string  // lexeme (string literals keep their quotes)
	Kind  LitKind // classification made by the lexer
}

// MethodCall represents: Receiver.Method(Args...)
type MethodCall struct {
	expr
	Receiver string
	Method   string
	Args     []Expr
}

func (*AssignExpr) Name() string    { return "" }
func (*BinaryExpr) Name() string    { return "binary" }
func (*UnaryExpr) Name() string     { return "unary" }
func (x *PrimaryExpr) Name() string { return x.Value }
func (*MethodCall) Name() string    { return "" }

// ----------------------------------------------------------------------------
// Statements

// PrintStmt represents: log(X);
type PrintStmt struct {
	stmt
	X Expr
}

// WhileStmt represents: loop (Cond) Body
type WhileStmt struct {
	stmt
	Cond Expr
	Body *BlockStmt
}

// ForStmt represents: loop range(Start, End) Body
type ForStmt struct {
	stmt
	Start Expr
	End   Expr
	Body  *BlockStmt
}

// IfStmt represents: if (Cond) Then [else Else]
type IfStmt struct {
	stmt
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt // nil if absent
}

// ReturnStmt represents: ret(Result);
type ReturnStmt struct {
	stmt
	Result Expr
}

// BlockStmt represents: { Stmts... }
type BlockStmt struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos // position of closing brace
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// ----------------------------------------------------------------------------
// Functions

// Param is one parameter of a function definition: Type: Name
type Param struct {
	Pos  Pos
	Name string
	Type types.Type
}

// FuncDef represents: function Name(Params...) -> Result Body
type FuncDef struct {
	node
	Name   string
	Params []*Param
	Result types.Type
	Body   *BlockStmt
}

func (*FuncDef) aFunc() {}

// Signature returns the function's entry for a symbol table.
func (f *FuncDef) Signature() types.FunctionInfo {
	info := types.FunctionInfo{Name: f.Name, Result: f.Result}
	for _, p := range f.Params {
		info.Params = append(info.Params, types.Param{Name: p.Name, Type: p.Type})
	}
	return info
}

// CallStmt represents: call Name(Args...);
// A call is a function node at top level and a statement inside blocks.
type CallStmt struct {
	stmt
	Name string
	Args []Expr
}

func (*CallStmt) aFunc() {}
