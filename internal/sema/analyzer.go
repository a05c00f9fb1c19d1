package sema

import (
	"strconv"

	"github.com/sslang/sslc/internal/syntax"
	"github.com/sslang/sslc/internal/types"
)

// Analyzer walks a Program through the syntax.Visitor protocol, declaring
// names in its SymbolTable and checking every construct. The first
// violation stops the walk and is returned from Analyze.
type Analyzer struct {
	conf Config
	info *Info
	syms *types.SymbolTable

	fn *syntax.FuncDef // enclosing function, nil at top level
}

var _ syntax.Visitor = (*Analyzer)(nil)

// New returns an Analyzer that records declarations in syms.
func New(syms *types.SymbolTable) *Analyzer {
	if syms == nil {
		syms = types.NewSymbolTable()
	}
	return &Analyzer{syms: syms}
}

// Symbols returns the table the analyzer declares into.
func (a *Analyzer) Symbols() *types.SymbolTable {
	return a.syms
}

// Analyze checks prog. Scopes opened during the walk are closed again
// even when an error stops it.
func (a *Analyzer) Analyze(prog *syntax.Program) error {
	return prog.Accept(a)
}

func (a *Analyzer) VisitProgram(prog *syntax.Program) error {
	for _, d := range prog.Decls {
		if err := d.Accept(a); err != nil {
			return err
		}
	}
	for _, f := range prog.Funcs {
		if err := f.Accept(a); err != nil {
			return err
		}
	}
	for _, s := range prog.Stmts {
		if err := s.Accept(a); err != nil {
			return err
		}
	}
	for _, x := range prog.Exprs {
		if err := x.Accept(a); err != nil {
			return err
		}
	}

	if a.conf.RequireMain {
		if _, ok := a.syms.FunctionInfo("main"); !ok {
			return syntax.Errorf(syntax.NameError, prog.Pos(), "function main is not defined")
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Declarations

func (a *Analyzer) VisitIntDecl(d *syntax.IntDecl) error       { return a.scalarDecl(d) }
func (a *Analyzer) VisitFloatDecl(d *syntax.FloatDecl) error   { return a.scalarDecl(d) }
func (a *Analyzer) VisitStringDecl(d *syntax.StringDecl) error { return a.scalarDecl(d) }
func (a *Analyzer) VisitBoolDecl(d *syntax.BoolDecl) error     { return a.scalarDecl(d) }

// scalarDecl checks the initializer, if any, and then declares the name,
// so a variable is not visible in its own initializer.
func (a *Analyzer) scalarDecl(d syntax.Decl) error {
	want := d.DeclType()
	for _, x := range d.Init() {
		got, err := a.typeOf(x)
		if err != nil {
			return err
		}
		if !types.Identical(want, got) {
			return syntax.Errorf(syntax.TypeError, x.Pos(), "cannot initialize %s variable %q with %s value", want, d.Ident(), got)
		}
	}
	return a.declare(d)
}

func (a *Analyzer) VisitArrayDecl(d *syntax.ArrayDecl) error {
	if d.Size != "" {
		size, err := strconv.Atoi(d.Size)
		if err != nil {
			return syntax.Errorf(syntax.TypeError, d.Pos(), "invalid array size %s", d.Size)
		}
		if len(d.Elems) > size {
			return syntax.Errorf(syntax.TypeError, d.Pos(), "too many initializers for %s[%d] %q: %d", d.Elem, size, d.Name, len(d.Elems))
		}
	}

	for i, x := range d.Elems {
		got, err := a.typeOf(x)
		if err != nil {
			return err
		}
		if !types.Identical(d.Elem, got) {
			return syntax.Errorf(syntax.TypeError, x.Pos(), "array element %d has type %s, want %s", i, got, d.Elem)
		}
	}
	return a.declare(d)
}

func (a *Analyzer) declare(d syntax.Decl) error {
	if !a.syms.AddVariable(d.Ident(), d.DeclType()) {
		return syntax.Errorf(syntax.NameError, d.Pos(), "%q redeclared in this scope", d.Ident())
	}
	return nil
}
