package sema

import (
	"github.com/sslang/sslc/internal/syntax"
	"github.com/sslang/sslc/internal/types"
)

// VisitFuncDef registers the function before checking its body, so it may
// call itself. Parameters and the top-level body statements share one scope.
func (a *Analyzer) VisitFuncDef(f *syntax.FuncDef) error {
	if !a.syms.AddFunction(f.Signature()) {
		return syntax.Errorf(syntax.NameError, f.Pos(), "function %q redeclared", f.Name)
	}

	a.syms.EnterScopeNamed("function " + f.Name)
	defer a.syms.LeaveScope()

	for _, p := range f.Params {
		if !a.syms.AddVariable(p.Name, p.Type) {
			return syntax.Errorf(syntax.NameError, p.Pos, "duplicate parameter %q in function %q", p.Name, f.Name)
		}
	}

	outer := a.fn
	a.fn = f
	defer func() { a.fn = outer }()

	if err := a.stmtList(f.Body.Stmts); err != nil {
		return err
	}

	if !blockMustReturn(f.Body.Stmts) {
		return syntax.Errorf(syntax.TypeError, f.Body.Rbrace, "missing return at end of function %q", f.Name)
	}
	return nil
}

func (a *Analyzer) VisitCallStmt(c *syntax.CallStmt) error {
	sig, ok := a.syms.FunctionInfo(c.Name)
	if !ok {
		return syntax.Errorf(syntax.NameError, c.Pos(), "call to undeclared function %q", c.Name)
	}
	if len(c.Args) != sig.Arity() {
		return syntax.Errorf(syntax.TypeError, c.Pos(), "function %q expects %d arguments, got %d", c.Name, sig.Arity(), len(c.Args))
	}

	for i, x := range c.Args {
		got, err := a.typeOf(x)
		if err != nil {
			return err
		}
		if want := sig.Params[i].Type; !types.Identical(want, got) {
			return syntax.Errorf(syntax.TypeError, x.Pos(), "cannot use %s value as %s argument %q to %s", got, want, sig.Params[i].Name, c.Name)
		}
	}
	return nil
}
