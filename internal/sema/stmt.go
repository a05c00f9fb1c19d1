package sema

import (
	"github.com/sslang/sslc/internal/syntax"
	"github.com/sslang/sslc/internal/types"
)

func (a *Analyzer) VisitBlockStmt(b *syntax.BlockStmt) error {
	a.syms.EnterScope()
	defer a.syms.LeaveScope()

	return a.stmtList(b.Stmts)
}

func (a *Analyzer) stmtList(list []syntax.Stmt) error {
	for _, s := range list {
		if err := s.Accept(a); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) VisitExprStmt(s *syntax.ExprStmt) error {
	_, err := a.typeOf(s.X)
	return err
}

func (a *Analyzer) VisitPrintStmt(s *syntax.PrintStmt) error {
	if a.fn == nil {
		return syntax.Errorf(syntax.TypeError, s.Pos(), "log statement outside function body")
	}
	t, err := a.typeOf(s.X)
	if err != nil {
		return err
	}
	if !t.IsPrintable() {
		return syntax.Errorf(syntax.TypeError, s.X.Pos(), "cannot log value of type %s", t)
	}
	return nil
}

func (a *Analyzer) VisitReturnStmt(s *syntax.ReturnStmt) error {
	if a.fn == nil {
		return syntax.Errorf(syntax.TypeError, s.Pos(), "ret statement outside function body")
	}
	t, err := a.typeOf(s.Result)
	if err != nil {
		return err
	}
	if !t.IsPrintable() {
		return syntax.Errorf(syntax.TypeError, s.Result.Pos(), "cannot return value of type %s", t)
	}
	if !types.Identical(t, a.fn.Result) {
		return syntax.Errorf(syntax.TypeError, s.Result.Pos(), "cannot return %s value from function %q returning %s", t, a.fn.Name, a.fn.Result)
	}
	return nil
}

func (a *Analyzer) VisitIfStmt(s *syntax.IfStmt) error {
	if err := a.cond(s.Cond, "if"); err != nil {
		return err
	}
	if err := s.Then.Accept(a); err != nil {
		return err
	}
	if s.Else != nil {
		return s.Else.Accept(a)
	}
	return nil
}

func (a *Analyzer) VisitWhileStmt(s *syntax.WhileStmt) error {
	if err := a.cond(s.Cond, "loop"); err != nil {
		return err
	}
	return s.Body.Accept(a)
}

func (a *Analyzer) VisitForStmt(s *syntax.ForStmt) error {
	for _, x := range []syntax.Expr{s.Start, s.End} {
		t, err := a.typeOf(x)
		if err != nil {
			return err
		}
		if t != types.Int {
			return syntax.Errorf(syntax.TypeError, x.Pos(), "range bound must be int, got %s", t)
		}
	}
	return s.Body.Accept(a)
}

func (a *Analyzer) cond(x syntax.Expr, what string) error {
	t, err := a.typeOf(x)
	if err != nil {
		return err
	}
	if !t.IsBoolean() {
		return syntax.Errorf(syntax.TypeError, x.Pos(), "non-boolean condition in %s statement (type %s)", what, t)
	}
	return nil
}

// blockMustReturn reports whether all control-flow paths in this statement list return.
// This is conservative: loops are treated as potentially non-terminating paths.
func blockMustReturn(stmts []syntax.Stmt) bool {
	for _, s := range stmts {
		if stmtMustReturn(s) {
			return true
		}
	}
	return false
}

func stmtMustReturn(s syntax.Stmt) bool {
	switch s := s.(type) {
	case *syntax.ReturnStmt:
		return true
	case *syntax.BlockStmt:
		return blockMustReturn(s.Stmts)
	case *syntax.IfStmt:
		if s.Else == nil {
			return false
		}
		return blockMustReturn(s.Then.Stmts) && blockMustReturn(s.Else.Stmts)
	}
	return false
}
