package sema

import (
	"github.com/sslang/sslc/internal/syntax"
	"github.com/sslang/sslc/internal/types"
)

// typeOf checks x and returns its static type.
func (a *Analyzer) typeOf(x syntax.Expr) (types.Type, error) {
	if err := x.Accept(a); err != nil {
		return types.Invalid, err
	}
	t, err := x.Type(a.syms)
	if err != nil {
		return types.Invalid, err
	}
	if a.info != nil && a.info.Types != nil {
		a.info.Types[x] = t
	}
	return t, nil
}

func (a *Analyzer) VisitPrimaryExpr(x *syntax.PrimaryExpr) error {
	_, err := x.Type(a.syms)
	return err
}

func (a *Analyzer) VisitBinaryExpr(x *syntax.BinaryExpr) error {
	if _, err := a.typeOf(x.X); err != nil {
		return err
	}
	if _, err := a.typeOf(x.Y); err != nil {
		return err
	}
	_, err := x.Type(a.syms)
	return err
}

func (a *Analyzer) VisitUnaryExpr(x *syntax.UnaryExpr) error {
	t, err := a.typeOf(x.X)
	if err != nil {
		return err
	}

	switch x.Op {
	case syntax.Sub:
		if !t.IsNumeric() {
			return syntax.Errorf(syntax.TypeError, x.Pos(), "operator - not defined on %s", t)
		}
	case syntax.Not:
		if !t.IsBoolean() {
			return syntax.Errorf(syntax.TypeError, x.Pos(), "operator not not defined on %s", t)
		}
	}
	return nil
}

func (a *Analyzer) VisitAssignExpr(x *syntax.AssignExpr) error {
	info, ok := a.syms.SymbolInfo(x.Target)
	if !ok {
		return syntax.Errorf(syntax.NameError, x.Pos(), "assignment to undeclared variable %q", x.Target)
	}

	got, err := a.typeOf(x.Value)
	if err != nil {
		return err
	}
	if !types.Identical(info.Type, got) {
		return syntax.Errorf(syntax.TypeError, x.Value.Pos(), "cannot assign %s value to %s variable %q", got, info.Type, x.Target)
	}
	return nil
}

// VisitMethodCall checks the array methods:
//
//	xs.add(v)     v must have the element type
//	xs.remove(i)  i must be an int index
func (a *Analyzer) VisitMethodCall(x *syntax.MethodCall) error {
	info, ok := a.syms.SymbolInfo(x.Receiver)
	if !ok {
		return syntax.Errorf(syntax.NameError, x.Pos(), "undeclared variable %q", x.Receiver)
	}
	if !info.Type.IsArray() {
		return syntax.Errorf(syntax.TypeError, x.Pos(), "%s.%s undefined (%q is %s, not an array)", x.Receiver, x.Method, x.Receiver, info.Type)
	}

	var want types.Type
	switch x.Method {
	case "add":
		want = info.Type.Elem()
	case "remove":
		want = types.Int
	default:
		return syntax.Errorf(syntax.NameError, x.Pos(), "unknown array method %q", x.Method)
	}

	if len(x.Args) != 1 {
		return syntax.Errorf(syntax.TypeError, x.Pos(), "%s expects 1 argument, got %d", x.Method, len(x.Args))
	}
	got, err := a.typeOf(x.Args[0])
	if err != nil {
		return err
	}
	if !types.Identical(want, got) {
		return syntax.Errorf(syntax.TypeError, x.Args[0].Pos(), "cannot use %s value as %s argument to %s.%s", got, want, x.Receiver, x.Method)
	}
	return nil
}
