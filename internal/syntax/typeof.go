package syntax

import "github.com/sslang/sslc/internal/types"

// Static types of expressions. None of these methods modify the table.

func (x *PrimaryExpr) Type(syms *types.SymbolTable) (types.Type, error) {
	switch x.Kind {
	case IntLit:
		return types.Int, nil
	case FloatLit:
		return types.Float, nil
	case StringLit:
		return types.String, nil
	case BoolLit:
		return types.Bool, nil
	}

	info, ok := syms.SymbolInfo(x.Value)
	if !ok {
		return types.Invalid, Errorf(NameError, x.pos, "undeclared variable %q", x.Value)
	}
	return info.Type, nil
}

func (x *BinaryExpr) Type(syms *types.SymbolTable) (types.Type, error) {
	lt, err := x.X.Type(syms)
	if err != nil {
		return types.Invalid, err
	}
	rt, err := x.Y.Type(syms)
	if err != nil {
		return types.Invalid, err
	}

	if x.Op.IsComparison() || x.Op.IsLogical() {
		return types.Bool, nil
	}

	if !types.Identical(lt, rt) {
		return types.Invalid, Errorf(TypeError, x.pos, "mismatched types %s and %s for operator %s", lt, rt, x.Op)
	}
	if !lt.IsNumeric() {
		return types.Invalid, Errorf(TypeError, x.pos, "operator %s not defined on %s", x.Op, lt)
	}
	return lt, nil
}

func (x *UnaryExpr) Type(syms *types.SymbolTable) (types.Type, error) {
	return x.X.Type(syms)
}

func (x *AssignExpr) Type(syms *types.SymbolTable) (types.Type, error) {
	info, ok := syms.SymbolInfo(x.Target)
	if !ok {
		return types.Invalid, Errorf(NameError, x.pos, "assignment to undeclared variable %q", x.Target)
	}
	return info.Type, nil
}

func (x *MethodCall) Type(syms *types.SymbolTable) (types.Type, error) {
	info, ok := syms.SymbolInfo(x.Receiver)
	if !ok {
		return types.Invalid, Errorf(NameError, x.pos, "undeclared variable %q", x.Receiver)
	}
	return info.Type, nil
}
