package syntax

import "strings"

// String forms are parenthesized prefix lists, e.g.
//
//	(IntDecl x (Primary 5))
//	(Binary + (Primary y) (Primary 10))
//
// They are stable and used by golden tests.

func list(head string, elems ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(head)
	for _, e := range elems {
		if e == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(e)
	}
	b.WriteByte(')')
	return b.String()
}

func strs[N Node](nodes []N) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.String())
	}
	return out
}

func (n *Program) String() string {
	var elems []string
	elems = append(elems, strs(n.Decls)...)
	elems = append(elems, strs(n.Funcs)...)
	elems = append(elems, strs(n.Stmts)...)
	elems = append(elems, strs(n.Exprs)...)
	return list("Program", elems...)
}

func scalarString(head string, d *scalarDecl) string {
	if d.Value == nil {
		return list(head, d.Name)
	}
	return list(head, d.Name, d.Value.String())
}

func (n *IntDecl) String() string    { return scalarString("IntDecl", &n.scalarDecl) }
func (n *FloatDecl) String() string  { return scalarString("FloatDecl", &n.scalarDecl) }
func (n *StringDecl) String() string { return scalarString("StringDecl", &n.scalarDecl) }
func (n *BoolDecl) String() string   { return scalarString("BoolDecl", &n.scalarDecl) }

func (n *ArrayDecl) String() string {
	typ := string(n.Elem) + "[" + n.Size + "]"
	return list("ArrayDecl", append([]string{typ, n.Name}, strs(n.Elems)...)...)
}

func (n *AssignExpr) String() string {
	return list("Assign", n.Target, n.Value.String())
}

func (n *BinaryExpr) String() string {
	return list("Binary", n.Op.String(), n.X.String(), n.Y.String())
}

func (n *UnaryExpr) String() string {
	return list("Unary", n.Op.String(), n.X.String())
}

func (n *PrimaryExpr) String() string {
	return list("Primary", n.Value)
}

func (n *MethodCall) String() string {
	return list("MethodCall", append([]string{n.Receiver + "." + n.Method}, strs(n.Args)...)...)
}

func (n *PrintStmt) String() string {
	return list("Print", n.X.String())
}

func (n *WhileStmt) String() string {
	return list("While", n.Cond.String(), n.Body.String())
}

func (n *ForStmt) String() string {
	return list("For", n.Start.String(), n.End.String(), n.Body.String())
}

func (n *IfStmt) String() string {
	if n.Else == nil {
		return list("If", n.Cond.String(), n.Then.String())
	}
	return list("If", n.Cond.String(), n.Then.String(), n.Else.String())
}

func (n *ReturnStmt) String() string {
	return list("Return", n.Result.String())
}

func (n *BlockStmt) String() string {
	return list("Block", strs(n.Stmts)...)
}

func (n *ExprStmt) String() string {
	return list("ExprStmt", n.X.String())
}

func (n *FuncDef) String() string {
	params := make([]string, 0, len(n.Params))
	for _, p := range n.Params {
		params = append(params, list(p.Name, string(p.Type)))
	}
	body := ""
	if n.Body != nil {
		body = n.Body.String()
	}
	return list("FuncDef", n.Name, "("+strings.Join(params, " ")+")", string(n.Result), body)
}

func (n *CallStmt) String() string {
	return list("Call", append([]string{n.Name}, strs(n.Args)...)...)
}
