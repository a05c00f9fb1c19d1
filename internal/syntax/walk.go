package syntax

// Walk traverses an AST in depth-first order, calling f for each node.
// If f returns false, the children of the node are not visited.
func Walk(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Walk(d, f)
		}
		for _, fn := range n.Funcs {
			Walk(fn, f)
		}
		for _, s := range n.Stmts {
			Walk(s, f)
		}
		for _, x := range n.Exprs {
			Walk(x, f)
		}

	case *IntDecl:
		walkOpt(n.Value, f)
	case *FloatDecl:
		walkOpt(n.Value, f)
	case *StringDecl:
		walkOpt(n.Value, f)
	case *BoolDecl:
		walkOpt(n.Value, f)

	case *ArrayDecl:
		walkList(n.Elems, f)

	case *AssignExpr:
		Walk(n.Value, f)

	case *BinaryExpr:
		Walk(n.X, f)
		Walk(n.Y, f)

	case *UnaryExpr:
		Walk(n.X, f)

	case *MethodCall:
		walkList(n.Args, f)

	case *PrintStmt:
		Walk(n.X, f)

	case *WhileStmt:
		Walk(n.Cond, f)
		Walk(n.Body, f)

	case *ForStmt:
		Walk(n.Start, f)
		Walk(n.End, f)
		Walk(n.Body, f)

	case *IfStmt:
		Walk(n.Cond, f)
		Walk(n.Then, f)
		if n.Else != nil {
			Walk(n.Else, f)
		}

	case *ReturnStmt:
		Walk(n.Result, f)

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, f)
		}

	case *ExprStmt:
		Walk(n.X, f)

	case *FuncDef:
		if n.Body != nil {
			Walk(n.Body, f)
		}

	case *CallStmt:
		walkList(n.Args, f)

	// Leaf nodes: PrimaryExpr
	}
}

func walkOpt(x Expr, f func(Node) bool) {
	if x != nil {
		Walk(x, f)
	}
}

func walkList(list []Expr, f func(Node) bool) {
	for _, x := range list {
		Walk(x, f)
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, f)
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	n := 0
	Walk(node, func(Node) bool {
		n++
		return true
	})
	return n
}
