package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented, human-readable form of the AST to w.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	if node == nil {
		return nil
	}
	if err := node.Accept(p); err != nil {
		return err
	}
	return p.err
}

// printer is a Visitor that writes one line per node.
type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// nested prints the nodes one level deeper, under label if it is not empty.
func (p *printer) nested(label string, nodes ...Node) error {
	defer func(indent int) { p.indent = indent }(p.indent)

	p.indent++
	if label != "" {
		p.printf("%s:", label)
		p.indent++
	}

	for _, n := range nodes {
		if err := n.Accept(p); err != nil {
			return err
		}
	}
	return nil
}

func exprNodes(list []Expr) []Node {
	nodes := make([]Node, len(list))
	for i, x := range list {
		nodes[i] = x
	}
	return nodes
}

func (p *printer) VisitProgram(n *Program) error {
	p.printf("Program %s", n.pos)
	var nodes []Node
	for _, d := range n.Decls {
		nodes = append(nodes, d)
	}
	for _, f := range n.Funcs {
		nodes = append(nodes, f)
	}
	for _, s := range n.Stmts {
		nodes = append(nodes, s)
	}
	nodes = append(nodes, exprNodes(n.Exprs)...)
	return p.nested("", nodes...)
}

func (p *printer) scalarDecl(head string, d *scalarDecl) error {
	p.printf("%s %s %s", head, d.Name, d.pos)
	if d.Value == nil {
		return nil
	}
	return p.nested("", d.Value)
}

func (p *printer) VisitIntDecl(n *IntDecl) error       { return p.scalarDecl("IntDecl", &n.scalarDecl) }
func (p *printer) VisitFloatDecl(n *FloatDecl) error   { return p.scalarDecl("FloatDecl", &n.scalarDecl) }
func (p *printer) VisitStringDecl(n *StringDecl) error { return p.scalarDecl("StringDecl", &n.scalarDecl) }
func (p *printer) VisitBoolDecl(n *BoolDecl) error     { return p.scalarDecl("BoolDecl", &n.scalarDecl) }

func (p *printer) VisitArrayDecl(n *ArrayDecl) error {
	p.printf("ArrayDecl %s %s[%s] %s", n.Name, n.Elem, n.Size, n.pos)
	return p.nested("", exprNodes(n.Elems)...)
}

func (p *printer) VisitAssignExpr(n *AssignExpr) error {
	p.printf("Assign %s %s", n.Target, n.pos)
	return p.nested("", n.Value)
}

func (p *printer) VisitBinaryExpr(n *BinaryExpr) error {
	p.printf("Binary %s %s", n.Op, n.pos)
	return p.nested("", n.X, n.Y)
}

func (p *printer) VisitUnaryExpr(n *UnaryExpr) error {
	p.printf("Unary %s %s", n.Op, n.pos)
	return p.nested("", n.X)
}

func (p *printer) VisitPrimaryExpr(n *PrimaryExpr) error {
	p.printf("Primary %s %s %s", n.Kind, n.Value, n.pos)
	return nil
}

func (p *printer) VisitMethodCall(n *MethodCall) error {
	p.printf("MethodCall %s.%s %s", n.Receiver, n.Method, n.pos)
	return p.nested("", exprNodes(n.Args)...)
}

func (p *printer) VisitPrintStmt(n *PrintStmt) error {
	p.printf("Print %s", n.pos)
	return p.nested("", n.X)
}

func (p *printer) VisitWhileStmt(n *WhileStmt) error {
	p.printf("While %s", n.pos)
	if err := p.nested("Cond", n.Cond); err != nil {
		return err
	}
	return p.nested("Body", n.Body)
}

func (p *printer) VisitForStmt(n *ForStmt) error {
	p.printf("For %s", n.pos)
	if err := p.nested("Range", n.Start, n.End); err != nil {
		return err
	}
	return p.nested("Body", n.Body)
}

func (p *printer) VisitIfStmt(n *IfStmt) error {
	p.printf("If %s", n.pos)
	if err := p.nested("Cond", n.Cond); err != nil {
		return err
	}
	if err := p.nested("Then", n.Then); err != nil {
		return err
	}
	if n.Else == nil {
		return nil
	}
	return p.nested("Else", n.Else)
}

func (p *printer) VisitReturnStmt(n *ReturnStmt) error {
	p.printf("Return %s", n.pos)
	return p.nested("", n.Result)
}

func (p *printer) VisitBlockStmt(n *BlockStmt) error {
	p.printf("Block %s", n.pos)
	nodes := make([]Node, len(n.Stmts))
	for i, s := range n.Stmts {
		nodes[i] = s
	}
	return p.nested("", nodes...)
}

func (p *printer) VisitExprStmt(n *ExprStmt) error {
	p.printf("ExprStmt %s", n.pos)
	return p.nested("", n.X)
}

func (p *printer) VisitFuncDef(n *FuncDef) error {
	p.printf("FuncDef %s %s", n.Name, n.pos)
	p.indent++
	if len(n.Params) > 0 {
		p.printf("Params:")
		p.indent++
		for _, par := range n.Params {
			p.printf("%s %s", par.Name, par.Type)
		}
		p.indent--
	}
	p.printf("Result: %s", n.Result)
	p.indent--
	return p.nested("Body", n.Body)
}

func (p *printer) VisitCallStmt(n *CallStmt) error {
	p.printf("Call %s %s", n.Name, n.pos)
	return p.nested("", exprNodes(n.Args)...)
}
