package syntax

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTree(node))
}

// FprintYAML writes a YAML representation of the AST to w.
// It has the same shape as the JSON form.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toTree(node)); err != nil {
		return err
	}
	return enc.Close()
}

type tree = map[string]interface{}

func toTree(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return tree{
			"type":  "Program",
			"pos":   n.pos.String(),
			"decls": mapSlice(n.Decls),
			"funcs": mapSlice(n.Funcs),
			"stmts": mapSlice(n.Stmts),
			"exprs": mapSlice(n.Exprs),
		}

	case *IntDecl:
		return scalarTree("IntDecl", &n.scalarDecl)
	case *FloatDecl:
		return scalarTree("FloatDecl", &n.scalarDecl)
	case *StringDecl:
		return scalarTree("StringDecl", &n.scalarDecl)
	case *BoolDecl:
		return scalarTree("BoolDecl", &n.scalarDecl)

	case *ArrayDecl:
		m := tree{
			"type":  "ArrayDecl",
			"pos":   n.pos.String(),
			"name":  n.Name,
			"elem":  string(n.Elem),
			"elems": mapSlice(n.Elems),
		}
		if n.Size != "" {
			m["size"] = n.Size
		}
		return m

	case *AssignExpr:
		return tree{
			"type":   "Assign",
			"pos":    n.pos.String(),
			"target": n.Target,
			"value":  toTree(n.Value),
		}

	case *BinaryExpr:
		return tree{
			"type": "Binary",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toTree(n.X),
			"y":    toTree(n.Y),
		}

	case *UnaryExpr:
		return tree{
			"type": "Unary",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toTree(n.X),
		}

	case *PrimaryExpr:
		return tree{
			"type":  "Primary",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *MethodCall:
		return tree{
			"type":     "MethodCall",
			"pos":      n.pos.String(),
			"receiver": n.Receiver,
			"method":   n.Method,
			"args":     mapSlice(n.Args),
		}

	case *PrintStmt:
		return tree{
			"type": "Print",
			"pos":  n.pos.String(),
			"x":    toTree(n.X),
		}

	case *WhileStmt:
		return tree{
			"type": "While",
			"pos":  n.pos.String(),
			"cond": toTree(n.Cond),
			"body": toTree(n.Body),
		}

	case *ForStmt:
		return tree{
			"type":  "For",
			"pos":   n.pos.String(),
			"start": toTree(n.Start),
			"end":   toTree(n.End),
			"body":  toTree(n.Body),
		}

	case *IfStmt:
		m := tree{
			"type": "If",
			"pos":  n.pos.String(),
			"cond": toTree(n.Cond),
			"then": toTree(n.Then),
		}
		if n.Else != nil {
			m["else"] = toTree(n.Else)
		}
		return m

	case *ReturnStmt:
		return tree{
			"type":   "Return",
			"pos":    n.pos.String(),
			"result": toTree(n.Result),
		}

	case *BlockStmt:
		return tree{
			"type":  "Block",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts),
		}

	case *ExprStmt:
		return tree{
			"type": "ExprStmt",
			"pos":  n.pos.String(),
			"x":    toTree(n.X),
		}

	case *FuncDef:
		params := make([]interface{}, 0, len(n.Params))
		for _, par := range n.Params {
			params = append(params, tree{"name": par.Name, "type": string(par.Type)})
		}
		return tree{
			"type":   "FuncDef",
			"pos":    n.pos.String(),
			"name":   n.Name,
			"params": params,
			"result": string(n.Result),
			"body":   toTree(n.Body),
		}

	case *CallStmt:
		return tree{
			"type": "Call",
			"pos":  n.pos.String(),
			"name": n.Name,
			"args": mapSlice(n.Args),
		}
	}

	return nil
}

func scalarTree(typ string, d *scalarDecl) tree {
	m := tree{
		"type": typ,
		"pos":  d.pos.String(),
		"name": d.Name,
	}
	if d.Value != nil {
		m["value"] = toTree(d.Value)
	}
	return m
}

func mapSlice[N Node](nodes []N) []interface{} {
	out := make([]interface{}, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toTree(n))
	}
	return out
}
