package syntax

// Visitor is implemented by passes over the AST, such as the semantic
// analyzer and code generators. Node.Accept calls the method matching
// the node's concrete type; the visitor decides whether and in which
// order to visit children.
type Visitor interface {
	VisitProgram(*Program) error

	VisitIntDecl(*IntDecl) error
	VisitFloatDecl(*FloatDecl) error
	VisitStringDecl(*StringDecl) error
	VisitBoolDecl(*BoolDecl) error
	VisitArrayDecl(*ArrayDecl) error

	VisitAssignExpr(*AssignExpr) error
	VisitBinaryExpr(*BinaryExpr) error
	VisitUnaryExpr(*UnaryExpr) error
	VisitPrimaryExpr(*PrimaryExpr) error
	VisitMethodCall(*MethodCall) error

	VisitPrintStmt(*PrintStmt) error
	VisitWhileStmt(*WhileStmt) error
	VisitForStmt(*ForStmt) error
	VisitIfStmt(*IfStmt) error
	VisitReturnStmt(*ReturnStmt) error
	VisitBlockStmt(*BlockStmt) error
	VisitExprStmt(*ExprStmt) error

	VisitFuncDef(*FuncDef) error
	VisitCallStmt(*CallStmt) error
}

func (n *Program) Accept(v Visitor) error { return v.VisitProgram(n) }

func (n *IntDecl) Accept(v Visitor) error    { return v.VisitIntDecl(n) }
func (n *FloatDecl) Accept(v Visitor) error  { return v.VisitFloatDecl(n) }
func (n *StringDecl) Accept(v Visitor) error { return v.VisitStringDecl(n) }
func (n *BoolDecl) Accept(v Visitor) error   { return v.VisitBoolDecl(n) }
func (n *ArrayDecl) Accept(v Visitor) error  { return v.VisitArrayDecl(n) }

func (n *AssignExpr) Accept(v Visitor) error  { return v.VisitAssignExpr(n) }
func (n *BinaryExpr) Accept(v Visitor) error  { return v.VisitBinaryExpr(n) }
func (n *UnaryExpr) Accept(v Visitor) error   { return v.VisitUnaryExpr(n) }
func (n *PrimaryExpr) Accept(v Visitor) error { return v.VisitPrimaryExpr(n) }
func (n *MethodCall) Accept(v Visitor) error  { return v.VisitMethodCall(n) }

func (n *PrintStmt) Accept(v Visitor) error  { return v.VisitPrintStmt(n) }
func (n *WhileStmt) Accept(v Visitor) error  { return v.VisitWhileStmt(n) }
func (n *ForStmt) Accept(v Visitor) error    { return v.VisitForStmt(n) }
func (n *IfStmt) Accept(v Visitor) error     { return v.VisitIfStmt(n) }
func (n *ReturnStmt) Accept(v Visitor) error { return v.VisitReturnStmt(n) }
func (n *BlockStmt) Accept(v Visitor) error  { return v.VisitBlockStmt(n) }
func (n *ExprStmt) Accept(v Visitor) error   { return v.VisitExprStmt(n) }

func (n *FuncDef) Accept(v Visitor) error  { return v.VisitFuncDef(n) }
func (n *CallStmt) Accept(v Visitor) error { return v.VisitCallStmt(n) }
