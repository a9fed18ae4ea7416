package ast

// Children returns the direct child nodes of n in source order.
// Absent optional parts are omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}

	switch x := n.(type) {
	case *TranslationUnit:
		for _, d := range x.Directives {
			add(d)
		}
		for _, d := range x.Decls {
			add(d)
		}
	case *TypeSpec, *Directive, *Ident, *BreakStmt, *IdentExpr,
		*IntLit, *FloatLit, *StringLit, *BoolLit, *BadExpr:
		// leaves
	case *Param:
		add(x.Type)
		if x.Name != nil {
			add(x.Name)
		}
	case *VarDecl:
		add(x.Type)
		add(&x.Name)
		if x.ArraySize != nil {
			add(x.ArraySize)
		}
		if x.Init != nil {
			add(x.Init)
		}
	case *FuncDecl:
		add(x.Return)
		add(&x.Name)
		for _, p := range x.Params {
			add(p)
		}
	case *FuncDef:
		add(x.Return)
		add(&x.Name)
		for _, p := range x.Params {
			add(p)
		}
		if x.Body != nil {
			add(x.Body)
		}
	case *ExprStmt:
		add(x.Expr)
	case *ReturnStmt:
		if x.Value != nil {
			add(x.Value)
		}
	case *IfStmt:
		add(x.Cond)
		add(x.Then)
		if x.Else != nil {
			add(x.Else)
		}
	case *WhileStmt:
		add(x.Cond)
		add(x.Body)
	case *ForStmt:
		if x.Init != nil {
			add(x.Init)
		}
		if x.Cond != nil {
			add(x.Cond)
		}
		if x.Update != nil {
			add(x.Update)
		}
		add(x.Body)
	case *BlockStmt:
		for _, s := range x.Stmts {
			add(s)
		}
	case *AssignExpr:
		add(x.Target)
		add(x.Value)
	case *ConditionalExpr:
		add(x.Cond)
		add(x.Then)
		add(x.Else)
	case *BinaryExpr:
		add(x.Left)
		add(x.Right)
	case *UnaryExpr:
		add(x.Operand)
	case *CallExpr:
		add(x.Callee)
		for _, a := range x.Args {
			add(a)
		}
	case *IndexExpr:
		add(x.Base)
		add(x.Index)
	case *MemberExpr:
		add(x.Base)
		add(&x.Name)
	case *IncDecExpr:
		add(x.Operand)
	case *ParenExpr:
		add(x.Inner)
	}
	return out
}

// Inspect walks the tree rooted at n depth-first, calling fn for each node.
// Children are skipped when fn returns false.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}
