package ast

type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr() {}

func (*AssignExpr) isExpr() {}

func (*ConditionalExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*IndexExpr) isExpr() {}

func (*MemberExpr) isExpr() {}

func (*IncDecExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*IntLit) isExpr() {}

func (*FloatLit) isExpr() {}

func (*StringLit) isExpr() {}

func (*BoolLit) isExpr() {}

func (*ParenExpr) isExpr() {}

// IsLiteral reports whether e is a single literal token.
func IsLiteral(e Expr) bool {
	switch e.(type) {
	case *IntLit, *FloatLit, *StringLit, *BoolLit:
		return true
	}
	return false
}

// IsAssignable reports whether e can appear on the left of an assignment.
func IsAssignable(e Expr) bool {
	switch x := e.(type) {
	case *IdentExpr, *IndexExpr, *MemberExpr:
		return true
	case *UnaryExpr:
		return x.Op == "*"
	case *ParenExpr:
		return IsAssignable(x.Inner)
	}
	return false
}
