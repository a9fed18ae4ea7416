package ast

type Stmt interface {
	Node
	isStmt()
}

func (*VarDecl) isStmt() {}

func (*ExprStmt) isStmt() {}

func (*ReturnStmt) isStmt() {}

func (*IfStmt) isStmt() {}

func (*WhileStmt) isStmt() {}

func (*ForStmt) isStmt() {}

func (*BreakStmt) isStmt() {}

func (*BlockStmt) isStmt() {}

// ExternalDecl is anything that may appear at file scope.
type ExternalDecl interface {
	Node
	isExternalDecl()
}

func (*VarDecl) isExternalDecl() {}

func (*FuncDecl) isExternalDecl() {}

func (*FuncDef) isExternalDecl() {}

// DeclName returns the declared name of a top-level declaration.
func DeclName(d ExternalDecl) string {
	switch x := d.(type) {
	case *VarDecl:
		return x.Name.Value
	case *FuncDecl:
		return x.Name.Value
	case *FuncDef:
		return x.Name.Value
	}
	return ""
}
