package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUnit() *TranslationUnit {
	body := &BlockStmt{Stmts: []Stmt{
		&VarDecl{Type: &TypeSpec{Name: "int"}, Name: Ident{Value: "x"}, Init: intLit("1", 1)},
		&ExprStmt{Expr: &CallExpr{Callee: ident("print"), Args: []Expr{ident("x")}}},
		&ReturnStmt{},
	}}
	return &TranslationUnit{
		Decls: []ExternalDecl{
			&FuncDef{
				Return: &TypeSpec{Name: "void"},
				Name:   Ident{Value: "run"},
				Params: []*Param{{Type: &TypeSpec{Name: "int"}, Name: &Ident{Value: "n"}}},
				Body:   body,
			},
		},
	}
}

func TestChildrenOmitsAbsentParts(t *testing.T) {
	ret := &ReturnStmt{}
	assert.Empty(t, Children(ret))

	loop := &ForStmt{Body: &BlockStmt{}}
	children := Children(loop)
	require.Len(t, children, 1)
	assert.Equal(t, BLOCK_STMT, children[0].NodeType())

	param := &Param{Type: &TypeSpec{Name: "int"}}
	require.Len(t, Children(param), 1)
}

func TestChildrenSourceOrder(t *testing.T) {
	decl := &VarDecl{
		Type:      &TypeSpec{Name: "int"},
		Name:      Ident{Value: "a"},
		ArraySize: intLit("3", 3),
	}
	var types []NodeType
	for _, c := range Children(decl) {
		types = append(types, c.NodeType())
	}
	assert.Equal(t, []NodeType{TYPE_SPEC, IDENT, INT_LIT}, types)
}

func TestInspectVisitsEveryNode(t *testing.T) {
	var names []string
	Inspect(sampleUnit(), func(n Node) bool {
		if id, ok := n.(*IdentExpr); ok {
			names = append(names, id.Name)
		}
		return true
	})
	assert.Equal(t, []string{"print", "x"}, names)
}

func TestInspectPrunes(t *testing.T) {
	count := 0
	Inspect(sampleUnit(), func(n Node) bool {
		count++
		return n.NodeType() != FUNC_DEF
	})
	assert.Equal(t, 2, count)
}

func TestDeclName(t *testing.T) {
	unit := sampleUnit()
	assert.Equal(t, "run", DeclName(unit.Decls[0]))
}

func TestIsAssignable(t *testing.T) {
	assert.True(t, IsAssignable(ident("x")))
	assert.True(t, IsAssignable(&UnaryExpr{Op: "*", Operand: ident("p")}))
	assert.True(t, IsAssignable(&ParenExpr{Inner: &IndexExpr{Base: ident("a"), Index: intLit("0", 0)}}))
	assert.False(t, IsAssignable(intLit("5", 5)))
	assert.False(t, IsAssignable(&BinaryExpr{Op: "+", Left: ident("a"), Right: ident("b")}))
	assert.False(t, IsAssignable(&UnaryExpr{Op: "-", Operand: ident("x")}))
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "FUNC_DEF", FUNC_DEF.String())
	assert.Equal(t, "NodeType(999)", NodeType(999).String())
}
