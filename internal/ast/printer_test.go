package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ident(name string) *IdentExpr { return &IdentExpr{Name: name} }

func intLit(raw string, v int64) *IntLit { return &IntLit{Value: v, Raw: raw} }

func TestBinaryExprFullyParenthesized(t *testing.T) {
	expr := &BinaryExpr{
		Op:   "+",
		Left: ident("a"),
		Right: &BinaryExpr{
			Op:    "*",
			Left:  ident("b"),
			Right: ident("c"),
		},
	}
	assert.Equal(t, "(a + (b * c))", expr.String())
}

func TestAssignExprString(t *testing.T) {
	expr := &AssignExpr{
		Target: ident("x"),
		Op:     ASSIGN,
		Value: &AssignExpr{
			Target: ident("y"),
			Op:     ASSIGN,
			Value:  intLit("5", 5),
		},
	}
	assert.Equal(t, "(x = (y = 5))", expr.String())

	compound := &AssignExpr{Target: ident("n"), Op: PERCENT_ASSIGN, Value: intLit("2", 2)}
	assert.Equal(t, "(n %= 2)", compound.String())
}

func TestPostfixAndPrefixString(t *testing.T) {
	call := &CallExpr{
		Callee: ident("printf"),
		Args:   []Expr{&StringLit{Value: "hi\n", Raw: `"hi\n"`}, ident("x")},
	}
	assert.Equal(t, `printf("hi\n", x)`, call.String())

	member := &MemberExpr{Base: &IndexExpr{Base: ident("p"), Index: intLit("0", 0)}, Name: Ident{Value: "next"}, Arrow: true}
	assert.Equal(t, "p[0]->next", member.String())

	assert.Equal(t, "(-x)", (&UnaryExpr{Op: "-", Operand: ident("x")}).String())
	assert.Equal(t, "i++", (&IncDecExpr{Op: "++", Operand: ident("i")}).String())
	assert.Equal(t, "(c ? 1 : 2)", (&ConditionalExpr{Cond: ident("c"), Then: intLit("1", 1), Else: intLit("2", 2)}).String())
}

func TestLiteralStringWithoutRaw(t *testing.T) {
	assert.Equal(t, "42", (&IntLit{Value: 42}).String())
	assert.Equal(t, "2.5", (&FloatLit{Value: 2.5}).String())
	assert.Equal(t, `"a\"b"`, (&StringLit{Value: `a"b`}).String())
	assert.Equal(t, "false", (&BoolLit{Value: false}).String())
}

func TestTypeSpecString(t *testing.T) {
	ts := &TypeSpec{Static: true, Const: true, Name: "char", Pointer: 2}
	assert.Equal(t, "static const char**", ts.String())
}

func TestVarDeclString(t *testing.T) {
	decl := &VarDecl{
		Type:      &TypeSpec{Name: "int"},
		Name:      Ident{Value: "buf"},
		ArraySize: intLit("16", 16),
	}
	assert.Equal(t, "int buf[16];", decl.String())

	decl = &VarDecl{
		Type: &TypeSpec{Name: "float"},
		Name: Ident{Value: "f"},
		Init: &FloatLit{Value: 1.5, Raw: "1.5"},
	}
	assert.Equal(t, "float f = 1.5;", decl.String())
}

func TestFuncDeclString(t *testing.T) {
	decl := &FuncDecl{
		Return: &TypeSpec{Name: "int"},
		Name:   Ident{Value: "add"},
		Params: []*Param{
			{Type: &TypeSpec{Name: "int"}, Name: &Ident{Value: "a"}},
			{Type: &TypeSpec{Name: "int"}},
		},
	}
	assert.Equal(t, "int add(int a, int);", decl.String())
}

func TestFuncDefString(t *testing.T) {
	def := &FuncDef{
		Return: &TypeSpec{Name: "int"},
		Name:   Ident{Value: "main"},
		Body: &BlockStmt{Stmts: []Stmt{
			&IfStmt{
				Cond: ident("x"),
				Then: &BlockStmt{Stmts: []Stmt{&BreakStmt{}}},
				Else: &ReturnStmt{},
			},
			&ReturnStmt{Value: intLit("0", 0)},
		}},
	}

	expected := "int main() {\n  if (x) {\n    break;\n  } else return;\n  return 0;\n}"
	assert.Equal(t, expected, def.String())
}

func TestForStmtString(t *testing.T) {
	loop := &ForStmt{
		Init: &VarDecl{Type: &TypeSpec{Name: "int"}, Name: Ident{Value: "i"}, Init: intLit("0", 0)},
		Cond: &BinaryExpr{Op: "<", Left: ident("i"), Right: intLit("10", 10)},
		Update: &IncDecExpr{Op: "++", Operand: ident("i")},
		Body: &BlockStmt{},
	}
	assert.Equal(t, "for (int i = 0; (i < 10); i++) {}", loop.String())

	empty := &ForStmt{Body: &ExprStmt{Expr: ident("x")}}
	assert.Equal(t, "for (;;) x;", empty.String())
}

func TestWhileStmtString(t *testing.T) {
	loop := &WhileStmt{Cond: &BoolLit{Value: true}, Body: &BreakStmt{}}
	assert.Equal(t, "while (true) break;", loop.String())
}

func TestDirectiveString(t *testing.T) {
	assert.Equal(t, "#include <stdio.h>", (&Directive{Kind: DIRECTIVE_INCLUDE, Path: "stdio.h", System: true}).String())
	assert.Equal(t, `#include "util.h"`, (&Directive{Kind: DIRECTIVE_INCLUDE, Path: "util.h"}).String())
	assert.Equal(t, "#define MAX 100", (&Directive{Kind: DIRECTIVE_DEFINE, Name: "MAX", Value: "100"}).String())
	assert.Equal(t, "#ifndef GUARD", (&Directive{Kind: DIRECTIVE_IFNDEF, Name: "GUARD"}).String())
	assert.Equal(t, "#endif", (&Directive{Kind: DIRECTIVE_ENDIF}).String())
	assert.Equal(t, "#define  X  1", (&Directive{Kind: DIRECTIVE_DEFINE, Name: "X", Value: "1", Text: "#define  X  1"}).String())
}

func TestTranslationUnitString(t *testing.T) {
	tu := &TranslationUnit{
		Directives: []*Directive{{Kind: DIRECTIVE_INCLUDE, Path: "stdio.h", System: true}},
		Decls: []ExternalDecl{
			&VarDecl{Type: &TypeSpec{Name: "int"}, Name: Ident{Value: "g"}},
			&FuncDecl{Return: &TypeSpec{Name: "void"}, Name: Ident{Value: "f"}},
		},
	}
	assert.Equal(t, "#include <stdio.h>\n\nint g;\n\nvoid f();\n", tu.String())
}

func TestBadExprString(t *testing.T) {
	assert.Equal(t, "BadExpr: unexpected ';'", (&BadExpr{Message: "unexpected ';'"}).String())
}
