package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minic/internal/ast"
)

func prepareParser(expr string) *Parser {
	return NewParser("test_dummy", NewScanner(expr).ScanTokens())
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "((a * b) + c)"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b % c", "((a / b) % c)"},
		{"a || b && c", "(a || (b && c))"},
		{"a && b || c", "((a && b) || c)"},
		{"a | b ^ c & d", "(a | (b ^ (c & d)))"},
		{"a == b < c", "(a == (b < c))"},
		{"a != b == c", "((a != b) == c)"},
		{"a << 1 + 2", "(a << (1 + 2))"},
		{"a < b >> 1", "(a < (b >> 1))"},
		{"(a + b) * c", "(((a + b)) * c)"},
		{"-a * b", "((-a) * b)"},
		{"!f(x, y)", "(!f(x, y))"},
		{"~a & b", "((~a) & b)"},
		{"++i + j--", "((++i) + j--)"},
		{"i+++j", "(i++ + j)"},
		{"a[i].next->val++", "a[i].next->val++"},
		{"f()(1)[2]", "f()(1)[2]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := prepareParser(tt.input)
			expr := p.parseExpr()
			assert.Empty(t, p.Diagnostics())
			assert.Equal(t, tt.expected, expr.String())
		})
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x = y = 5", "(x = (y = 5))"},
		{"x += 2 * y", "(x += (2 * y))"},
		{"a = b -= c %= 3", "(a = (b -= (c %= 3)))"},
		{"x = c ? 1 : 2", "(x = (c ? 1 : 2))"},
		{"c ? a : b ? d : e", "(c ? a : (b ? d : e))"},
		{"c ? x = 1 : 2", "(c ? (x = 1) : 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := prepareParser(tt.input)
			assert.Equal(t, tt.expected, p.parseExpr().String())
			assert.Empty(t, p.Diagnostics())
		})
	}
}

func TestAddressAndDereference(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*p = &x", "((*p) = (&x))"},
		{"a & *p", "(a & (*p))"},
		{"a * *p", "(a * (*p))"},
		{"&a * b", "((&a) * b)"},
		{"a * -b", "(a * (-b))"},
		{"**pp + 1", "((*(*pp)) + 1)"},
		{"a & b * c", "(a & (b * c))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := prepareParser(tt.input)
			assert.Equal(t, tt.expected, p.parseExpr().String())
			assert.Empty(t, p.Diagnostics())
		})
	}
}

func TestBinaryTreeShape(t *testing.T) {
	unit, diags := ParseSource("test.c", "int r = a + b * c;")
	require.Empty(t, diags)

	decl := unit.Decls[0].(*ast.VarDecl)
	sum, ok := decl.Init.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", sum.Op)
	assert.Equal(t, "a", sum.Left.(*ast.IdentExpr).Name)

	product, ok := sum.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", product.Op)
	assert.Equal(t, "b", product.Left.(*ast.IdentExpr).Name)
	assert.Equal(t, "c", product.Right.(*ast.IdentExpr).Name)
}

func TestPostfixNodes(t *testing.T) {
	p := prepareParser("node->next.value")
	expr := p.parseExpr()

	outer, ok := expr.(*ast.MemberExpr)
	require.True(t, ok)
	assert.False(t, outer.Arrow)
	assert.Equal(t, "value", outer.Name.Value)

	inner, ok := outer.Base.(*ast.MemberExpr)
	require.True(t, ok)
	assert.True(t, inner.Arrow)
	assert.Equal(t, "next", inner.Name.Value)
}

func TestLiteralValues(t *testing.T) {
	p := prepareParser(`f(42, 2.5, "a\tb", true, false)`)
	call := p.parseExpr().(*ast.CallExpr)
	require.Len(t, call.Args, 5)

	assert.Equal(t, int64(42), call.Args[0].(*ast.IntLit).Value)
	assert.Equal(t, 2.5, call.Args[1].(*ast.FloatLit).Value)
	assert.Equal(t, "a\tb", call.Args[2].(*ast.StringLit).Value)
	assert.True(t, call.Args[3].(*ast.BoolLit).Value)
	assert.False(t, call.Args[4].(*ast.BoolLit).Value)
}

func TestAssignToNonLvalue(t *testing.T) {
	tests := []struct {
		input  string
		column int
	}{
		{"5 = x", 3},
		{"a + b = c", 7},
		{"f() += 1", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := prepareParser(tt.input)
			expr := p.parseExpr()
			assert.IsType(t, &ast.AssignExpr{}, expr)

			diags := p.Diagnostics()
			require.Len(t, diags, 1)
			assert.Equal(t, UnexpectedToken, diags[0].Kind)
			assert.Equal(t, tt.column, diags[0].Position.Column)
		})
	}
}

func TestAssignableTargets(t *testing.T) {
	for _, input := range []string{"x = 1", "a[0] = 1", "p->v = 1", "*p = 1", "(x) = 1", "s.f = 1"} {
		p := prepareParser(input)
		p.parseExpr()
		assert.Empty(t, p.Diagnostics(), input)
	}
}

func TestMissingOperand(t *testing.T) {
	p := prepareParser("a + ;")
	expr := p.parseExpr()

	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.BadExpr{}, bin.Right)

	diags := p.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, UnexpectedToken, diags[0].Kind)
	assert.Equal(t, "expected expression, found ';'", diags[0].Message)
	assert.Equal(t, SEMICOLON, p.peek().Type)
}

func TestConditionalMissingColon(t *testing.T) {
	p := prepareParser("c ? a ;")
	expr := p.parseExpr()

	cond, ok := expr.(*ast.ConditionalExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.BadExpr{}, cond.Else)

	diags := p.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, FailedToFindToken, diags[0].Kind)
	assert.Equal(t, COLON, diags[0].Expected)
}

func TestExpressionPositions(t *testing.T) {
	p := prepareParser("  alpha + beta")
	expr := p.parseExpr()
	assert.Equal(t, ast.Position{Filename: "test_dummy", Offset: 2, Line: 1, Column: 3}, expr.NodePos())
	assert.Equal(t, ast.Position{Filename: "test_dummy", Offset: 14, Line: 1, Column: 15}, expr.NodeEndPos())
}
