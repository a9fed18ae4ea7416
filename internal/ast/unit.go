package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// TranslationUnit is the root of one parsed source file.
// Decls is never nil, even when parsing stopped early.
type TranslationUnit struct {
	Pos        Position
	EndPos     Position
	Directives []*Directive
	Decls      []ExternalDecl
}

type DirectiveKind int

const (
	DIRECTIVE_INCLUDE DirectiveKind = iota
	DIRECTIVE_DEFINE
	DIRECTIVE_IFDEF
	DIRECTIVE_IFNDEF
	DIRECTIVE_UNDEF
	DIRECTIVE_ELSE
	DIRECTIVE_ENDIF
)

func (k DirectiveKind) String() string {
	switch k {
	case DIRECTIVE_INCLUDE:
		return "include"
	case DIRECTIVE_DEFINE:
		return "define"
	case DIRECTIVE_IFDEF:
		return "ifdef"
	case DIRECTIVE_IFNDEF:
		return "ifndef"
	case DIRECTIVE_UNDEF:
		return "undef"
	case DIRECTIVE_ELSE:
		return "else"
	case DIRECTIVE_ENDIF:
		return "endif"
	default:
		return "unknown"
	}
}

// Directive is a decoded preprocessor line.
// Example: "#include <stdio.h>", "#define MAX 100", "#endif"
type Directive struct {
	Pos    Position
	EndPos Position
	Kind   DirectiveKind
	Path   string // include target without delimiters
	System bool   // <...> rather than "..."
	Name   string // macro name for define/ifdef/ifndef/undef
	Value  string // replacement text for define
	Text   string // the directive line as written
}

// Ident is a declared or referenced name outside expression position.
// Example: "main", "x" in "int x;"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// TypeSpec is a qualified primitive type with optional pointer levels.
// Example: "static const int", "char*"
type TypeSpec struct {
	Pos     Position
	EndPos  Position
	Static  bool
	Const   bool
	Name    string
	Pointer int
}

// VarDecl declares one variable, at top level or as a statement.
// Example: "int x = 5;", "float buf[16];"
type VarDecl struct {
	Pos       Position
	EndPos    Position
	Type      *TypeSpec
	Name      Ident
	ArraySize Expr
	Init      Expr
}

// Param is a function parameter; Name is nil in unnamed prototype parameters.
type Param struct {
	Pos    Position
	EndPos Position
	Type   *TypeSpec
	Name   *Ident
}

// FuncDecl is a prototype.
// Example: "int add(int a, int b);"
type FuncDecl struct {
	Pos    Position
	EndPos Position
	Return *TypeSpec
	Name   Ident
	Params []*Param
}

// FuncDef is a function with a body.
// Example: "int main() { return 0; }"
type FuncDef struct {
	Pos    Position
	EndPos Position
	Return *TypeSpec
	Name   Ident
	Params []*Param
	Body   *BlockStmt
}

// Statements

type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a bare return
}

type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Stmt
	Else   Stmt // nil without an else branch
}

type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   Stmt
}

// ForStmt has three optional clauses. Init is a *VarDecl or *ExprStmt.
type ForStmt struct {
	Pos    Position
	EndPos Position
	Init   Stmt
	Cond   Expr
	Update Expr
	Body   Stmt
}

type BreakStmt struct {
	Pos    Position
	EndPos Position
}

type BlockStmt struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// Expressions

// AssignExpr is right-associative: "x = y = 5" nests in Value.
type AssignExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Op     AssignType
	Value  Expr
}

// ConditionalExpr is "cond ? then : else".
type ConditionalExpr struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Expr
	Else   Expr
}

type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// UnaryExpr is a prefix operator: + - ! ~ & * ++ --
type UnaryExpr struct {
	Pos     Position
	EndPos  Position
	Op      string
	Operand Expr
}

type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

type IndexExpr struct {
	Pos    Position
	EndPos Position
	Base   Expr
	Index  Expr
}

// MemberExpr is "base.name", or "base->name" when Arrow is set.
type MemberExpr struct {
	Pos    Position
	EndPos Position
	Base   Expr
	Name   Ident
	Arrow  bool
}

// IncDecExpr is a postfix "++" or "--".
type IncDecExpr struct {
	Pos     Position
	EndPos  Position
	Op      string
	Operand Expr
}

type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

type IntLit struct {
	Pos    Position
	EndPos Position
	Value  int64
	Raw    string
}

type FloatLit struct {
	Pos    Position
	EndPos Position
	Value  float64
	Raw    string
}

// StringLit holds the unescaped contents; Raw is the quoted source text.
type StringLit struct {
	Pos    Position
	EndPos Position
	Value  string
	Raw    string
}

type BoolLit struct {
	Pos    Position
	EndPos Position
	Value  bool
}

type ParenExpr struct {
	Pos    Position
	EndPos Position
	Inner  Expr
}

// BadExpr stands in for an operand that failed to parse.
type BadExpr struct {
	Pos     Position
	EndPos  Position
	Message string
}
