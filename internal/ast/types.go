package ast

import "fmt"

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_EXPR

	// Top level
	TRANSLATION_UNIT
	DIRECTIVE

	// Declarations
	IDENT
	TYPE_SPEC
	PARAM
	VAR_DECL
	FUNC_DECL
	FUNC_DEF

	// Statements
	EXPR_STMT
	RETURN_STMT
	IF_STMT
	WHILE_STMT
	FOR_STMT
	BREAK_STMT
	BLOCK_STMT

	// Expressions
	ASSIGN_EXPR
	CONDITIONAL_EXPR
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR
	INDEX_EXPR
	MEMBER_EXPR
	INC_DEC_EXPR
	IDENT_EXPR
	INT_LIT
	FLOAT_LIT
	STRING_LIT
	BOOL_LIT
	PAREN_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:          "ILLEGAL",
	BAD_EXPR:         "BAD_EXPR",
	TRANSLATION_UNIT: "TRANSLATION_UNIT",
	DIRECTIVE:        "DIRECTIVE",
	IDENT:            "IDENT",
	TYPE_SPEC:        "TYPE_SPEC",
	PARAM:            "PARAM",
	VAR_DECL:         "VAR_DECL",
	FUNC_DECL:        "FUNC_DECL",
	FUNC_DEF:         "FUNC_DEF",
	EXPR_STMT:        "EXPR_STMT",
	RETURN_STMT:      "RETURN_STMT",
	IF_STMT:          "IF_STMT",
	WHILE_STMT:       "WHILE_STMT",
	FOR_STMT:         "FOR_STMT",
	BREAK_STMT:       "BREAK_STMT",
	BLOCK_STMT:       "BLOCK_STMT",
	ASSIGN_EXPR:      "ASSIGN_EXPR",
	CONDITIONAL_EXPR: "CONDITIONAL_EXPR",
	BINARY_EXPR:      "BINARY_EXPR",
	UNARY_EXPR:       "UNARY_EXPR",
	CALL_EXPR:        "CALL_EXPR",
	INDEX_EXPR:       "INDEX_EXPR",
	MEMBER_EXPR:      "MEMBER_EXPR",
	INC_DEC_EXPR:     "INC_DEC_EXPR",
	IDENT_EXPR:       "IDENT_EXPR",
	INT_LIT:          "INT_LIT",
	FLOAT_LIT:        "FLOAT_LIT",
	STRING_LIT:       "STRING_LIT",
	BOOL_LIT:         "BOOL_LIT",
	PAREN_EXPR:       "PAREN_EXPR",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}
