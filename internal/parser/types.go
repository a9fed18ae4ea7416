package parser

import "fmt"

// TokenType names are kept in sync with tokenNames below; there is no
// generated stringer file for this enum.
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF
	ERROR

	// Identifiers + literals
	IDENTIFIER
	INT_LIT
	FLOAT_LIT
	STRING_LIT
	BOOL_LIT

	// Type keywords
	INT
	FLOAT
	DOUBLE
	CHAR
	VOID
	BOOL
	STRING

	// Qualifiers
	STATIC
	CONST

	// Statement keywords
	RETURN
	IF
	ELSE
	WHILE
	FOR
	BREAK

	// Operators
	PLUS
	INCREMENT
	MINUS
	DECREMENT
	ARROW
	STAR
	SLASH
	PERCENT
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	LESS_LESS
	GREATER
	GREATER_EQUAL
	GREATER_GREATER
	AND
	AMPERSAND
	OR
	PIPE
	CARET
	TILDE
	QUESTION
	COLON

	// Assignment operators
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL
	PERCENT_EQUAL

	// Separators
	COMMA
	DOT
	SEMICOLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET

	// Trivia and directives
	PREPROCESSOR
	COMMENT
)

var tokenNames = map[TokenType]string{
	ILLEGAL:         "ILLEGAL",
	EOF:             "EOF",
	ERROR:           "ERROR",
	IDENTIFIER:      "IDENTIFIER",
	INT_LIT:         "INT_LIT",
	FLOAT_LIT:       "FLOAT_LIT",
	STRING_LIT:      "STRING_LIT",
	BOOL_LIT:        "BOOL_LIT",
	INT:             "INT",
	FLOAT:           "FLOAT",
	DOUBLE:          "DOUBLE",
	CHAR:            "CHAR",
	VOID:            "VOID",
	BOOL:            "BOOL",
	STRING:          "STRING",
	STATIC:          "STATIC",
	CONST:           "CONST",
	RETURN:          "RETURN",
	IF:              "IF",
	ELSE:            "ELSE",
	WHILE:           "WHILE",
	FOR:             "FOR",
	BREAK:           "BREAK",
	PLUS:            "PLUS",
	INCREMENT:       "INCREMENT",
	MINUS:           "MINUS",
	DECREMENT:       "DECREMENT",
	ARROW:           "ARROW",
	STAR:            "STAR",
	SLASH:           "SLASH",
	PERCENT:         "PERCENT",
	BANG:            "BANG",
	BANG_EQUAL:      "BANG_EQUAL",
	EQUAL:           "EQUAL",
	EQUAL_EQUAL:     "EQUAL_EQUAL",
	LESS:            "LESS",
	LESS_EQUAL:      "LESS_EQUAL",
	LESS_LESS:       "LESS_LESS",
	GREATER:         "GREATER",
	GREATER_EQUAL:   "GREATER_EQUAL",
	GREATER_GREATER: "GREATER_GREATER",
	AND:             "AND",
	AMPERSAND:       "AMPERSAND",
	OR:              "OR",
	PIPE:            "PIPE",
	CARET:           "CARET",
	TILDE:           "TILDE",
	QUESTION:        "QUESTION",
	COLON:           "COLON",
	PLUS_EQUAL:      "PLUS_EQUAL",
	MINUS_EQUAL:     "MINUS_EQUAL",
	STAR_EQUAL:      "STAR_EQUAL",
	SLASH_EQUAL:     "SLASH_EQUAL",
	PERCENT_EQUAL:   "PERCENT_EQUAL",
	COMMA:           "COMMA",
	DOT:             "DOT",
	SEMICOLON:       "SEMICOLON",
	LEFT_PAREN:      "LEFT_PAREN",
	RIGHT_PAREN:     "RIGHT_PAREN",
	LEFT_BRACE:      "LEFT_BRACE",
	RIGHT_BRACE:     "RIGHT_BRACE",
	LEFT_BRACKET:    "LEFT_BRACKET",
	RIGHT_BRACKET:   "RIGHT_BRACKET",
	PREPROCESSOR:    "PREPROCESSOR",
	COMMENT:         "COMMENT",
}

// tokenSpellings holds the source text of fixed-spelling tokens, used in
// messages such as "expected ';'".
var tokenSpellings = map[TokenType]string{
	PLUS: "+", INCREMENT: "++", MINUS: "-", DECREMENT: "--", ARROW: "->",
	STAR: "*", SLASH: "/", PERCENT: "%", BANG: "!", BANG_EQUAL: "!=",
	EQUAL: "=", EQUAL_EQUAL: "==", LESS: "<", LESS_EQUAL: "<=", LESS_LESS: "<<",
	GREATER: ">", GREATER_EQUAL: ">=", GREATER_GREATER: ">>",
	AND: "&&", AMPERSAND: "&", OR: "||", PIPE: "|", CARET: "^", TILDE: "~",
	QUESTION: "?", COLON: ":",
	PLUS_EQUAL: "+=", MINUS_EQUAL: "-=", STAR_EQUAL: "*=", SLASH_EQUAL: "/=", PERCENT_EQUAL: "%=",
	COMMA: ",", DOT: ".", SEMICOLON: ";",
	LEFT_PAREN: "(", RIGHT_PAREN: ")", LEFT_BRACE: "{", RIGHT_BRACE: "}",
	LEFT_BRACKET: "[", RIGHT_BRACKET: "]",
	INT: "int", FLOAT: "float", DOUBLE: "double", CHAR: "char", VOID: "void",
	BOOL: "bool", STRING: "string", STATIC: "static", CONST: "const",
	RETURN: "return", IF: "if", ELSE: "else", WHILE: "while", FOR: "for", BREAK: "break",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Spelling returns the fixed source text of t, if it has one.
func (t TokenType) Spelling() (string, bool) {
	s, ok := tokenSpellings[t]
	return s, ok
}

// Describe returns the user-facing spelling of a token type: the quoted
// source text for punctuation and keywords, a category name otherwise.
func (t TokenType) Describe() string {
	if s, ok := tokenSpellings[t]; ok {
		return "'" + s + "'"
	}
	switch t {
	case IDENTIFIER:
		return "identifier"
	case INT_LIT:
		return "integer literal"
	case FLOAT_LIT:
		return "float literal"
	case STRING_LIT:
		return "string literal"
	case BOOL_LIT:
		return "boolean literal"
	case PREPROCESSOR:
		return "preprocessor directive"
	case EOF:
		return "end of file"
	default:
		return t.String()
	}
}

// IsTypeKeyword reports whether t names a primitive type.
func (t TokenType) IsTypeKeyword() bool {
	switch t {
	case INT, FLOAT, DOUBLE, CHAR, VOID, BOOL, STRING:
		return true
	}
	return false
}

// IsQualifier reports whether t is a storage or type qualifier.
func (t TokenType) IsQualifier() bool {
	return t == STATIC || t == CONST
}

// IsAssignOperator reports whether t is '=' or a compound assignment.
func (t TokenType) IsAssignOperator() bool {
	switch t {
	case EQUAL, PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL, PERCENT_EQUAL:
		return true
	}
	return false
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in runes
	Offset int // 0-based absolute index in input
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
