package parser

var KEYWORDS = map[string]TokenType{
	"int":    INT,
	"float":  FLOAT,
	"double": DOUBLE,
	"char":   CHAR,
	"void":   VOID,
	"bool":   BOOL,
	"string": STRING,
	"static": STATIC,
	"const":  CONST,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"break":  BREAK,
	"true":   BOOL_LIT,
	"false":  BOOL_LIT,
}
