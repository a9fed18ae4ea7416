package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// DirectiveLexer tokenizes a single preprocessor line.
var DirectiveLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`, nil},

		{"Hash", `#`, nil},

		// <stdio.h>
		{"Header", `<[^<>\n]*>`, nil},

		// "util.h"
		{"String", `"(\\.|[^"\\\n])*"`, nil},

		// Keywords and Identifiers
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		{"Number", `[0-9]+(\.[0-9]*)?[a-zA-Z0-9_]*`, nil},

		// Any other single character except quotes
		{"Punct", `[^\sa-zA-Z0-9_"]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n\f\v]+`, nil},
	},
})
