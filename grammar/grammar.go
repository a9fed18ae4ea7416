package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type directiveLine struct {
	Pos  lexer.Position
	Hash string         `@Hash`
	Body *directiveBody `@@`
}

type directiveBody struct {
	Include *includeDirective `  "include" @@`
	Define  *defineDirective  `| "define" @@`
	Ifdef   *string           `| "ifdef" @Ident`
	Ifndef  *string           `| "ifndef" @Ident`
	Undef   *string           `| "undef" @Ident`
	Else    bool              `| @"else"`
	Endif   bool              `| @"endif"`
}

type includeDirective struct {
	System *string `  @Header`
	Local  *string `| @String`
}

type defineDirective struct {
	Name *posIdent `@@`
	Body []string  `@( Ident | Number | String | Header | Punct | Hash )*`
}

type posIdent struct {
	Pos   lexer.Position
	Value string `@Ident`
}
