package lsp

import (
	"slices"
	"strings"
	"unicode/utf8"

	"minic/internal/ast"
	"minic/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

type role struct {
	tokenType string
	modifiers []string
}

// collectSemanticTokens classifies the token stream of text in source order.
// Identifiers take their role from the parsed unit; everything else is
// classified by token type alone.
func collectSemanticTokens(text string, unit *ast.TranslationUnit) []SemanticToken {
	roles := identifierRoles(unit)
	scanner := parser.NewScanner(text).WithComments()

	var tokens []SemanticToken
	for {
		tok := scanner.NextToken()
		if tok.Type == parser.EOF {
			return tokens
		}

		switch {
		case tok.Type == parser.COMMENT:
			tokens = append(tokens, splitLines(tok, "comment")...)
		case tok.Type == parser.PREPROCESSOR:
			tokens = append(tokens, splitLines(tok, "macro")...)
		case tok.Type == parser.IDENTIFIER:
			r, ok := roles[tok.Position.Offset]
			if !ok {
				r = role{tokenType: "variable"}
			}
			tokens = append(tokens, makeToken(tok, r.tokenType, r.modifiers...))
		default:
			if kind := classify(tok.Type); kind != "" {
				tokens = append(tokens, makeToken(tok, kind))
			}
		}
	}
}

func classify(tt parser.TokenType) string {
	switch {
	case tt >= parser.INT && tt <= parser.STRING:
		return "type"
	case tt == parser.STATIC || tt == parser.CONST:
		return "modifier"
	case tt >= parser.RETURN && tt <= parser.BREAK, tt == parser.BOOL_LIT:
		return "keyword"
	case tt == parser.INT_LIT || tt == parser.FLOAT_LIT:
		return "number"
	case tt == parser.STRING_LIT:
		return "string"
	case tt >= parser.PLUS && tt <= parser.PERCENT_EQUAL:
		return "operator"
	}
	return ""
}

// identifierRoles maps the offset of each declared or called name to its role.
func identifierRoles(unit *ast.TranslationUnit) map[int]role {
	roles := make(map[int]role)
	if unit == nil {
		return roles
	}

	varRole := func(d *ast.VarDecl) {
		mods := []string{"declaration"}
		if d.Type != nil && d.Type.Const {
			mods = append(mods, "readonly")
		}
		if d.Type != nil && d.Type.Static {
			mods = append(mods, "static")
		}
		roles[d.Name.Pos.Offset] = role{"variable", mods}
	}

	for _, decl := range unit.Decls {
		switch d := decl.(type) {
		case *ast.VarDecl:
			varRole(d)
		case *ast.FuncDecl:
			roles[d.Name.Pos.Offset] = role{"function", []string{"declaration"}}
			markParams(roles, d.Params)
		case *ast.FuncDef:
			mods := []string{"declaration", "definition"}
			if d.Return != nil && d.Return.Static {
				mods = append(mods, "static")
			}
			roles[d.Name.Pos.Offset] = role{"function", mods}
			params := markParams(roles, d.Params)
			if d.Body == nil {
				continue
			}

			ast.Inspect(d.Body, func(n ast.Node) bool {
				switch x := n.(type) {
				case *ast.VarDecl:
					varRole(x)
				case *ast.CallExpr:
					if callee, ok := x.Callee.(*ast.IdentExpr); ok {
						roles[callee.Pos.Offset] = role{tokenType: "function"}
					}
				case *ast.MemberExpr:
					roles[x.Name.Pos.Offset] = role{tokenType: "property"}
				case *ast.IdentExpr:
					if _, seen := roles[x.Pos.Offset]; !seen && slices.Contains(params, x.Name) {
						roles[x.Pos.Offset] = role{tokenType: "parameter"}
					}
				}
				return true
			})
		}
	}
	return roles
}

func markParams(roles map[int]role, params []*ast.Param) []string {
	var names []string
	for _, p := range params {
		if p.Name == nil {
			continue
		}
		roles[p.Name.Pos.Offset] = role{"parameter", []string{"declaration"}}
		names = append(names, p.Name.Value)
	}
	return names
}

// splitLines emits one token per line of a multi-line lexeme.
func splitLines(tok parser.Token, tokenType string) []SemanticToken {
	var tokens []SemanticToken
	line := uint32(tok.Position.Line - 1)
	start := uint32(tok.Position.Column - 1)
	for i, part := range strings.Split(tok.Lexeme, "\n") {
		if i > 0 {
			line++
			start = 0
		}
		part = strings.TrimSuffix(part, "\r")
		if part == "" {
			continue
		}
		tokens = append(tokens, SemanticToken{
			Line:      line,
			StartChar: start,
			Length:    uint32(utf8.RuneCountInString(part)),
			TokenType: indexOf(tokenType, SemanticTokenTypes),
		})
	}
	return tokens
}

// makeToken creates a semantic token covering the lexeme of tok
func makeToken(tok parser.Token, tokenType string, modifiers ...string) SemanticToken {
	mask := 0
	for _, m := range modifiers {
		mask |= 1 << indexOf(m, SemanticTokenModifiers)
	}
	return SemanticToken{
		Line:           uint32(tok.Position.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(tok.Position.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(utf8.RuneCountInString(tok.Lexeme)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: mask,
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	if i := slices.Index(list, target); i >= 0 {
		return i
	}
	return 0
}
