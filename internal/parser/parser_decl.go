package parser

import (
	"errors"
	"fmt"

	"minic/grammar"
	"minic/internal/ast"
)

// parseExternal parses one directive or external declaration at file scope.
func (p *Parser) parseExternal(unit *ast.TranslationUnit) {
	tok := p.peek()
	switch {
	case tok.Type == PREPROCESSOR:
		p.advance()
		if d := p.parseDirective(tok); d != nil {
			unit.Directives = append(unit.Directives, d)
		}
	case tok.Type.IsTypeKeyword() || tok.Type.IsQualifier():
		if decl := p.parseExternalDecl(); decl != nil {
			unit.Decls = append(unit.Decls, decl)
		}
	case tok.Type == IDENTIFIER:
		p.errorAt(ExpectedTypeToken, tok,
			fmt.Sprintf("expected type specifier before %s", describeToken(tok)))
		p.synchronize(topLevelContext)
	default:
		p.errorUnexpected(tok)
		p.synchronize(topLevelContext)
	}
}

var directiveKinds = map[grammar.Kind]ast.DirectiveKind{
	grammar.Include: ast.DIRECTIVE_INCLUDE,
	grammar.Define:  ast.DIRECTIVE_DEFINE,
	grammar.Ifdef:   ast.DIRECTIVE_IFDEF,
	grammar.Ifndef:  ast.DIRECTIVE_IFNDEF,
	grammar.Undef:   ast.DIRECTIVE_UNDEF,
	grammar.Else:    ast.DIRECTIVE_ELSE,
	grammar.Endif:   ast.DIRECTIVE_ENDIF,
}

func (p *Parser) parseDirective(tok Token) *ast.Directive {
	d, err := grammar.ParseDirective(tok.Value)
	if err != nil {
		if errors.Is(err, grammar.ErrMissingIncludePath) {
			p.report(ExpectedStringLit, tok.End(), STRING_LIT, tok, err.Error())
			return nil
		}
		pos := tok.Position
		var se *grammar.SyntaxError
		if errors.As(err, &se) {
			pos.Column += se.Column - 1
			pos.Offset += se.Column - 1
		}
		p.report(UnexpectedToken, pos, ILLEGAL, tok, fmt.Sprintf("malformed directive: %s", err))
		return nil
	}

	return &ast.Directive{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Kind:   directiveKinds[d.Kind],
		Path:   d.Path,
		System: d.System,
		Name:   d.Name,
		Value:  d.Value,
		Text:   tok.Value,
	}
}

func (p *Parser) parseExternalDecl() ast.ExternalDecl {
	typ := p.parseTypeSpec(0)
	if typ == nil {
		p.synchronize(topLevelContext)
		return nil
	}
	if !p.check(IDENTIFIER) {
		p.consumeIdent("identifier after type")
		p.synchronize(topLevelContext)
		return nil
	}

	if p.peekAt(1).Type == LEFT_PAREN {
		return p.parseFunction(typ)
	}
	return p.parseVarDecl(typ, topLevelContext)
}

// parseTypeSpec parses qualifiers, a type keyword and pointer stars.
// A missing type keyword is ExpectedTypeToken at depth zero only.
func (p *Parser) parseTypeSpec(depth int) *ast.TypeSpec {
	start := p.peek()
	spec := &ast.TypeSpec{Pos: p.makePos(start)}

	for p.peek().Type.IsQualifier() {
		if p.advance().Type == STATIC {
			spec.Static = true
		} else {
			spec.Const = true
		}
	}

	tok := p.peek()
	if !tok.Type.IsTypeKeyword() {
		if p.isAtEnd() {
			p.unexpectedEOF(ILLEGAL)
		}
		if depth == 0 {
			p.errorAt(ExpectedTypeToken, tok, fmt.Sprintf("expected type specifier, found %s", describeToken(tok)))
		} else {
			p.errorUnexpected(tok)
		}
		return nil
	}
	p.advance()
	spec.Name = tok.Lexeme

	for p.match(STAR) {
		spec.Pointer++
	}
	spec.EndPos = p.prevEndPos()
	return spec
}

// parseFunction parses a prototype or definition; the cursor is on the name.
func (p *Parser) parseFunction(ret *ast.TypeSpec) ast.ExternalDecl {
	name := p.makeIdent(p.advance())
	params, unnamed := p.parseParams()

	if p.check(LEFT_BRACE) {
		for _, tok := range unnamed {
			p.errorAt(ExpectedIdentifier, tok,
				fmt.Sprintf("expected parameter name, found %s", describeToken(tok)))
		}
		body := p.parseBlock(0)
		return &ast.FuncDef{
			Pos:    ret.Pos,
			EndPos: body.EndPos,
			Return: ret,
			Name:   name,
			Params: params,
			Body:   body,
		}
	}

	decl := &ast.FuncDecl{
		Pos:    ret.Pos,
		EndPos: p.prevEndPos(),
		Return: ret,
		Name:   name,
		Params: params,
	}
	if p.endStatement(topLevelContext) {
		decl.EndPos = p.prevEndPos()
	}
	return decl
}

// parseParams parses "(...)" after a function name. It also returns, for each
// parameter without a name, the token where the name was expected.
func (p *Parser) parseParams() ([]*ast.Param, []Token) {
	p.advance() // '('

	if p.match(RIGHT_PAREN) {
		return nil, nil
	}
	if p.check(VOID) && p.peekAt(1).Type == RIGHT_PAREN {
		p.advance()
		p.advance()
		return nil, nil
	}

	var params []*ast.Param
	var unnamed []Token
	for {
		if typ := p.parseTypeSpec(0); typ != nil {
			param := &ast.Param{Pos: typ.Pos, EndPos: typ.EndPos, Type: typ}
			if tok, ok := p.consume(IDENTIFIER); ok {
				id := p.makeIdent(tok)
				param.Name = &id
				param.EndPos = id.EndPos
			} else {
				unnamed = append(unnamed, tok)
			}
			params = append(params, param)
		} else {
			p.synchronize(parenContext)
		}

		if p.match(COMMA) {
			continue
		}
		if p.match(RIGHT_PAREN) {
			return params, unnamed
		}
		if p.isAtEnd() {
			p.unexpectedEOF(RIGHT_PAREN)
		}
		p.errorMissing(RIGHT_PAREN)
		p.synchronize(parenContext)
		if p.match(COMMA) {
			continue
		}
		p.match(RIGHT_PAREN)
		return params, unnamed
	}
}

// parseVarDecl parses a declaration after its type, cursor on the name,
// including the terminating ';'. The declaration is kept when only the
// terminator is missing.
func (p *Parser) parseVarDecl(typ *ast.TypeSpec, ctx syncContext) *ast.VarDecl {
	decl := p.parseVarDeclBody(typ)
	if p.endStatement(ctx) {
		decl.EndPos = p.prevEndPos()
	}
	return decl
}

func (p *Parser) parseVarDeclBody(typ *ast.TypeSpec) *ast.VarDecl {
	decl := &ast.VarDecl{
		Pos:  typ.Pos,
		Type: typ,
		Name: p.makeIdent(p.advance()),
	}

	if p.match(LEFT_BRACKET) {
		size := p.parseExpr()
		if _, ok := size.(*ast.IntLit); !ok {
			if _, bad := size.(*ast.BadExpr); !bad {
				p.errorAtNode(ExpectedIntLit, size,
					fmt.Sprintf("array size of '%s' must be an integer literal, found %s", decl.Name.Value, size))
			}
		}
		decl.ArraySize = size
		p.expect(RIGHT_BRACKET)
	}

	if p.match(EQUAL) {
		decl.Init = p.parseAssignment()
		p.checkInitializer(decl)
	}

	decl.EndPos = p.prevEndPos()
	return decl
}

// endStatement consumes the ';' ending a declaration or statement. When it
// is missing the parser only skips ahead if the next token cannot start a
// construct in ctx.
func (p *Parser) endStatement(ctx syncContext) bool {
	if p.match(SEMICOLON) {
		return true
	}
	if p.isAtEnd() {
		p.unexpectedEOF(SEMICOLON)
	}
	p.errorMissing(SEMICOLON)
	if !canStart(ctx, p.peek()) {
		p.synchronize(ctx)
	}
	return false
}

// checkInitializer flags a literal initializer of the wrong family for a
// non-pointer primitive variable.
func (p *Parser) checkInitializer(decl *ast.VarDecl) {
	if decl.Type.Pointer > 0 || !ast.IsLiteral(decl.Init) {
		return
	}

	var kind DiagnosticKind
	var want string
	switch decl.Type.Name {
	case "int", "char":
		if _, ok := decl.Init.(*ast.FloatLit); !ok {
			return
		}
		kind, want = ExpectedIntLit, "integer literal"
	case "float", "double":
		switch decl.Init.(type) {
		case *ast.StringLit, *ast.BoolLit:
		default:
			return
		}
		kind, want = ExpectedFloatLit, "float literal"
	case "string":
		if _, ok := decl.Init.(*ast.StringLit); ok {
			return
		}
		kind, want = ExpectedStringLit, "string literal"
	case "bool":
		if _, ok := decl.Init.(*ast.BoolLit); ok {
			return
		}
		kind, want = ExpectedBoolLit, "boolean literal"
	default:
		return
	}

	p.errorAtNode(kind, decl.Init, fmt.Sprintf("expected %s to initialize %s '%s', found %s",
		want, decl.Type.Name, decl.Name.Value, decl.Init))
}

func (p *Parser) errorAtNode(kind DiagnosticKind, n ast.Node, message string) {
	start := n.NodePos()
	tok := Token{
		Lexeme:   n.String(),
		Position: Position{Line: start.Line, Column: start.Column, Offset: start.Offset},
	}
	p.report(kind, tok.Position, ILLEGAL, tok, message)
}
