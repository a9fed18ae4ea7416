package parser

import (
	"minic/internal/ast"
)

// parseBlock parses "{ ... }" with the cursor on '{'. The matching '}' is
// located first; statements are parsed up to it and the cursor always ends
// just past it, whatever happened inside.
func (p *Parser) parseBlock(depth int) *ast.BlockStmt {
	lbrace := p.advance()
	closing := p.findMatchingBrace(p.current - 1)
	limit := closing
	if limit < 0 {
		limit = len(p.tokens) - 1
	}

	block := &ast.BlockStmt{Pos: p.makePos(lbrace)}
	for p.current < limit {
		p.panicMode = false
		start := p.current
		if stmt := p.parseStatement(depth + 1); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
		if p.current == start {
			p.advance()
		}
	}

	if closing < 0 {
		p.unexpectedEOF(RIGHT_BRACE)
	}
	p.current = closing
	block.EndPos = p.makeEndPos(p.advance())
	return block
}

// parseStatement dispatches on the leading token. It returns nil for an
// empty statement or when nothing usable was parsed.
func (p *Parser) parseStatement(depth int) ast.Stmt {
	tok := p.peek()
	if tok.Type.IsTypeKeyword() || tok.Type.IsQualifier() {
		return p.parseLocalDecl(depth)
	}

	switch tok.Type {
	case RETURN:
		return p.parseReturn()
	case IF:
		return p.parseIf(depth)
	case WHILE:
		return p.parseWhile(depth)
	case FOR:
		return p.parseFor(depth)
	case BREAK:
		return p.parseBreak()
	case LEFT_BRACE:
		return p.parseBlock(depth)
	case SEMICOLON:
		p.advance()
		return nil
	case PREPROCESSOR, ELSE:
		p.errorUnexpected(tok)
		p.advance()
		return nil
	case RIGHT_BRACE:
		// Owned by the enclosing block.
		p.errorUnexpected(tok)
		return nil
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLocalDecl(depth int) ast.Stmt {
	typ := p.parseTypeSpec(depth)
	if typ == nil {
		p.synchronize(blockContext)
		return nil
	}
	if !p.check(IDENTIFIER) {
		p.consumeIdent("variable name")
		p.synchronize(blockContext)
		return nil
	}
	return p.parseVarDecl(typ, blockContext)
}

func (p *Parser) parseReturn() ast.Stmt {
	kw := p.advance()
	stmt := &ast.ReturnStmt{Pos: p.makePos(kw)}

	if !p.check(SEMICOLON) && !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		stmt.Value = p.parseExpr()
	}
	stmt.EndPos = p.prevEndPos()
	if p.endStatement(blockContext) {
		stmt.EndPos = p.prevEndPos()
	}
	return stmt
}

func (p *Parser) parseBreak() ast.Stmt {
	kw := p.advance()
	stmt := &ast.BreakStmt{Pos: p.makePos(kw), EndPos: p.makeEndPos(kw)}
	if p.endStatement(blockContext) {
		stmt.EndPos = p.prevEndPos()
	}
	return stmt
}

func (p *Parser) parseIf(depth int) ast.Stmt {
	kw := p.advance()
	stmt := &ast.IfStmt{Pos: p.makePos(kw)}
	stmt.Cond = p.parseCondition()
	stmt.Then = p.parseBody(depth)
	if p.match(ELSE) {
		stmt.Else = p.parseBody(depth)
	}
	stmt.EndPos = p.prevEndPos()
	return stmt
}

func (p *Parser) parseWhile(depth int) ast.Stmt {
	kw := p.advance()
	stmt := &ast.WhileStmt{Pos: p.makePos(kw)}
	stmt.Cond = p.parseCondition()
	stmt.Body = p.parseBody(depth)
	stmt.EndPos = p.prevEndPos()
	return stmt
}

// parseCondition parses "( expr )". After a failure the rest of the header is skipped.
func (p *Parser) parseCondition() ast.Expr {
	p.expect(LEFT_PAREN)
	cond := p.parseExpr()
	if _, ok := p.expect(RIGHT_PAREN); !ok {
		p.skipToHeaderEnd()
	}
	return cond
}

func (p *Parser) parseFor(depth int) ast.Stmt {
	kw := p.advance()
	stmt := &ast.ForStmt{Pos: p.makePos(kw)}

	if _, ok := p.expect(LEFT_PAREN); !ok || !p.parseForHeader(stmt, depth) {
		p.skipToHeaderEnd()
	}
	stmt.Body = p.parseBody(depth)
	stmt.EndPos = p.prevEndPos()
	return stmt
}

// parseForHeader parses "init; cond; update)" with every clause optional.
func (p *Parser) parseForHeader(stmt *ast.ForStmt, depth int) bool {
	switch tok := p.peek(); {
	case tok.Type == SEMICOLON:
		p.advance()
	case tok.Type.IsTypeKeyword() || tok.Type.IsQualifier():
		typ := p.parseTypeSpec(depth)
		if typ == nil {
			return false
		}
		if !p.check(IDENTIFIER) {
			p.consumeIdent("variable name")
			return false
		}
		decl := p.parseVarDeclBody(typ)
		stmt.Init = decl
		if _, ok := p.expect(SEMICOLON); !ok {
			return false
		}
		decl.EndPos = p.prevEndPos()
	default:
		init := p.parseExpr()
		stmt.Init = &ast.ExprStmt{Pos: init.NodePos(), EndPos: init.NodeEndPos(), Expr: init}
		if _, ok := p.expect(SEMICOLON); !ok {
			return false
		}
	}

	if !p.check(SEMICOLON) {
		stmt.Cond = p.parseExpr()
	}
	if _, ok := p.expect(SEMICOLON); !ok {
		return false
	}

	if !p.check(RIGHT_PAREN) {
		stmt.Update = p.parseExpr()
	}
	_, ok := p.expect(RIGHT_PAREN)
	return ok
}

// parseBody parses the statement governed by if/else/while/for. An empty
// statement becomes an empty block so the owner always has a body.
func (p *Parser) parseBody(depth int) ast.Stmt {
	if tok, ok := p.consume(SEMICOLON); ok {
		return &ast.BlockStmt{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}
	}
	if p.isAtEnd() {
		p.unexpectedEOF(ILLEGAL)
	}
	if stmt := p.parseStatement(depth); stmt != nil {
		return stmt
	}
	return &ast.BlockStmt{Pos: p.prevEndPos(), EndPos: p.prevEndPos()}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr()
	stmt := &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: expr.NodeEndPos(),
		Expr:   expr,
	}
	if p.endStatement(blockContext) {
		stmt.EndPos = p.prevEndPos()
	}
	return stmt
}
