package parser

import (
	"fmt"

	"minic/internal/ast"
)

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances only when the current token has type tt.
func (p *Parser) consume(tt TokenType) (Token, bool) {
	if p.check(tt) {
		return p.advance(), true
	}
	return p.peek(), false
}

// expect consumes tt or reports it missing. At EOF the parse stops.
func (p *Parser) expect(tt TokenType) (Token, bool) {
	if tok, ok := p.consume(tt); ok {
		return tok, true
	}
	if p.isAtEnd() {
		p.unexpectedEOF(tt)
	}
	p.errorMissing(tt)
	return p.peek(), false
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

// peekAt looks offset tokens ahead; past the end it returns EOF.
func (p *Parser) peekAt(offset int) Token {
	i := p.current + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) previous() Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// Diagnostics

func (p *Parser) report(kind DiagnosticKind, pos Position, expected TokenType, found Token, message string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Kind:     kind,
		Position: pos,
		Message:  message,
		Expected: expected,
		Found:    found.Lexeme,
		Source:   SourceParser,
	})
}

// errorMissing reports FailedToFindToken just past the previous token.
func (p *Parser) errorMissing(tt TokenType) {
	pos := p.peek().Position
	if p.current > 0 {
		pos = p.previous().End()
	}
	found := p.peek()
	p.report(FailedToFindToken, pos, tt, found,
		fmt.Sprintf("expected %s, found %s", tt.Describe(), describeToken(found)))
}

func (p *Parser) errorUnexpected(tok Token) {
	p.report(UnexpectedToken, tok.Position, ILLEGAL, tok,
		fmt.Sprintf("unexpected %s", describeToken(tok)))
}

func (p *Parser) errorAt(kind DiagnosticKind, tok Token, message string) {
	p.report(kind, tok.Position, ILLEGAL, tok, message)
}

// unexpectedEOF records an UnexpectedEOF and abandons the parse.
func (p *Parser) unexpectedEOF(expected TokenType) {
	eof := p.peek()
	message := "unexpected end of file"
	if expected != ILLEGAL {
		message = fmt.Sprintf("unexpected end of file, expected %s", expected.Describe())
	}
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Kind:     UnexpectedEOF,
		Position: eof.Position,
		Message:  message,
		Expected: expected,
		Source:   SourceParser,
	})
	panic(bailout{})
}

// Positions

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	end := tok.End()
	return ast.Position{
		Filename: p.filename,
		Offset:   end.Offset,
		Line:     end.Line,
		Column:   end.Column,
	}
}

// prevEndPos is the end of the last consumed token.
func (p *Parser) prevEndPos() ast.Position {
	return p.makeEndPos(p.previous())
}

// Helper functions to reduce repetitive AST node creation

func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier or reports ExpectedIdentifier.
func (p *Parser) consumeIdent(what string) (ast.Ident, bool) {
	tok, ok := p.consume(IDENTIFIER)
	if ok {
		return p.makeIdent(tok), true
	}
	if p.isAtEnd() {
		p.unexpectedEOF(IDENTIFIER)
	}
	p.errorAt(ExpectedIdentifier, tok, fmt.Sprintf("expected %s, found %s", what, describeToken(tok)))
	return ast.Ident{}, false
}
