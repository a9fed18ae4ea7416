package parser

import (
	"fmt"
	"strconv"

	"minic/internal/ast"
)

// binaryPrecedence orders the infix operators from loosest to tightest.
// Assignment and the conditional operator sit below these levels.
var binaryPrecedence = map[TokenType]int{
	OR:          1,
	AND:         2,
	PIPE:        3,
	CARET:       4,
	AMPERSAND:   5,
	EQUAL_EQUAL: 6, BANG_EQUAL: 6,
	LESS: 7, LESS_EQUAL: 7, GREATER: 7, GREATER_EQUAL: 7,
	LESS_LESS: 8, GREATER_GREATER: 8,
	PLUS: 9, MINUS: 9,
	STAR: 10, SLASH: 10, PERCENT: 10,
}

var assignOperators = map[TokenType]ast.AssignType{
	EQUAL:         ast.ASSIGN,
	PLUS_EQUAL:    ast.PLUS_ASSIGN,
	MINUS_EQUAL:   ast.MINUS_ASSIGN,
	STAR_EQUAL:    ast.STAR_ASSIGN,
	SLASH_EQUAL:   ast.SLASH_ASSIGN,
	PERCENT_EQUAL: ast.PERCENT_ASSIGN,
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is right-associative: "x = y = 5" assigns y first.
func (p *Parser) parseAssignment() ast.Expr {
	target := p.parseConditional()
	if !p.peek().Type.IsAssignOperator() {
		return target
	}

	op := p.advance()
	if _, bad := target.(*ast.BadExpr); !bad && !ast.IsAssignable(target) {
		p.report(UnexpectedToken, op.Position, ILLEGAL, op,
			fmt.Sprintf("cannot assign to %s", target))
	}
	value := p.parseAssignment()

	return &ast.AssignExpr{
		Pos:    target.NodePos(),
		EndPos: value.NodeEndPos(),
		Target: target,
		Op:     assignOperators[op.Type],
		Value:  value,
	}
}

func (p *Parser) parseConditional() ast.Expr {
	cond := p.parseBinary(1)
	if !p.match(QUESTION) {
		return cond
	}

	then := p.parseExpr()
	var elseExpr ast.Expr
	if _, ok := p.expect(COLON); ok {
		elseExpr = p.parseConditional()
	} else {
		elseExpr = p.badExpr(p.peek(), "missing ':' in conditional expression")
	}

	return &ast.ConditionalExpr{
		Pos:    cond.NodePos(),
		EndPos: elseExpr.NodeEndPos(),
		Cond:   cond,
		Then:   then,
		Else:   elseExpr,
	}
}

// parseBinary climbs the precedence table. '&' and '*' only reach this loop
// after a complete operand, so here they are always infix.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	expr := p.parseUnary()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Type]
		if !ok || prec < minPrec {
			return expr
		}

		p.advance()
		right := p.parseBinary(prec + 1)

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	switch op := p.peek(); op.Type {
	case PLUS, MINUS, BANG, TILDE, AMPERSAND, STAR, INCREMENT, DECREMENT:
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{
			Pos:     p.makePos(op),
			EndPos:  operand.NodeEndPos(),
			Op:      op.Lexeme,
			Operand: operand,
		}
	}

	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) parsePostfix(expr ast.Expr) ast.Expr {
	for {
		switch p.peek().Type {
		case LEFT_PAREN:
			p.advance()
			args, end := p.parseCallArgs()
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: end,
				Callee: expr,
				Args:   args,
			}
		case LEFT_BRACKET:
			p.advance()
			index := p.parseExpr()
			end := index.NodeEndPos()
			if tok, ok := p.expect(RIGHT_BRACKET); ok {
				end = p.makeEndPos(tok)
			}
			expr = &ast.IndexExpr{
				Pos:    expr.NodePos(),
				EndPos: end,
				Base:   expr,
				Index:  index,
			}
		case DOT, ARROW:
			op := p.advance()
			name, ok := p.consumeIdent(fmt.Sprintf("member name after %s", op.Type.Describe()))
			if !ok {
				return expr
			}
			expr = &ast.MemberExpr{
				Pos:    expr.NodePos(),
				EndPos: name.EndPos,
				Base:   expr,
				Name:   name,
				Arrow:  op.Type == ARROW,
			}
		case INCREMENT, DECREMENT:
			op := p.advance()
			expr = &ast.IncDecExpr{
				Pos:     expr.NodePos(),
				EndPos:  p.makeEndPos(op),
				Op:      op.Lexeme,
				Operand: expr,
			}
		default:
			return expr
		}
	}
}

// parseCallArgs parses arguments after '(' and returns the end of the call.
func (p *Parser) parseCallArgs() ([]ast.Expr, ast.Position) {
	var args []ast.Expr
	if tok, ok := p.consume(RIGHT_PAREN); ok {
		return args, p.makeEndPos(tok)
	}

	for {
		args = append(args, p.parseAssignment())
		if p.match(COMMA) {
			continue
		}
		if tok, ok := p.consume(RIGHT_PAREN); ok {
			return args, p.makeEndPos(tok)
		}
		if p.isAtEnd() {
			p.unexpectedEOF(RIGHT_PAREN)
		}
		p.errorMissing(RIGHT_PAREN)
		p.synchronize(parenContext)
		if p.match(COMMA) {
			continue
		}
		if tok, ok := p.consume(RIGHT_PAREN); ok {
			return args, p.makeEndPos(tok)
		}
		return args, p.prevEndPos()
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Type {
	case IDENTIFIER:
		p.advance()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}
	case INT_LIT:
		p.advance()
		value, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		return &ast.IntLit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  value,
			Raw:    tok.Lexeme,
		}
	case FLOAT_LIT:
		p.advance()
		value, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.FloatLit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  value,
			Raw:    tok.Lexeme,
		}
	case STRING_LIT:
		p.advance()
		return &ast.StringLit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Value,
			Raw:    tok.Lexeme,
		}
	case BOOL_LIT:
		p.advance()
		return &ast.BoolLit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Lexeme == "true",
		}
	case LEFT_PAREN:
		p.advance()
		inner := p.parseExpr()
		end := inner.NodeEndPos()
		if r, ok := p.expect(RIGHT_PAREN); ok {
			end = p.makeEndPos(r)
		}
		return &ast.ParenExpr{
			Pos:    p.makePos(tok),
			EndPos: end,
			Inner:  inner,
		}
	case EOF:
		p.unexpectedEOF(ILLEGAL)
	}

	// The operand was a lexical error; the scanner already reported it.
	if errTok, ok := p.lexErrors[p.current]; ok {
		return p.badExpr(errTok, errTok.Value)
	}

	message := fmt.Sprintf("expected expression, found %s", describeToken(tok))
	p.report(UnexpectedToken, tok.Position, ILLEGAL, tok, message)
	return p.badExpr(tok, message)
}

// badExpr builds a placeholder at tok without consuming it.
func (p *Parser) badExpr(tok Token, message string) *ast.BadExpr {
	pos := p.makePos(tok)
	return &ast.BadExpr{Pos: pos, EndPos: pos, Message: message}
}
