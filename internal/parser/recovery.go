package parser

import "slices"

// syncContext selects the tokens error recovery may resume at.
type syncContext int

const (
	topLevelContext syncContext = iota
	blockContext
	parenContext // call arguments, parameter lists, parenthesized headers
)

var syncTokens = map[syncContext][]TokenType{
	topLevelContext: {INT, FLOAT, DOUBLE, CHAR, VOID, BOOL, STRING, STATIC, CONST, PREPROCESSOR, EOF},
	blockContext:    {SEMICOLON, RIGHT_BRACE},
	parenContext:    {COMMA, RIGHT_PAREN, LEFT_BRACE, SEMICOLON, RIGHT_BRACE},
}

// statementStarts are the tokens that may begin a statement inside a block.
var statementStarts = []TokenType{
	IDENTIFIER, RETURN, IF, WHILE, FOR, BREAK, LEFT_BRACE, RIGHT_BRACE,
	INT, FLOAT, DOUBLE, CHAR, VOID, BOOL, STRING, STATIC, CONST,
}

func isSyncToken(ctx syncContext, tt TokenType) bool {
	return slices.Contains(syncTokens[ctx], tt)
}

// canStart reports whether tok can begin the next construct in ctx, in which
// case a missing terminator needs no skipping.
func canStart(ctx syncContext, tok Token) bool {
	switch ctx {
	case topLevelContext:
		return isSyncToken(ctx, tok.Type)
	case blockContext:
		return slices.Contains(statementStarts, tok.Type)
	}
	return false
}

// synchronize skips tokens until one that is synchronizing for ctx. A block
// ';' is consumed; every other synchronizing token is left for the caller.
// In the paren context ',' and ')' only count at nesting depth zero.
// Brace groups met along the way are skipped whole.
func (p *Parser) synchronize(ctx syncContext) {
	depth := 0
	for !p.isAtEnd() {
		tt := p.peek().Type

		if ctx == parenContext {
			switch tt {
			case LEFT_PAREN:
				depth++
				p.advance()
				continue
			case RIGHT_PAREN, COMMA:
				if depth > 0 {
					if tt == RIGHT_PAREN {
						depth--
					}
					p.advance()
					continue
				}
			}
		}

		if isSyncToken(ctx, tt) {
			if ctx == blockContext && tt == SEMICOLON {
				p.advance()
			}
			return
		}
		if tt == LEFT_BRACE {
			p.skipBraceGroup()
			continue
		}
		p.advance()
	}
}

// skipBraceGroup moves past the '{' at the cursor and its matching '}'.
func (p *Parser) skipBraceGroup() {
	closing := p.findMatchingBrace(p.current)
	if closing < 0 {
		p.current = len(p.tokens) - 1
		return
	}
	p.current = closing + 1
}

// skipToHeaderEnd skips the rest of a parenthesized header and consumes its
// ')'. It stops without consuming at a brace.
func (p *Parser) skipToHeaderEnd() {
	depth := 0
	for !p.isAtEnd() {
		switch p.peek().Type {
		case LEFT_BRACE, RIGHT_BRACE:
			return
		case LEFT_PAREN:
			depth++
		case RIGHT_PAREN:
			if depth == 0 {
				p.advance()
				return
			}
			depth--
		}
		p.advance()
	}
}

// findMatchingBrace returns the index of the '}' matching the '{' at open,
// or -1 when the input ends first.
func (p *Parser) findMatchingBrace(open int) int {
	if open < 0 || open >= len(p.tokens) || p.tokens[open].Type != LEFT_BRACE {
		return -1
	}
	return p.braces[open]
}
