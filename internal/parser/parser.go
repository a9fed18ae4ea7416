package parser

import (
	"iter"
	"slices"

	"minic/internal/ast"
)

// Parser is a single-pass recursive-descent parser over a token slice.
// A Parser is used for one ParseTranslationUnit call.
type Parser struct {
	filename    string
	tokens      []Token
	current     int
	diagnostics []Diagnostic

	// braces maps the index of every '{' to its matching '}', or -1.
	braces []int
	// lexErrors maps a token index to the ERROR token dropped just before it.
	lexErrors map[int]Token

	// panicMode suppresses further diagnostics until the next statement or
	// declaration boundary.
	panicMode bool
}

// bailout unwinds the parse after an UnexpectedEOF.
type bailout struct{}

// NewParser prepares tokens for parsing. Comment tokens are dropped and
// ERROR tokens become scanner diagnostics. An EOF token is appended when
// the slice does not end with one.
func NewParser(filename string, tokens []Token) *Parser {
	p := &Parser{
		filename:  filename,
		tokens:    make([]Token, 0, len(tokens)+1),
		lexErrors: make(map[int]Token),
	}

	for _, tok := range tokens {
		switch tok.Type {
		case COMMENT:
			continue
		case ERROR:
			p.diagnostics = append(p.diagnostics, Diagnostic{
				Kind:     UnexpectedToken,
				Position: tok.Position,
				Message:  tok.Value,
				Expected: ILLEGAL,
				Found:    tok.Lexeme,
				Source:   SourceScanner,
			})
			p.lexErrors[len(p.tokens)] = tok
			continue
		}
		p.tokens = append(p.tokens, tok)
		if tok.Type == EOF {
			break
		}
	}

	if len(p.tokens) == 0 || p.tokens[len(p.tokens)-1].Type != EOF {
		eof := Token{Type: EOF, Position: Position{Line: 1, Column: 1}}
		if n := len(p.tokens); n > 0 {
			eof.Position = p.tokens[n-1].End()
		}
		p.tokens = append(p.tokens, eof)
	}
	p.braces = matchBraces(p.tokens)
	return p
}

// matchBraces pairs braces in one pass. Stray '}' are ignored.
func matchBraces(tokens []Token) []int {
	braces := make([]int, len(tokens))
	var open []int
	for i, tok := range tokens {
		braces[i] = -1
		switch tok.Type {
		case LEFT_BRACE:
			open = append(open, i)
		case RIGHT_BRACE:
			if n := len(open); n > 0 {
				braces[open[n-1]] = i
				open = open[:n-1]
			}
		}
	}
	return braces
}

// Parse consumes a token sequence and returns the translation unit together
// with every diagnostic found, ordered by position. It never fails: the unit
// is partial when the input is malformed.
func Parse(tokens iter.Seq[Token]) (*ast.TranslationUnit, []Diagnostic) {
	return NewParser("", slices.Collect(tokens)).ParseTranslationUnit()
}

// ParseSource tokenizes and parses source. The filename is recorded in AST positions.
func ParseSource(filename string, source string) (*ast.TranslationUnit, []Diagnostic) {
	return NewParser(filename, NewScanner(source).ScanTokens()).ParseTranslationUnit()
}

func (p *Parser) ParseTranslationUnit() (unit *ast.TranslationUnit, diags []Diagnostic) {
	unit = &ast.TranslationUnit{
		Pos:   p.makePos(p.peek()),
		Decls: []ast.ExternalDecl{},
	}

	// An UnexpectedEOF unwinds to here; everything completed so far is kept.
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
		unit.EndPos = p.makePos(p.tokens[len(p.tokens)-1])
		diags = sortDiagnostics(p.diagnostics)
	}()

	for !p.isAtEnd() {
		p.panicMode = false
		start := p.current
		p.parseExternal(unit)
		if p.current == start {
			p.advance()
		}
	}
	return unit, nil
}

// Diagnostics returns the diagnostics recorded so far in detection order.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}
