package parser

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Token struct {
	Type     TokenType
	Lexeme   string   // exact source span
	Value    string   // decoded string contents, directive text, or error message
	Position Position // start of the lexeme
}

// End returns the position just past the token's lexeme. Tokens never span
// lines except block comments, which the parser does not see.
func (t Token) End() Position {
	end := Position{
		Line:   t.Position.Line,
		Column: t.Position.Column + utf8.RuneCountInString(t.Lexeme),
		Offset: t.Position.Offset + len(t.Lexeme),
	}
	// Block comments and directives may span lines.
	if i := strings.LastIndexByte(t.Lexeme, '\n'); i >= 0 {
		end.Line += strings.Count(t.Lexeme, "\n")
		end.Column = 1 + utf8.RuneCountInString(t.Lexeme[i+1:])
	}
	return end
}

// Scanner is a hand-written state machine over the source bytes. It never
// fails: malformed input becomes ERROR tokens and scanning always reaches EOF.
type Scanner struct {
	source      string
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	comments    bool
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// WithComments makes NextToken report COMMENT tokens instead of skipping them.
func (s *Scanner) WithComments() *Scanner {
	s.comments = true
	return s
}

// Tokenize returns the lazy token sequence for source, ending with EOF.
// Comments are skipped. Each iteration starts a fresh Scanner.
func Tokenize(source string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := NewScanner(source)
		for {
			tok := s.NextToken()
			if !yield(tok) || tok.Type == EOF {
				return
			}
		}
	}
}

func (s *Scanner) ScanTokens() []Token {
	var tokens []Token
	for {
		tok := s.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// NextToken scans and returns the next token. Once the input is exhausted
// every call returns EOF.
func (s *Scanner) NextToken() Token {
	for {
		s.skipWhitespace()
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column

		if s.isAtEnd() {
			return s.makeToken(EOF)
		}
		if tok, ok := s.scanToken(); ok {
			return tok
		}
	}
}

// scanToken scans one lexeme. It reports false when the lexeme was a comment
// that should not be surfaced.
func (s *Scanner) scanToken() (Token, bool) {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		return s.makeToken(LEFT_PAREN), true
	case ')':
		return s.makeToken(RIGHT_PAREN), true
	case '{':
		return s.makeToken(LEFT_BRACE), true
	case '}':
		return s.makeToken(RIGHT_BRACE), true
	case '[':
		return s.makeToken(LEFT_BRACKET), true
	case ']':
		return s.makeToken(RIGHT_BRACKET), true
	case ',':
		return s.makeToken(COMMA), true
	case '.':
		return s.makeToken(DOT), true
	case ';':
		return s.makeToken(SEMICOLON), true
	case '?':
		return s.makeToken(QUESTION), true
	case ':':
		return s.makeToken(COLON), true
	case '^':
		return s.makeToken(CARET), true
	case '~':
		return s.makeToken(TILDE), true

	// Operators with potential multi-character variants
	case '-':
		return s.scanMinusOperator(), true
	case '+':
		return s.scanPlusOperator(), true
	case '*':
		return s.pick('=', STAR_EQUAL, STAR), true
	case '%':
		return s.pick('=', PERCENT_EQUAL, PERCENT), true
	case '!':
		return s.pick('=', BANG_EQUAL, BANG), true
	case '=':
		return s.pick('=', EQUAL_EQUAL, EQUAL), true
	case '&':
		return s.pick('&', AND, AMPERSAND), true
	case '|':
		return s.pick('|', OR, PIPE), true
	case '<':
		return s.scanLessOperator(), true
	case '>':
		return s.scanGreaterOperator(), true
	case '/':
		return s.scanSlashOperator()

	case '"':
		return s.scanString(), true
	case '#':
		return s.scanDirective(), true

	default:
		return s.scanDefault(c), true
	}
}

// Operator scanning methods

// pick returns the two-character token when the next byte is next,
// otherwise the single-character one.
func (s *Scanner) pick(next byte, double, single TokenType) Token {
	if s.matchNext(next) {
		return s.makeToken(double)
	}
	return s.makeToken(single)
}

func (s *Scanner) scanMinusOperator() Token {
	if s.matchNext('-') {
		return s.makeToken(DECREMENT)
	} else if s.matchNext('=') {
		return s.makeToken(MINUS_EQUAL)
	} else if s.matchNext('>') {
		return s.makeToken(ARROW)
	}
	return s.makeToken(MINUS)
}

func (s *Scanner) scanPlusOperator() Token {
	if s.matchNext('+') {
		return s.makeToken(INCREMENT)
	} else if s.matchNext('=') {
		return s.makeToken(PLUS_EQUAL)
	}
	return s.makeToken(PLUS)
}

func (s *Scanner) scanLessOperator() Token {
	if s.matchNext('=') {
		return s.makeToken(LESS_EQUAL)
	} else if s.matchNext('<') {
		return s.makeToken(LESS_LESS)
	}
	return s.makeToken(LESS)
}

func (s *Scanner) scanGreaterOperator() Token {
	if s.matchNext('=') {
		return s.makeToken(GREATER_EQUAL)
	} else if s.matchNext('>') {
		return s.makeToken(GREATER_GREATER)
	}
	return s.makeToken(GREATER)
}

func (s *Scanner) scanSlashOperator() (Token, bool) {
	if s.matchNext('=') {
		return s.makeToken(SLASH_EQUAL), true
	} else if s.matchNext('/') {
		for s.peek() != '\n' && !s.isAtEnd() {
			s.advance()
		}
		return s.makeToken(COMMENT), s.comments
	} else if s.matchNext('*') {
		return s.scanBlockComment()
	}
	return s.makeToken(SLASH), true
}

func (s *Scanner) scanBlockComment() (Token, bool) {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return s.makeToken(COMMENT), s.comments
		}
		s.advance()
	}
	return s.errorToken("unterminated block comment"), true
}

func (s *Scanner) scanDefault(c byte) Token {
	if isDigit(c) {
		return s.scanNumber()
	}
	if isAlpha(c) {
		return s.scanIdentifier()
	}
	// Swallow the rest of a multi-byte rune so the error covers one character.
	for !s.isAtEnd() && isContinuation(s.peek()) {
		s.advance()
	}
	return s.errorToken(fmt.Sprintf("unexpected character %q", s.source[s.start:s.current]))
}

func (s *Scanner) scanIdentifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(lookupIdentifier(s.source[s.start:s.current]))
}

func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A '.' belongs to the number only when digits follow it.
	isFloat := false
	if s.peek() == '.' && isDigit(s.peekNext()) {
		isFloat = true
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	if isFloat && s.peek() == '.' {
		for s.peek() == '.' || isDigit(s.peek()) {
			s.advance()
		}
		return s.errorToken(fmt.Sprintf("malformed number %q: more than one decimal point", s.source[s.start:s.current]))
	}
	if isAlpha(s.peek()) {
		for isAlpha(s.peek()) || isDigit(s.peek()) {
			s.advance()
		}
		return s.errorToken(fmt.Sprintf("invalid numeric literal %q", s.source[s.start:s.current]))
	}

	text := s.source[s.start:s.current]
	if isFloat {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return s.errorToken(fmt.Sprintf("float literal %s out of range", text))
		}
		return s.makeToken(FLOAT_LIT)
	}
	if _, err := strconv.ParseInt(text, 10, 64); err != nil {
		return s.errorToken(fmt.Sprintf("integer literal %s out of range", text))
	}
	return s.makeToken(INT_LIT)
}

// scanString scans up to the closing quote, translating escapes. A newline or
// EOF before the closing quote ends the token as an error; scanning resumes
// on the next line.
func (s *Scanner) scanString() Token {
	var b strings.Builder
	for {
		if s.isAtEnd() || s.peek() == '\n' {
			return s.errorToken("unterminated string literal")
		}
		c := s.advance()
		switch c {
		case '"':
			tok := s.makeToken(STRING_LIT)
			tok.Value = b.String()
			return tok
		case '\\':
			if s.isAtEnd() || s.peek() == '\n' {
				return s.errorToken("unterminated string literal")
			}
			switch e := s.advance(); e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(e)
			}
		default:
			b.WriteByte(c)
		}
	}
}

// scanDirective turns the rest of the physical line into one PREPROCESSOR token.
// A block comment opened on the line is part of the token even when it ends
// on a later line.
func (s *Scanner) scanDirective() Token {
	inString := false
	for s.peek() != '\n' && !s.isAtEnd() {
		c := s.advance()
		switch {
		case inString:
			if c == '\\' && s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '/' && s.peek() == '/':
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		case c == '/' && s.peek() == '*':
			s.advance()
			for !s.isAtEnd() && !(s.peek() == '*' && s.peekNext() == '/') {
				s.advance()
			}
			if !s.isAtEnd() {
				s.advance()
				s.advance()
			}
		}
	}
	tok := s.makeToken(PREPROCESSOR)
	tok.Value = strings.TrimRight(tok.Lexeme, " \t\r")
	return tok
}

func (s *Scanner) skipWhitespace() {
	for !s.isAtEnd() {
		switch s.peek() {
		case ' ', '\r', '\t', '\n', '\f', '\v':
			s.advance()
		default:
			return
		}
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else if !isContinuation(c) {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) makeToken(tokenType TokenType) Token {
	return Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	}
}

func (s *Scanner) errorToken(message string) Token {
	tok := s.makeToken(ERROR)
	tok.Value = message
	return tok
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
