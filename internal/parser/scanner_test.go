package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "int float double char void bool string static const return if else while for break true false customIdent"
	expected := []TokenType{
		INT, FLOAT, DOUBLE, CHAR, VOID, BOOL, STRING, STATIC, CONST,
		RETURN, IF, ELSE, WHILE, FOR, BREAK, BOOL_LIT, BOOL_LIT, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) != len(expected)+1 {
		t.Fatalf("expected %d tokens, got %d", len(expected)+1, len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
	if tokens[len(tokens)-1].Type != EOF {
		t.Errorf("expected trailing EOF, got %s", tokens[len(tokens)-1].Type)
	}
}

func TestKeywordIdentifierBoundary(t *testing.T) {
	input := "integer if_ whileLoop _for returned"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, lexeme := range []string{"integer", "if_", "whileLoop", "_for", "returned"} {
		if tokens[i].Type != IDENTIFIER {
			t.Errorf("token %d: expected IDENTIFIER, got %s", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, lexeme, tokens[i].Lexeme)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 12345 3.14 1. 0.5 7.x"
	expected := []TokenType{INT_LIT, INT_LIT, INT_LIT, FLOAT_LIT, INT_LIT, DOT, FLOAT_LIT, INT_LIT, DOT, IDENTIFIER, EOF}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()
	require.Len(t, tokens, len(expected))

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
	assert.Equal(t, "1", tokens[4].Lexeme)
}

func TestMalformedNumbers(t *testing.T) {
	tests := []struct {
		input   string
		lexeme  string
		message string
	}{
		{"1.2.3", "1.2.3", `malformed number "1.2.3": more than one decimal point`},
		{"12abc", "12abc", `invalid numeric literal "12abc"`},
		{"99999999999999999999", "99999999999999999999", "integer literal 99999999999999999999 out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := NewScanner(tt.input).ScanTokens()
			require.Len(t, tokens, 2)
			assert.Equal(t, ERROR, tokens[0].Type)
			assert.Equal(t, tt.lexeme, tokens[0].Lexeme)
			assert.Equal(t, tt.message, tokens[0].Value)
			assert.Equal(t, EOF, tokens[1].Type)
		})
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" "tab\there" "quote\"d" "back\\slash" "line\n" "odd\q"`
	tokens := NewScanner(input).ScanTokens()

	expected := []struct {
		lexeme string
		value  string
	}{
		{`"hello"`, "hello"},
		{`"tab\there"`, "tab\there"},
		{`"quote\"d"`, `quote"d`},
		{`"back\\slash"`, `back\slash`},
		{`"line\n"`, "line\n"},
		{`"odd\q"`, "oddq"},
	}

	for i, exp := range expected {
		if tokens[i].Type != STRING_LIT {
			t.Errorf("token %d: expected STRING_LIT, got %s", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != exp.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp.lexeme, tokens[i].Lexeme)
		}
		if tokens[i].Value != exp.value {
			t.Errorf("token %d: expected value %q, got %q", i, exp.value, tokens[i].Value)
		}
	}
}

func TestUnterminatedStringResumesNextLine(t *testing.T) {
	input := "\"unterminated\nint x;"
	tokens := NewScanner(input).ScanTokens()

	require.Len(t, tokens, 5)
	assert.Equal(t, ERROR, tokens[0].Type)
	assert.Equal(t, "unterminated string literal", tokens[0].Value)
	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Position)

	assert.Equal(t, INT, tokens[1].Type)
	assert.Equal(t, 2, tokens[1].Position.Line)
	assert.Equal(t, IDENTIFIER, tokens[2].Type)
	assert.Equal(t, SEMICOLON, tokens[3].Type)
	assert.Equal(t, EOF, tokens[4].Type)
}

func TestOperatorsAndDelimiters(t *testing.T) {
	input := `(){}[],.;?: + ++ += - -- -= -> * *= / /= % %= ! != = == < <= << > >= >> && & || | ^ ~`
	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, LEFT_BRACKET, RIGHT_BRACKET,
		COMMA, DOT, SEMICOLON, QUESTION, COLON,
		PLUS, INCREMENT, PLUS_EQUAL, MINUS, DECREMENT, MINUS_EQUAL, ARROW,
		STAR, STAR_EQUAL, SLASH, SLASH_EQUAL, PERCENT, PERCENT_EQUAL,
		BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL, LESS, LESS_EQUAL, LESS_LESS,
		GREATER, GREATER_EQUAL, GREATER_GREATER, AND, AMPERSAND, OR, PIPE, CARET, TILDE,
	}

	tokens := NewScanner(input).ScanTokens()
	if len(tokens) != len(expected)+1 {
		t.Fatalf("expected %d tokens, got %d", len(expected)+1, len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s (%q)", i, exp, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestMaximalMunch(t *testing.T) {
	tokens := NewScanner("a+++b").ScanTokens()
	types := []TokenType{}
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{IDENTIFIER, INCREMENT, PLUS, IDENTIFIER, EOF}, types)
}

func TestCommentsSkipped(t *testing.T) {
	input := "int // trailing comment\n/* block\ncomment */ x;"
	tokens := NewScanner(input).ScanTokens()

	require.Len(t, tokens, 4)
	assert.Equal(t, INT, tokens[0].Type)
	assert.Equal(t, IDENTIFIER, tokens[1].Type)
	assert.Equal(t, Position{Line: 3, Column: 12, Offset: 44}, tokens[1].Position)
	assert.Equal(t, SEMICOLON, tokens[2].Type)
}

func TestCommentsReported(t *testing.T) {
	input := "// line\nx /* block */"
	tokens := NewScanner(input).WithComments().ScanTokens()

	require.Len(t, tokens, 4)
	assert.Equal(t, COMMENT, tokens[0].Type)
	assert.Equal(t, "// line", tokens[0].Lexeme)
	assert.Equal(t, IDENTIFIER, tokens[1].Type)
	assert.Equal(t, COMMENT, tokens[2].Type)
	assert.Equal(t, "/* block */", tokens[2].Lexeme)
}

func TestUnterminatedBlockComment(t *testing.T) {
	tokens := NewScanner("x /* never closed\nstill comment").ScanTokens()

	require.Len(t, tokens, 3)
	assert.Equal(t, ERROR, tokens[1].Type)
	assert.Equal(t, "unterminated block comment", tokens[1].Value)
	assert.Equal(t, Position{Line: 1, Column: 3, Offset: 2}, tokens[1].Position)
	assert.Equal(t, EOF, tokens[2].Type)
}

func TestPreprocessorLine(t *testing.T) {
	input := "#include <stdio.h>  \nint x;"
	tokens := NewScanner(input).ScanTokens()

	assert.Equal(t, PREPROCESSOR, tokens[0].Type)
	assert.Equal(t, "#include <stdio.h>", tokens[0].Value)
	assert.Equal(t, INT, tokens[1].Type)
	assert.Equal(t, 2, tokens[1].Position.Line)
}

func TestPreprocessorLineWithBlockComment(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{"#include <a.h> /* x\n y */\nint z;", "#include <a.h> /* x\n y */"},
		{"#define S \"/*\"\nint z;", "#define S \"/*\""},
		{"#define N 1 // see /* here\nint z;", "#define N 1 // see /* here"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			tokens := NewScanner(tt.input).ScanTokens()
			require.Len(t, tokens, 5)
			assert.Equal(t, PREPROCESSOR, tokens[0].Type)
			assert.Equal(t, tt.value, tokens[0].Value)
			assert.Equal(t, INT, tokens[1].Type)
		})
	}
}

func TestMultilineTokenEnd(t *testing.T) {
	tokens := NewScanner("#include <a.h> /* x\n y */\nint").ScanTokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, Position{Line: 2, Column: 6, Offset: 25}, tokens[0].End())
	assert.Equal(t, Position{Line: 3, Column: 1, Offset: 26}, tokens[1].Position)
}

func TestUnexpectedCharacter(t *testing.T) {
	input := "int @ x é;"
	tokens := NewScanner(input).ScanTokens()

	types := []TokenType{}
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{INT, ERROR, IDENTIFIER, ERROR, SEMICOLON, EOF}, types)
	assert.Equal(t, `unexpected character "@"`, tokens[1].Value)
	assert.Equal(t, "é", tokens[3].Lexeme)
	assert.Equal(t, 10, tokens[4].Position.Column)
}

func TestTokenPositions(t *testing.T) {
	input := "int\nfloat 123\n  \"str\""
	tokens := NewScanner(input).ScanTokens()

	expected := []struct {
		typ    TokenType
		lexeme string
		line   int
		column int
	}{
		{INT, "int", 1, 1},
		{FLOAT, "float", 2, 1},
		{INT_LIT, "123", 2, 7},
		{STRING_LIT, `"str"`, 3, 3},
	}

	for i, exp := range expected {
		if i >= len(tokens) {
			t.Fatalf("missing token at index %d", i)
		}
		tok := tokens[i]
		if tok.Type != exp.typ {
			t.Errorf("token %d: expected type %s, got %s", i, exp.typ, tok.Type)
		}
		if tok.Lexeme != exp.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp.lexeme, tok.Lexeme)
		}
		if tok.Position.Line != exp.line {
			t.Errorf("token %d: expected line %d, got %d", i, exp.line, tok.Position.Line)
		}
		if tok.Position.Column != exp.column {
			t.Errorf("token %d: expected column %d, got %d", i, exp.column, tok.Position.Column)
		}
	}

	// Check that offsets strictly increase
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Position.Offset <= tokens[i-1].Position.Offset {
			t.Errorf("token %d: expected offset to increase, got %d after %d",
				i, tokens[i].Position.Offset, tokens[i-1].Position.Offset)
		}
	}
}

func TestTokenizeIsRestartable(t *testing.T) {
	seq := Tokenize("int x = 1;")

	var first, second []Token
	for tok := range seq {
		first = append(first, tok)
	}
	for tok := range seq {
		second = append(second, tok)
	}

	assert.Len(t, first, 6)
	assert.Equal(t, first, second)
	assert.Equal(t, EOF, first[len(first)-1].Type)
}

func TestTokenizeEarlyStop(t *testing.T) {
	count := 0
	for tok := range Tokenize("a b c d") {
		count++
		if tok.Lexeme == "b" {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestNextTokenAfterEOF(t *testing.T) {
	s := NewScanner("x")
	assert.Equal(t, IDENTIFIER, s.NextToken().Type)
	assert.Equal(t, EOF, s.NextToken().Type)
	assert.Equal(t, EOF, s.NextToken().Type)
}

func TestTokenEnd(t *testing.T) {
	tokens := NewScanner("  total").ScanTokens()
	assert.Equal(t, Position{Line: 1, Column: 8, Offset: 7}, tokens[0].End())
}
