package parser

import (
	"fmt"
	"slices"
)

type DiagnosticKind int

const (
	ExpectedTypeToken DiagnosticKind = iota
	ExpectedIdentifier
	ExpectedIntLit
	ExpectedFloatLit
	ExpectedStringLit
	ExpectedBoolLit
	FailedToFindToken
	UnexpectedToken
	UnexpectedEOF
)

var diagnosticKindNames = [...]string{
	ExpectedTypeToken:  "ExpectedTypeToken",
	ExpectedIdentifier: "ExpectedIdentifier",
	ExpectedIntLit:     "ExpectedIntLit",
	ExpectedFloatLit:   "ExpectedFloatLit",
	ExpectedStringLit:  "ExpectedStringLit",
	ExpectedBoolLit:    "ExpectedBoolLit",
	FailedToFindToken:  "FailedToFindToken",
	UnexpectedToken:    "UnexpectedToken",
	UnexpectedEOF:      "UnexpectedEOF",
}

func (k DiagnosticKind) String() string {
	if k >= 0 && int(k) < len(diagnosticKindNames) {
		return diagnosticKindNames[k]
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

const (
	SourceScanner = "scanner"
	SourceParser  = "parser"
)

// Diagnostic is a lexical or syntactic problem found while parsing.
type Diagnostic struct {
	Kind     DiagnosticKind
	Position Position
	Message  string
	Expected TokenType // ILLEGAL when there is no expected-token hint
	Found    string    // offending lexeme, empty at EOF
	Source   string    // SourceScanner or SourceParser
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Position, d.Message)
}

// HasExpected reports whether the diagnostic names a token that was expected.
func (d Diagnostic) HasExpected() bool {
	return d.Expected != ILLEGAL
}

// sortDiagnostics orders diagnostics by source position, keeping detection
// order for diagnostics at the same offset.
func sortDiagnostics(diags []Diagnostic) []Diagnostic {
	out := slices.Clone(diags)
	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		return a.Position.Offset - b.Position.Offset
	})
	return out
}

// describeToken renders a token for messages: source text for names and
// literals, the fixed spelling otherwise.
func describeToken(tok Token) string {
	switch tok.Type {
	case IDENTIFIER, INT_LIT, FLOAT_LIT, STRING_LIT, BOOL_LIT:
		return "'" + tok.Lexeme + "'"
	default:
		return tok.Type.Describe()
	}
}
