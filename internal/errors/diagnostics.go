package errors

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"minic/internal/ast"
	"minic/internal/parser"
)

// ErrorBuilder assembles a CompilerError step by step.
type ErrorBuilder struct {
	err CompilerError
}

// NewParseError starts an error with a one-rune span.
func NewParseError(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{err: CompilerError{
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   1,
	}}
}

func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

func (b *ErrorBuilder) WithSource(source string) *ErrorBuilder {
	b.err.Source = source
	return b
}

// WithLabel sets the text shown next to the underline.
func (b *ErrorBuilder) WithLabel(label string) *ErrorBuilder {
	b.err.Label = label
	return b
}

func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithInsertion suggests adding text at the error position.
func (b *ErrorBuilder) WithInsertion(message, text string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Insert: text})
	return b
}

func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.Help = help
	return b
}

func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

var typeNames = []string{"int", "float", "double", "char", "void", "bool", "string"}

var keywordNames = []string{
	"int", "float", "double", "char", "void", "bool", "string", "static", "const",
	"return", "if", "else", "while", "for", "break", "true", "false",
}

// FromDiagnostic converts a scanner or parser diagnostic into a CompilerError
// with fix suggestions.
func FromDiagnostic(filename string, d parser.Diagnostic) CompilerError {
	pos := ast.Position{
		Filename: filename,
		Offset:   d.Position.Offset,
		Line:     d.Position.Line,
		Column:   d.Position.Column,
	}
	builder := NewParseError(CodeFor(d), d.Message, pos).
		WithSource(d.Source).
		WithLength(max(1, utf8.RuneCountInString(d.Found)))
	if d.HasExpected() {
		builder = builder.WithLabel("expected " + d.Expected.Describe())
	}

	if d.Source == parser.SourceScanner {
		return builder.WithSuggestion("remove or replace this text").Build()
	}

	switch d.Kind {
	case parser.FailedToFindToken:
		builder = builder.WithLength(1)
		if s, ok := d.Expected.Spelling(); ok {
			builder = builder.WithInsertion(fmt.Sprintf("add '%s' here", s), s)
		}

	case parser.ExpectedTypeToken:
		if similar := findSimilarNames(d.Found, typeNames); len(similar) > 0 {
			builder = builder.WithSuggestion(didYouMean(similar))
		} else {
			builder = builder.WithSuggestion("start the declaration with a type such as 'int'")
		}
		builder = builder.WithHelp("statements are only allowed inside function bodies")

	case parser.ExpectedIdentifier:
		if d.Found != "" && slices.Contains(keywordNames, d.Found) {
			builder = builder.WithNote(fmt.Sprintf("'%s' is a reserved word and cannot be used as a name", d.Found))
		}
		builder = builder.WithSuggestion("add a name after the type")

	case parser.ExpectedIntLit, parser.ExpectedFloatLit, parser.ExpectedStringLit, parser.ExpectedBoolLit:
		if d.Expected == parser.STRING_LIT {
			builder = builder.WithSuggestion("write the path as <file.h> or \"file.h\"")
		} else {
			builder = builder.WithNote("a literal initializer must match the declared type")
		}

	case parser.UnexpectedEOF:
		if s, ok := d.Expected.Spelling(); ok {
			builder = builder.WithSuggestion(fmt.Sprintf("add the missing '%s'", s))
		}
		builder = builder.WithNote("the file ended before the construct was complete")

	case parser.UnexpectedToken:
		if similar := findSimilarNames(d.Found, keywordNames); len(similar) > 0 {
			builder = builder.WithSuggestion(didYouMean(similar))
		}
	}

	return builder.Build()
}

// FromDiagnostics converts every diagnostic, keeping their order.
func FromDiagnostics(filename string, diags []parser.Diagnostic) []CompilerError {
	out := make([]CompilerError, 0, len(diags))
	for _, d := range diags {
		out = append(out, FromDiagnostic(filename, d))
	}
	return out
}

// Helper functions

func didYouMean(names []string) string {
	if len(names) == 1 {
		return fmt.Sprintf("did you mean '%s'?", names[0])
	}
	return fmt.Sprintf("did you mean one of: '%s'?", strings.Join(names, "', '"))
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	if target == "" || slices.Contains(candidates, target) {
		return nil
	}
	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 && len(target) > 1 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
