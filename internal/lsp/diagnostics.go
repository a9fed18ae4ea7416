package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"minic/internal/errors"
	"minic/internal/parser"
)

// ConvertDiagnostics transforms parser diagnostics into LSP diagnostics for IDE display.
// The range covers the offending lexeme, or a single character at end of file.
// The result is never nil so that an empty list clears stale markers.
func ConvertDiagnostics(diags []parser.Diagnostic) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(diags))

	for _, d := range diags {
		length := max(utf8.RuneCountInString(d.Found), 1)
		line := uint32(max(d.Position.Line-1, 0))
		char := uint32(max(d.Position.Column-1, 0))

		source := "minic-parser"
		if d.Source == parser.SourceScanner {
			source = "minic-scanner"
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: char},
				End:   protocol.Position{Line: line, Character: char + uint32(length)},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: errors.CodeFor(d)},
			Source:   ptrString(source),
			Message:  d.Message,
		})
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
