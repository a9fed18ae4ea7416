// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	minicerrors "minic/internal/errors"
	"minic/internal/parser"
)

const (
	PROMPT      = ">> "
	CONT_PROMPT = ".. "
	filename    = "<repl>"
)

// LineReader yields one line of input per call and io.EOF when input ends.
// *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Options controls how diagnostics are rendered.
type Options struct {
	MaxDiagnostics int
	Context        bool
}

// Start runs the loop over plain line input, echoing prompts to out.
func Start(in io.Reader, out io.Writer) error {
	return Run(NewScannerReader(in, out), out, Options{Context: true})
}

// Run reads translation units from r and prints their AST, or their
// diagnostics when parsing fails. Input that ends in the middle of a
// construct keeps reading with the continuation prompt. ":quit" exits.
func Run(r LineReader, out io.Writer, opts Options) error {
	for {
		source, ok, err := readUnit(r)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		trimmed := strings.TrimSpace(source)
		switch {
		case trimmed == "":
			continue
		case trimmed == ":quit":
			return nil
		case strings.HasPrefix(trimmed, ":"):
			fmt.Fprintln(out, "unknown command. Type :quit to exit.")
			continue
		}

		unit, diags := parser.ParseSource(filename, source)
		if len(diags) == 0 {
			fmt.Fprintf(out, "AST:\n%s\n", unit.String())
			continue
		}

		reporter := minicerrors.NewErrorReporter(filename, source)
		reporter.SetContext(opts.Context)
		fmt.Fprint(out, reporter.FormatAll(minicerrors.FromDiagnostics(filename, diags), opts.MaxDiagnostics))
	}
}

// readUnit collects lines until they parse without running off the end of
// input. It reports false once the reader is exhausted with nothing pending.
func readUnit(r LineReader) (string, bool, error) {
	var b strings.Builder
	for {
		prompt := PROMPT
		if b.Len() > 0 {
			prompt = CONT_PROMPT
		}

		line, err := r.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return b.String(), b.Len() > 0, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("failed to read input: %w", err)
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if strings.TrimSpace(line) == "" || !incomplete(b.String()) {
			return b.String(), true, nil
		}
	}
}

func incomplete(source string) bool {
	_, diags := parser.ParseSource(filename, source)
	return slices.ContainsFunc(diags, func(d parser.Diagnostic) bool {
		return d.Kind == parser.UnexpectedEOF
	})
}

// ScannerReader adapts an io.Reader to LineReader, printing prompts to out.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(in), out: out}
}

func (s *ScannerReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
