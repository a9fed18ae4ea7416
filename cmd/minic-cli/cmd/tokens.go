package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"minic/internal/config"
	"minic/internal/parser"
)

var (
	tokensFormat   string
	tokensComments bool
)

// tokenEntry is the serialized form of one token.
type tokenEntry struct {
	Type    string `yaml:"type"`
	Lexeme  string `yaml:"lexeme"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
	Message string `yaml:"message,omitempty"`
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", "", "output format: text or yaml (default from config)")
	tokensCmd.Flags().BoolVar(&tokensComments, "comments", false, "include comment tokens")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(tokensFormat)
	if err != nil {
		return err
	}

	source, err := readSource(args[0])
	if err != nil {
		return err
	}

	scanner := parser.NewScanner(source)
	if tokensComments {
		scanner.WithComments()
	}

	var entries []tokenEntry
	for _, tok := range scanner.ScanTokens() {
		entry := tokenEntry{
			Type:   tok.Type.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Position.Line,
			Column: tok.Position.Column,
		}
		if tok.Type == parser.ERROR {
			entry.Message = tok.Value
		}
		entries = append(entries, entry)
	}
	log.Debugf("scanned %d tokens from %s", len(entries), args[0])

	if format == config.FormatYAML {
		return writeYAML(cmd, entries)
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		line := fmt.Sprintf("%s %q %d:%d", e.Type, e.Lexeme, e.Line, e.Column)
		if e.Message != "" {
			line += " (" + e.Message + ")"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
