package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"minic/internal/ast"
	"minic/internal/config"
	"minic/internal/parser"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the syntax tree of a file",
	Long: `Parses a file and prints its syntax tree, fully parenthesized, or as
YAML with --format yaml. Any diagnostic suppresses the tree and the
command exits with status 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: text or yaml (default from config)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	start := time.Now()
	path := args[0]

	format, err := outputFormat(parseFormat)
	if err != nil {
		return err
	}

	source, err := readSource(path)
	if err != nil {
		return err
	}

	unit, diags := parser.ParseSource(path, source)
	log.Debugf("parsed %s: %d declarations, %d diagnostics", path, len(unit.Decls), len(diags))

	if len(diags) > 0 {
		renderDiagnostics(cmd, path, source, diags)
		return reportFailure(cmd, start)
	}

	if format == config.FormatYAML {
		if err := writeYAML(cmd, ast.Dump(unit)); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), unit.String())
	}

	reportSuccess(cmd, path, start)
	return nil
}
