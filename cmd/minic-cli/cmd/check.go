package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"minic/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Report diagnostics for one or more files",
	Long: `Parses every file and renders its diagnostics. The command exits with
status 1 when any file has a diagnostic.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	start := time.Now()

	failed := 0
	for _, path := range args {
		source, err := readSource(path)
		if err != nil {
			return err
		}

		_, diags := parser.ParseSource(path, source)
		log.Debugf("checked %s: %d diagnostics", path, len(diags))
		if len(diags) > 0 {
			failed++
			renderDiagnostics(cmd, path, source, diags)
		}
	}

	if failed > 0 {
		return reportFailure(cmd, start)
	}

	what := args[0]
	if len(args) > 1 {
		what = fmt.Sprintf("%d files", len(args))
	}
	reportSuccess(cmd, what, start)
	return nil
}
