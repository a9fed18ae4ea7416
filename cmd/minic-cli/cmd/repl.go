package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"minic/repl"
)

const historyFile = ".minic_history"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse declarations interactively",
	Long: `Reads declarations line by line and prints their syntax tree or
diagnostics. Unfinished input continues on the next line. Type :quit or
press Ctrl+D to exit.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// historyReader records entered lines and ends input on Ctrl+C.
type historyReader struct {
	*liner.State
}

func (r historyReader) Prompt(prompt string) (string, error) {
	line, err := r.State.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err == nil && strings.TrimSpace(line) != "" {
		r.AppendHistory(line)
	}
	return line, err
}

// historyPath returns where REPL history is kept, or false when there is
// no home directory to keep it in.
func historyPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Debugf("history disabled: %s", err)
		return "", false
	}
	return filepath.Join(home, historyFile), true
}

func runRepl(cmd *cobra.Command, args []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath, ok := historyPath(); ok {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	return repl.Run(historyReader{ln}, cmd.OutOrStdout(), repl.Options{
		MaxDiagnostics: cfg.Diagnostics.Max,
		Context:        cfg.Diagnostics.Context,
	})
}
