package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"minic/internal/config"
)

var (
	cfgFile string
	noColor bool
	verbose bool

	cfg = config.Default()
)

var log = commonlog.GetLogger("minic.cli")

// errFailed reports that diagnostics were already rendered for the user.
var errFailed = errors.New("compilation failed")

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "Front end for a small C-like teaching language",
	Long: `minic tokenizes and parses programs written in a small C-like
teaching language and reports syntax errors with recovery.

Commands:
  parse   - print the syntax tree of a file
  tokens  - print the token stream of a file
  check   - report diagnostics for one or more files
  repl    - parse declarations interactively`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup resolves the configuration and applies the global flags before any
// subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		commonlog.Configure(2, nil)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	resolved, path, err := config.Resolve(cfgFile, wd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = resolved
	if path != "" {
		log.Infof("using config %s", path)
	}

	if noColor || !cfg.Diagnostics.Color {
		color.NoColor = true
	}
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString("error"), err)
}
