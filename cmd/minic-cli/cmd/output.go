package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"minic/internal/config"
	minicerrors "minic/internal/errors"
	"minic/internal/parser"
)

func readSource(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(source), nil
}

// outputFormat returns the --format flag when set, else the configured format.
func outputFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case config.FormatText, config.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want %q or %q)", format, config.FormatText, config.FormatYAML)
	}
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// renderDiagnostics prints diagnostics for one file to stderr, honoring the
// configured limit and context setting.
func renderDiagnostics(cmd *cobra.Command, path, source string, diags []parser.Diagnostic) {
	reporter := minicerrors.NewErrorReporter(path, source)
	reporter.SetContext(cfg.Diagnostics.Context)
	fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatAll(minicerrors.FromDiagnostics(path, diags), cfg.Diagnostics.Max))
}

func reportSuccess(cmd *cobra.Command, what string, start time.Time) {
	fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("Successfully processed %s in %s", what, formatDuration(time.Since(start))))
}

func reportFailure(cmd *cobra.Command, start time.Time) error {
	fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Compilation failed after %s", formatDuration(time.Since(start))))
	return errFailed
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
