package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/letung3105/pyvalid/internal/config"
	"github.com/letung3105/pyvalid/internal/pyvalid"
)

var checkFormat string

var checkCmd = &cobra.Command{
	Use:   "check [file ...]",
	Short: "Validate source files",
	Long: `Parses every given file and reports whether it is syntactically valid.
The syntax tree of a valid file is printed in the configured format.
Standard input is read when no file or "-" is given.

Examples:
  pyvalid check script.py
  pyvalid check --format yaml a.py b.py
  echo "x = 1 + 2 * 3" | pyvalid check`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "", "tree output: sexp, json, yaml or none (default from config)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	format := cfg.Output.Format
	if checkFormat != "" {
		format = checkFormat
	}
	if format != config.FormatNone && !pyvalid.IsFormat(format) {
		return fmt.Errorf("unknown output format %q", format)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for _, name := range args {
		source, err := readSource(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}

		display := displayName(name)
		reporter := pyvalid.NewLogReporter(log.With("file", display))
		program, err := pyvalid.ParseSource(source, reporter)
		if err != nil {
			invalid++
			log.Debug("rejected", "file", display, "error", err)
			fmt.Fprintf(out, "%s: %v\n", display, err)
			continue
		}

		log.Debug("accepted", "file", display, "statements", len(program.Body))
		fmt.Fprintf(out, "%s: valid\n", display)
		if format == config.FormatNone {
			continue
		}
		if err := pyvalid.Encode(out, program, format); err != nil {
			return fmt.Errorf("failed to write syntax tree: %w", err)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d inputs invalid", invalid, len(args))
	}
	return nil
}

func readSource(stdin io.Reader, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", displayName(name), err)
	}
	return string(data), nil
}

func displayName(name string) string {
	if name == "-" {
		return "<stdin>"
	}
	return name
}
