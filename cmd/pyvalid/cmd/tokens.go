package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/letung3105/pyvalid/internal/pyvalid"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of a source file",
	Long: `Prints one token per line as its line number followed by
"TYPE lexeme literal". Unexpected characters are logged and skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	source, err := readSource(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}

	reporter := pyvalid.NewLogReporter(log.With("file", displayName(name)))
	out := cmd.OutOrStdout()
	for _, tok := range pyvalid.Tokenize(source, reporter) {
		fmt.Fprintf(out, "%d\t%s\n", tok.Line, tok)
	}
	return nil
}
