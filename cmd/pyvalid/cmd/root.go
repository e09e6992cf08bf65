package cmd

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/letung3105/pyvalid/internal/config"
	"github.com/letung3105/pyvalid/internal/logger"
)

var (
	cfgFile string
	verbose bool

	// set up by the root command before any subcommand runs
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pyvalid",
	Short: "Syntax validator for a small Python-like language",
	Long: `pyvalid checks source snippets against the grammar of a small
Python-like language and prints their syntax tree.

Blocks are delimited by braces, e.g.

  def f(a, b): { if a > b: return a else: return b }`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logCfg := c.Logger()
	logCfg.Output = cmd.ErrOrStderr()
	if verbose {
		logCfg.Level = "debug"
	}
	l, err := logger.New(logCfg)
	if err != nil {
		return err
	}

	cfg = c
	log = l.With("run", uuid.New().String()[:8])
	return nil
}
