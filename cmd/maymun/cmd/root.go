package cmd

import (
	"os"

	"github.com/oarkflow/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool

	logger = &log.DefaultLogger
)

var rootCmd = &cobra.Command{
	Use:   "maymun",
	Short: "Maymun - a small interpreted language",
	Long: `Maymun is a small interpreted language: integers, booleans, null,
let bindings, return and conditional expressions.

Run without a subcommand to start the interactive REPL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRepl,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			logger.Level = log.DebugLevel
		} else {
			logger.Level = log.InfoLevel
		}
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.maymun.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func printErr(msg string) {
	os.Stderr.WriteString(errorStyle.Render(msg) + "\n")
}
