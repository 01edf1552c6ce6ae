package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	maymun "github.com/miniyarov/maymun-lang"
)

var runCmd = &cobra.Command{
	Use:   "run <file.my>",
	Short: "Run a Maymun script",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", file, err)
	}

	start := time.Now()
	program, errs := maymun.Parse(string(src))
	logger.Debug().
		Str("file", file).
		Int("statements", program.Len()).
		Int64("parse_us", time.Since(start).Microseconds()).
		Msg("parsed")

	if len(errs) > 0 {
		for _, diag := range errs {
			printErr("parser error: " + diag)
		}
		return fmt.Errorf("%s: %d parse error(s)", file, len(errs))
	}

	start = time.Now()
	v, ok := maymun.EvalProgram(program, maymun.NewEnv())
	logger.Debug().
		Str("file", file).
		Int64("eval_us", time.Since(start).Microseconds()).
		Msg("evaluated")

	if !ok {
		return nil
	}
	if v.IsError() {
		printErr(maymun.FormatValue(v))
		return fmt.Errorf("%s: evaluation failed", file)
	}
	fmt.Println(maymun.FormatValue(v))
	return nil
}
