package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	maymun "github.com/miniyarov/maymun-lang"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file.my>",
	Short: "Print the canonical rendering of a script",
	Long: `Parses a script and prints its canonical, fully parenthesized
rendering. With --check, exits non-zero when the rendering differs from
the file contents.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "exit 1 if the file is not in canonical form")
}

func runFmt(cmd *cobra.Command, args []string) error {
	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", file, err)
	}

	program, errs := maymun.Parse(string(src))
	if len(errs) > 0 {
		for _, diag := range errs {
			printErr("parser error: " + diag)
		}
		return fmt.Errorf("%s: %d parse error(s)", file, len(errs))
	}

	canonical := program.String() + "\n"
	if fmtCheck {
		if canonical != string(src) {
			return fmt.Errorf("%s is not in canonical form", file)
		}
		return nil
	}

	fmt.Print(canonical)
	return nil
}
