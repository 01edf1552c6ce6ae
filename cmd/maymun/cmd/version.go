package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	maymun "github.com/miniyarov/maymun-lang"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(maymun.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
