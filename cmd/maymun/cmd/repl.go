package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	maymun "github.com/miniyarov/maymun-lang"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	Long: `Starts the read-eval-print loop. Bindings made with let persist for
the whole session. Ctrl+D or :quit exits.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	if !cfg.Color {
		plainStyles()
	}

	fmt.Println(bannerStyle.Render("Hello! This is the Maymun programming language!"))
	fmt.Println(bannerStyle.Render("Feel free to type in commands. Ctrl+D or :quit exits."))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	ip := maymun.NewInterpreter()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return nil
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		ln.AppendHistory(line)

		v, ok, err := ip.EvalSource(line)
		if err != nil {
			var pe *maymun.ParseError
			if errors.As(err, &pe) {
				for _, diag := range pe.Diagnostics {
					fmt.Println(errorStyle.Render("\t" + diag))
				}
				continue
			}
			return err
		}
		if !ok {
			continue
		}
		if v.IsError() {
			fmt.Println(errorStyle.Render(maymun.FormatValue(v)))
			continue
		}
		fmt.Println(valueStyle.Render(maymun.FormatValue(v)))
	}
}
