package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ronfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ronfmt",
	Short: "Formatter for RON documents",
	Long: `ronfmt rewrites RON (Rusty Object Notation) documents into a canonical,
whitespace-normalized layout while keeping every value and comment.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupProfiling,
}

func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Plain()

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to file")
}

// main runs the root command; any error exits with status 1.
func main() {
	err := rootCmd.Execute()
	if stopErr := stopProfiling(); stopErr != nil {
		fmt.Fprintln(os.Stderr, "ronfmt: profiling:", stopErr)
	}
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "ronfmt:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag for output written to f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

// reportedError marks a failure whose details were already printed.
type reportedError struct{ msg string }

func (e reportedError) Error() string { return e.msg }
