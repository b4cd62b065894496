package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ronfmt/internal/diagfmt"
	"ronfmt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.ron|->",
	Short: "Dump the document model of a RON file",
	Long: `Parse builds the document model of a RON file and prints it with the
minimum width and the layout chosen for every value`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
	addLayoutFlags(parseCmd)
}

// loadDocument parses path, or stdin for "-", and prints its diagnostics.
func loadDocument(cmd *cobra.Command, path string, maxDiagnostics int) (*driver.ParseResult, error) {
	var (
		result *driver.ParseResult
		err    error
	)
	if path == stdinPath {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return nil, fmt.Errorf("read stdin: %w", readErr)
		}
		result, err = driver.ParseBytes("<stdin>", data, maxDiagnostics)
	} else {
		result, err = driver.Parse(path, maxDiagnostics)
	}
	if err != nil {
		return nil, err
	}
	if result.Bag.Len() > 0 {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   1,
			ShowNotes: true,
		})
	}
	if result.Doc == nil {
		return nil, reportedError{msg: fmt.Sprintf("%s: parse failed", path)}
	}
	return result, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	opt, _, _, err := layoutOptions(cmd, startDir(args))
	if err != nil {
		return err
	}

	result, err := loadDocument(cmd, args[0], opt.MaxDiagnostics)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "tree":
		return diagfmt.FormatDocumentPretty(cmd.OutOrStdout(), result.Doc, result.File.Path, opt)
	case "json":
		return diagfmt.FormatDocumentJSON(cmd.OutOrStdout(), result.Doc, opt)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}
