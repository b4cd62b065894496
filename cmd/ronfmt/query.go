package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ronfmt/internal/ast"
	"ronfmt/internal/format"
	"ronfmt/internal/query"
)

var queryCmd = &cobra.Command{
	Use:   "query [flags] <jsonpath> <file.ron|->",
	Short: "Select values of a RON file with JSONPath",
	Long: `Query evaluates a JSONPath expression such as '$.servers[0].port' or
'$..name' against a RON file and prints every selected value formatted.
Record fields and map keys are selected by name, lists and tuples by index.`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("format", "ron", "output format (ron|paths|json)")
	queryCmd.Flags().Bool("fail-empty", false, "fail when nothing matches")
	addLayoutFlags(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	expr, path := args[0], args[1]

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	failEmpty, err := cmd.Flags().GetBool("fail-empty")
	if err != nil {
		return err
	}
	compiled, err := query.Compile(expr)
	if err != nil {
		return err
	}
	opt, _, _, err := layoutOptions(cmd, startDir(args[1:]))
	if err != nil {
		return err
	}

	result, err := loadDocument(cmd, path, opt.MaxDiagnostics)
	if err != nil {
		return err
	}
	matches := query.Select(result.Doc, compiled)
	if failEmpty && len(matches) == 0 {
		return fmt.Errorf("query %s: no match in %s", expr, path)
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "ron":
		_, err = out.Write(query.Render(matches, opt))
		return err
	case "paths":
		for _, m := range matches {
			fmt.Fprintln(out, m.Path)
		}
		return nil
	case "json":
		type jsonMatch struct {
			Path  string `json:"path"`
			Kind  string `json:"kind"`
			Value string `json:"value"`
		}
		payload := make([]jsonMatch, 0, len(matches))
		for _, m := range matches {
			payload = append(payload, jsonMatch{
				Path:  m.Path,
				Kind:  ast.Kind(m.Value()),
				Value: format.Compact(m.Value()),
			})
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}
