package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ronfmt/internal/format"
	"ronfmt/internal/project"
)

func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("tab-size", "t", format.DefaultIndentWidth, "spaces per indentation level")
	cmd.Flags().IntP("max-width", "w", format.DefaultMaxLineWidth, "maximum line width before a collection is expanded")
}

// layoutOptions reads the layout flags and layers them over the
// .ronfmt.toml governing start: a flag given on the command line wins, a
// key present in the file beats the flag default.
func layoutOptions(cmd *cobra.Command, start string) (format.Options, project.Config, bool, error) {
	var opt format.Options
	flags := cmd.Flags()
	var err error
	if opt.IndentWidth, err = flags.GetInt("tab-size"); err != nil {
		return opt, project.Config{}, false, err
	}
	if opt.MaxLineWidth, err = flags.GetInt("max-width"); err != nil {
		return opt, project.Config{}, false, err
	}
	if opt.MaxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err != nil {
		return opt, project.Config{}, false, err
	}

	cfg, ok, err := project.Discover(start)
	if err != nil {
		return opt, project.Config{}, false, err
	}
	opt = applyConfig(opt, cfg, ok, flags.Changed("tab-size"), flags.Changed("max-width"))

	if opt.IndentWidth <= 0 {
		return opt, cfg, ok, fmt.Errorf("--tab-size must be positive, got %d", opt.IndentWidth)
	}
	if opt.MaxLineWidth < 0 {
		return opt, cfg, ok, fmt.Errorf("--max-width must not be negative, got %d", opt.MaxLineWidth)
	}
	return opt, cfg, ok, nil
}

// applyConfig takes values from the config file for flags not given
// explicitly on the command line.
func applyConfig(opt format.Options, cfg project.Config, ok, indentFlag, widthFlag bool) format.Options {
	if !ok {
		return opt
	}
	if cfg.HasIndent && !indentFlag {
		opt.IndentWidth = cfg.Indent
	}
	if cfg.HasMaxWidth && !widthFlag {
		opt.MaxLineWidth = cfg.MaxWidth
	}
	return opt
}

// startDir is where config discovery begins for the given arguments.
func startDir(args []string) string {
	if len(args) == 0 || args[0] == stdinPath {
		return "."
	}
	return args[0]
}
