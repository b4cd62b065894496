package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ronfmt/internal/format"
	"ronfmt/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a .ronfmt.toml with the current settings",
	Long: `Init writes a .ronfmt.toml into dir (the current directory by default)
holding the indentation and line width given by the flags. A missing
directory is created; an existing config is kept unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().IntP("tab-size", "t", format.DefaultIndentWidth, "spaces per indentation level")
	initCmd.Flags().IntP("max-width", "w", format.DefaultMaxLineWidth, "maximum line width")
	initCmd.Flags().Bool("force", false, "overwrite an existing config")
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	indent, err := cmd.Flags().GetInt("tab-size")
	if err != nil {
		return err
	}
	maxWidth, err := cmd.Flags().GetInt("max-width")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	if indent <= 0 {
		return fmt.Errorf("--tab-size must be positive, got %d", indent)
	}
	if maxWidth < 0 {
		return fmt.Errorf("--max-width must not be negative, got %d", maxWidth)
	}

	path, err := project.WriteConfig(target, indent, maxWidth, force)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	return nil
}
