package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ronfmt/internal/prof"
)

// profiling is the session started by setupProfiling, stopped from main.
var profiling *prof.Session

// setupProfiling inspects persistent profiling flags and enables the
// corresponding profilers.
func setupProfiling(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}
	s, err := prof.Start(cfg)
	if err != nil {
		return err
	}
	profiling = s
	return nil
}

// stopProfiling is safe to call when no session was started.
func stopProfiling() error {
	s := profiling
	profiling = nil
	return s.Stop()
}
