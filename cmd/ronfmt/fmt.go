package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ronfmt/internal/diagfmt"
	"ronfmt/internal/driver"
	"ronfmt/internal/format"
	"ronfmt/internal/observ"
	"ronfmt/internal/project"
)

const stdinPath = "-"

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path|-> [path...]",
	Short: "Format RON files",
	Long: `Format RON files or directories (recursively collecting *.ron files).
Formatted text goes to stdout unless --in-place or --check is given.
A single "-" formats stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	addLayoutFlags(fmtCmd)
	fmtCmd.Flags().BoolP("in-place", "i", false, "rewrite files in place")
	fmtCmd.Flags().Bool("no-backup", false, "do not keep <file>.bak when rewriting in place")
	fmtCmd.Flags().Bool("check", false, "list files that are not formatted and fail if any")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	fmtCmd.Flags().Bool("cache", false, "skip files already known to be formatted")
	fmtCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	fmtCmd.Flags().Bool("timings", false, "print per-phase timings")
}

// fmtSettings are the fmt flags after layering them over .ronfmt.toml.
type fmtSettings struct {
	options   format.Options
	inPlace   bool
	backup    bool
	check     bool
	output    string
	jobs      int
	cache     bool
	ui        uiMode
	timings   bool
	quiet     bool
	config    project.Config
	hasConfig bool
}

func readFmtSettings(cmd *cobra.Command, args []string) (fmtSettings, error) {
	var s fmtSettings
	flags := cmd.Flags()
	var err error
	if s.inPlace, err = flags.GetBool("in-place"); err != nil {
		return s, err
	}
	noBackup, err := flags.GetBool("no-backup")
	if err != nil {
		return s, err
	}
	s.backup = !noBackup
	if s.check, err = flags.GetBool("check"); err != nil {
		return s, err
	}
	if s.output, err = flags.GetString("format"); err != nil {
		return s, err
	}
	if s.jobs, err = flags.GetInt("jobs"); err != nil {
		return s, err
	}
	if s.cache, err = flags.GetBool("cache"); err != nil {
		return s, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return s, err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return s, err
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return s, err
	}
	if s.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return s, err
	}

	switch s.output {
	case "text", "json":
	default:
		return s, fmt.Errorf("fmt: unsupported output format %q", s.output)
	}
	if s.inPlace && s.check {
		return s, errors.New("fmt: --in-place cannot be used with --check")
	}

	s.options, s.config, s.hasConfig, err = layoutOptions(cmd, startDir(args))
	if err != nil {
		return s, fmt.Errorf("fmt: %w", err)
	}
	return s, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	s, err := readFmtSettings(cmd, args)
	if err != nil {
		return err
	}

	if len(args) == 1 && args[0] == stdinPath {
		return fmtStdin(cmd, s)
	}

	opts := driver.FormatOptions{
		Check:   s.check,
		Stdout:  !s.inPlace && !s.check,
		Backup:  s.inPlace && s.backup,
		Jobs:    s.jobs,
		Timings: s.timings,
		Options: s.options,
	}
	if s.hasConfig {
		opts.Skip = s.config.Excluded
	}
	if s.cache {
		if opts.Cache, err = driver.OpenDiskCache("ronfmt"); err != nil {
			return err
		}
	}

	files, err := driver.CollectFiles(cmd.Context(), args, opts.Skip)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return driver.ErrNoFiles
	}

	var results []driver.FormatResult
	// the progress view would interleave with formatted text on stdout
	if !opts.Stdout && s.output == "text" && shouldUseTUI(s.ui) {
		results, err = runFormatWithUI(cmd.Context(), "ronfmt fmt", files, opts)
	} else {
		results, err = driver.FormatFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var failed, changed int
	switch s.output {
	case "json":
		failed, changed = countResults(results)
		if err := renderFmtJSON(stdout, results, s.check, opts.Stdout); err != nil {
			return err
		}
	default:
		failed, changed = renderFmtText(stdout, stderr, results, s, useColor(cmd, os.Stderr))
	}
	if s.timings {
		printTimings(stderr, results)
	}

	if failed > 0 {
		return reportedError{msg: fmt.Sprintf("fmt: %d file(s) failed", failed)}
	}
	if s.check && changed > 0 {
		return reportedError{msg: "fmt: formatting changes required"}
	}
	return nil
}

func fmtStdin(cmd *cobra.Command, s fmtSettings) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	out, err := format.Source("<stdin>", data, s.options)
	if err != nil {
		reportFileError(cmd.ErrOrStderr(), "<stdin>", err, useColor(cmd, os.Stderr))
		return reportedError{msg: "fmt: <stdin> failed"}
	}
	if s.check {
		if !bytes.Equal(data, out) {
			fmt.Fprintln(cmd.OutOrStdout(), "<stdin>")
			return reportedError{msg: "fmt: formatting changes required"}
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// reportFileError prints parse errors with source context and anything else
// on a single line.
func reportFileError(w io.Writer, path string, err error, color bool) {
	var parseErr *format.ParseError
	if errors.As(err, &parseErr) {
		diagfmt.Pretty(w, parseErr.Bag, parseErr.Files, diagfmt.PrettyOpts{
			Color:     color,
			Context:   1,
			ShowNotes: true,
		})
		return
	}
	fmt.Fprintf(w, "fmt: %s: %v\n", path, err)
}

func countResults(results []driver.FormatResult) (failed, changed int) {
	for _, res := range results {
		if res.Err != nil {
			failed++
		} else if res.Changed {
			changed++
		}
	}
	return failed, changed
}

func renderFmtText(stdout, stderr io.Writer, results []driver.FormatResult, s fmtSettings, color bool) (failed, changed int) {
	for _, res := range results {
		if res.Err != nil {
			failed++
			reportFileError(stderr, res.Path, res.Err, color)
			continue
		}
		if res.Changed {
			changed++
		}
		switch {
		case s.check:
			if res.Changed && !s.quiet {
				fmt.Fprintln(stdout, res.Path)
			}
		case !s.inPlace:
			if len(results) > 1 && !s.quiet {
				fmt.Fprintf(stdout, "// %s\n", filepath.ToSlash(res.Path))
			}
			_, _ = stdout.Write(res.Formatted)
		case res.Changed && !s.quiet:
			if res.Backup != "" {
				fmt.Fprintf(stdout, "reformatted %s (backup %s)\n", res.Path, res.Backup)
			} else {
				fmt.Fprintf(stdout, "reformatted %s\n", res.Path)
			}
		}
	}
	return failed, changed
}

// renderFmtJSON prints one object per file; formatted text is included only
// when nothing was written to disk.
func renderFmtJSON(w io.Writer, results []driver.FormatResult, check, withText bool) error {
	type jsonResult struct {
		Path      string         `json:"path"`
		Changed   bool           `json:"changed"`
		Cached    bool           `json:"cached,omitempty"`
		Backup    string         `json:"backup,omitempty"`
		Error     string         `json:"error,omitempty"`
		CheckRun  bool           `json:"check"`
		Formatted string         `json:"formatted,omitempty"`
		Timing    *observ.Report `json:"timing,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{
			Path:     res.Path,
			Changed:  res.Changed,
			Cached:   res.Cached,
			Backup:   res.Backup,
			CheckRun: check,
			Timing:   res.Timing,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		} else if withText {
			jr.Formatted = string(res.Formatted)
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func printTimings(w io.Writer, results []driver.FormatResult) {
	reports := make([]observ.Report, 0, len(results))
	for _, res := range results {
		if res.Timing != nil {
			reports = append(reports, *res.Timing)
		}
	}
	if len(reports) == 0 {
		return
	}
	fmt.Fprint(w, observ.Merge(reports...).Summary(fmt.Sprintf("timings (%d files)", len(reports))))
}
