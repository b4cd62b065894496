package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"ronfmt/internal/format"
	"ronfmt/internal/observ"
	"ronfmt/internal/project"
	"ronfmt/internal/source"
	"ronfmt/internal/version"
)

// BackupSuffix is appended to the path of a file before it is rewritten.
const BackupSuffix = ".bak"

// FormatOptions configures code formatting.
type FormatOptions struct {
	// Check reports files that would change without touching them.
	Check bool
	// Stdout returns formatted content in the results without touching files.
	Stdout bool
	// Backup copies a file to <file>.bak before rewriting it in place.
	Backup bool
	// Jobs bounds the number of files formatted at once (0 = GOMAXPROCS).
	Jobs int
	// Timings records per-file phase durations in FormatResult.Timing.
	Timings bool

	Options  format.Options
	Cache    *DiskCache
	Progress ProgressSink
	// Skip filters out excluded files while collecting.
	Skip func(path string) bool
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	Backup    string
	Timing    *observ.Report
}

// ErrNoFiles is returned when the paths hold nothing to format.
var ErrNoFiles = errors.New("format: no source files found")

// FormatPaths formats provided files or directories (recursively collecting .ron files).
// When opts.Check is true, files are not modified; Changed indicates whether formatting
// would update the file contents. When opts.Stdout is true, formatted content is returned
// in the results without touching files on disk. Per-file failures are reported
// in FormatResult.Err; the error return is for cancellation and collection failures.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectFiles(ctx, paths, opts.Skip)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	return FormatFiles(ctx, files, opts)
}

// FormatFiles formats an already collected file list, in parallel.
// Results are in the order of files.
func FormatFiles(ctx context.Context, files []string, opts FormatOptions) ([]FormatResult, error) {
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(path string, opts FormatOptions) FormatResult {
	started := time.Now()
	timer := observ.NewTimer()
	result := FormatResult{Path: path}
	fail := func(stage Stage, err error) FormatResult {
		result.Err = err
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return result
	}
	finish := func(status Status) FormatResult {
		if opts.Timings {
			report := timer.Report()
			result.Timing = &report
		}
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: status, Elapsed: time.Since(started)})
		return result
	}

	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	idx := timer.Begin("read")
	data, err := os.ReadFile(path)
	timer.End(idx, "")
	if err != nil {
		return fail(StageRead, fmt.Errorf("read %s: %w", path, err))
	}

	key := CacheKey(data, opts.Options)
	if opts.Cache != nil {
		var entry CacheEntry
		if hit, _ := opts.Cache.Get(key, &entry); hit {
			result.Cached = true
			if opts.Stdout {
				result.Formatted = data
			}
			return finish(StatusCached)
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	fileSet := source.NewFileSet()
	sf := fileSet.Get(fileSet.AddBytes(path, data, 0))
	idx = timer.Begin("parse")
	doc, err := format.ParseFile(fileSet, sf, opts.Options)
	timer.End(idx, "")
	if err != nil {
		return fail(StageParse, err)
	}

	emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusWorking})
	idx = timer.Begin("format")
	formatted := format.Document(doc, opts.Options, len(data))
	timer.End(idx, strconv.Itoa(len(formatted))+" bytes")

	// compare with the raw bytes: BOM or CRLF alone is a change
	result.Changed = !bytes.Equal(data, formatted)

	switch {
	case opts.Check:
		if !result.Changed {
			rememberCanonical(opts.Cache, key, path, formatted)
		}
	case opts.Stdout:
		result.Formatted = formatted
		if !result.Changed {
			rememberCanonical(opts.Cache, key, path, formatted)
		}
	case result.Changed:
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		idx = timer.Begin("write")
		backup, err := writeInPlace(path, data, formatted, opts.Backup)
		timer.End(idx, "")
		if err != nil {
			return fail(StageWrite, err)
		}
		result.Backup = backup
		rememberCanonical(opts.Cache, CacheKey(formatted, opts.Options), path, formatted)
	default:
		rememberCanonical(opts.Cache, key, path, formatted)
	}
	return finish(StatusDone)
}

func writeInPlace(path string, original, formatted []byte, backup bool) (string, error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	var backupPath string
	if backup {
		backupPath = path + BackupSuffix
		if err := os.WriteFile(backupPath, original, mode.Perm()); err != nil {
			return "", fmt.Errorf("backup %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
		return backupPath, fmt.Errorf("write %s: %w", path, err)
	}
	return backupPath, nil
}

func rememberCanonical(cache *DiskCache, key project.Digest, path string, content []byte) {
	if cache == nil {
		return
	}
	size, err := safecast.Conv[uint64](len(content))
	if err != nil {
		return
	}
	// a failed cache write only costs a re-format next time
	_ = cache.Put(key, &CacheEntry{Path: path, Size: size, Stored: time.Now()})
}

// CacheKey digests content together with everything that affects the output.
func CacheKey(content []byte, opt format.Options) project.Digest {
	settings := fmt.Sprintf("ronfmt %s indent=%d width=%d", version.Plain(), opt.IndentWidth, opt.MaxLineWidth)
	return project.Combine(project.HashBytes(content), project.HashBytes([]byte(settings)))
}
