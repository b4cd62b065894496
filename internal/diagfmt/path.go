package diagfmt

import (
	"path/filepath"
	"strings"

	"ronfmt/internal/source"
)

// formatPath renders the path of f according to mode.
func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		if f.Flags&source.FileVirtual != 0 {
			return f.Path
		}
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return f.Path
		}
		return filepath.ToSlash(abs)
	case PathModeRelative:
		return f.DisplayPath(fs.BaseDir())
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		rel := f.DisplayPath(fs.BaseDir())
		if strings.HasPrefix(rel, "../") {
			return f.Path
		}
		return rel
	}
}
