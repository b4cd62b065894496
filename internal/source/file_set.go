package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns every document loaded during one run.
type FileSet struct {
	files   []File
	index   map[string]FileID // path -> latest id
	baseDir string
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase creates a FileSet whose relative paths are resolved against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{
		files:   make([]File, 0, 1),
		index:   make(map[string]FileID),
		baseDir: baseDir,
	}
}

// BaseDir returns the directory used for relative display paths.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add stores already normalized content and returns a fresh FileID.
// Adding the same path twice creates a new version; GetLatest returns the newest.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	id := FileID(n)
	normalized := normalizePath(path)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalized,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fileSet.index[normalized] = id
	return id
}

// AddBytes normalizes BOM and CRLF in raw input and stores it.
func (fileSet *FileSet) AddBytes(path string, raw []byte, flags FileFlags) FileID {
	content, hadBOM := removeBOM(raw)
	content, hadCRLF := normalizeCRLF(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags)
}

// Load reads a file from disk and normalizes it.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fileSet.AddBytes(path, raw, 0), nil
}

// AddVirtual adds in-memory content with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.AddBytes(name, content, FileVirtual)
}

// Get returns the file for id. It panics on an id from another set.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// Len reports how many file versions the set holds.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// GetLatest returns the newest FileID registered for path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// GetLine returns the text of the 1-based line without its newline.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lines, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index overflow: %w", err))
	}
	size, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < lines:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}
	if lineNum-1 < lines {
		end = f.LineIdx[lineNum-1]
	} else {
		end = size
	}
	if start > size || start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// DisplayPath returns the path relative to baseDir when possible.
func (f *File) DisplayPath(baseDir string) string {
	if baseDir == "" || !filepath.IsAbs(f.Path) {
		return f.Path
	}
	rel, err := filepath.Rel(baseDir, f.Path)
	if err != nil {
		return f.Path
	}
	return filepath.ToSlash(rel)
}
