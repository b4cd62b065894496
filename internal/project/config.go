package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the decoded .ronfmt.toml. Has* fields tell keys written in the
// file from zero values, so the CLI can layer flags on top.
type Config struct {
	Path string

	Indent      int
	HasIndent   bool
	MaxWidth    int
	HasMaxWidth bool

	// Exclude holds slash separated glob patterns relative to the config dir.
	Exclude []string
}

var (
	// ErrBadIndent indicates a non-positive [format].indent.
	ErrBadIndent = errors.New("[format].indent must be positive")
	// ErrBadMaxWidth indicates a negative [format].max_width.
	ErrBadMaxWidth = errors.New("[format].max_width must not be negative")
)

type configFile struct {
	Format struct {
		Indent   int `toml:"indent"`
		MaxWidth int `toml:"max_width"`
	} `toml:"format"`
	Files struct {
		Exclude []string `toml:"exclude"`
	} `toml:"files"`
}

// LoadConfig parses a .ronfmt.toml file.
func LoadConfig(path string) (Config, error) {
	var raw configFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg := Config{
		Path:        path,
		Indent:      raw.Format.Indent,
		HasIndent:   meta.IsDefined("format", "indent"),
		MaxWidth:    raw.Format.MaxWidth,
		HasMaxWidth: meta.IsDefined("format", "max_width"),
	}
	if cfg.HasIndent && cfg.Indent <= 0 {
		return Config{}, fmt.Errorf("%s: %w", path, ErrBadIndent)
	}
	if cfg.HasMaxWidth && cfg.MaxWidth < 0 {
		return Config{}, fmt.Errorf("%s: %w", path, ErrBadMaxWidth)
	}
	for _, pattern := range raw.Files.Exclude {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if _, err := filepath.Match(pattern, ""); err != nil {
			return Config{}, fmt.Errorf("%s: bad exclude pattern %q: %w", path, pattern, err)
		}
		cfg.Exclude = append(cfg.Exclude, pattern)
	}
	return cfg, nil
}

// Discover finds and loads the config governing startDir.
// ok is false when there is none.
func Discover(startDir string) (cfg Config, ok bool, err error) {
	path, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return Config{}, ok, err
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Excluded reports whether path matches one of the exclude patterns.
func (c Config) Excluded(path string) bool {
	if len(c.Exclude) == 0 || c.Path == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(filepath.Dir(c.Path), abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

// WriteConfig writes a .ronfmt.toml with the given settings into dir.
// An existing file is left alone unless force is set.
func WriteConfig(dir string, indent, maxWidth int, force bool) (string, error) {
	path := filepath.Join(dir, ConfigFileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists", path)
		}
	}
	data := map[string]any{
		"format": map[string]any{
			"indent":    indent,
			"max_width": maxWidth,
		},
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("%s: failed to encode TOML: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
