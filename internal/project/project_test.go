package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), "[format]\nindent = 2\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, ok, err := Discover(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, cfg.Indent)
	assert.True(t, cfg.HasIndent)
	assert.False(t, cfg.HasMaxWidth)
	assert.Equal(t, 0, cfg.MaxWidth)

	dir, ok, err := FindProjectRoot(filepath.Join(nested))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, root, dir)
}

func TestDiscoverFromFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), "[format]\nmax_width = 0\n")
	file := filepath.Join(root, "data.ron")
	writeFile(t, file, "1\n")

	cfg, ok, err := Discover(file)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, cfg.HasMaxWidth, "explicit zero must count as defined")
	assert.Equal(t, 0, cfg.MaxWidth)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"bad indent", "[format]\nindent = 0\n", ErrBadIndent},
		{"bad width", "[format]\nmax_width = -1\n", ErrBadMaxWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			writeFile(t, path, tt.content)
			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}

	unknown := filepath.Join(dir, "unknown.toml")
	writeFile(t, unknown, "[format]\ntabs = true\n")
	_, err := LoadConfig(unknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format.tabs")

	broken := filepath.Join(dir, "broken.toml")
	writeFile(t, broken, "[format\n")
	_, err = LoadConfig(broken)
	require.Error(t, err)
}

func TestExcluded(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, ConfigFileName)
	writeFile(t, cfgPath, "[files]\nexclude = [\"vendor/*\", \"*.gen.ron\"]\n")
	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)

	assert.True(t, cfg.Excluded(filepath.Join(root, "vendor", "x.ron")))
	assert.True(t, cfg.Excluded(filepath.Join(root, "deep", "a.gen.ron")))
	assert.False(t, cfg.Excluded(filepath.Join(root, "src", "x.ron")))
	assert.False(t, Config{}.Excluded("anything.ron"))
}

func TestWriteConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteConfig(dir, 2, 80, false)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, 80, cfg.MaxWidth)

	_, err = WriteConfig(dir, 4, 40, false)
	require.Error(t, err)
	_, err = WriteConfig(dir, 4, 40, true)
	require.NoError(t, err)
}

func TestDigest(t *testing.T) {
	a := HashBytes([]byte("a"))
	b := HashBytes([]byte("b"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, HashBytes([]byte("a")))
	assert.NotEqual(t, Combine(a, b), Combine(b, a))
	assert.Len(t, a.String(), 64)
}
