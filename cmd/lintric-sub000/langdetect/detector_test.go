package langdetect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lintric "github.com/unhappychoice/lintric-sub000"
	"github.com/unhappychoice/lintric-sub000/cmd/lintric-sub000/langdetect"
)

func TestDetectLanguage_ByExtension(t *testing.T) {
	d := langdetect.New()

	lang, ok := d.DetectLanguage("main.rs")
	require.True(t, ok)
	assert.Equal(t, lintric.Rust, lang)

	lang, ok = d.DetectLanguage("component.tsx")
	require.True(t, ok)
	assert.Equal(t, lintric.TSX, lang)

	lang, ok = d.DetectLanguage("index.ts")
	require.True(t, ok)
	assert.Equal(t, lintric.TypeScript, lang)

	_, ok = d.DetectLanguage("README.md")
	assert.False(t, ok)
}

func TestFindProjectRoot_FindsNearestCargoToml(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte("[package]\nname=\"x\"\n"), 0o644))
	sub := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	file := filepath.Join(sub, "main.rs")
	require.NoError(t, os.WriteFile(file, []byte("fn main() {}"), 0o644))

	d := langdetect.New()
	got := d.FindProjectRoot(file)
	require.NotNil(t, got)
	assert.Equal(t, root, got.Path)
	assert.Equal(t, "Cargo.toml", got.Marker)
}

func TestFindProjectRoot_ReadsGoModuleName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/demo\n\ngo 1.23\n"), 0o644))
	file := filepath.Join(root, "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main"), 0o644))

	d := langdetect.New()
	got := d.FindProjectRoot(file)
	require.NotNil(t, got)
	assert.Equal(t, "go.mod", got.Marker)
	assert.Equal(t, "example.com/demo", got.Module)
}

func TestFindProjectRoot_NoneFound(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "main.rs")
	require.NoError(t, os.WriteFile(file, []byte("fn main() {}"), 0o644))

	d := langdetect.New()
	assert.Nil(t, d.FindProjectRoot(file))
}
