// Package langdetect picks a core language selector for a bare file path —
// the one piece of project/repository awareness the CLI needs that the core
// (package lintric) deliberately has none of (spec.md's core takes a
// language selector as an explicit input, never infers one).
package langdetect

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"

	lintric "github.com/unhappychoice/lintric-sub000"
)

// projectMarkers lists the root-marker filenames FindProjectRoot looks for,
// in the order they are checked within each directory; the one found is
// reported in ProjectRoot.Marker. Unlike the teacher's full
// repository.Detector, langdetect only carries markers for the languages this
// system resolves (Rust, TypeScript) plus package.json and go.mod.
var projectMarkers = []string{"Cargo.toml", "tsconfig.json", "package.json", "go.mod"}

// ProjectRoot describes the nearest enclosing project root found by walking
// up from a file path.
type ProjectRoot struct {
	Path   string
	Marker string
	Module string // populated only for a go.mod root, via golang.org/x/mod/modfile
}

// Detector finds a file's language and (optionally) its enclosing project
// root.
type Detector struct {
	fs afs.Service
}

// New creates a Detector backed by afs for marker-file reads.
func New() *Detector {
	return &Detector{fs: afs.New()}
}

// DetectLanguage picks a core language selector by file extension alone
// (.rs, .tsx, .ts/.mts/.cts); any other extension reports ok=false. Project
// markers are not consulted.
func (d *Detector) DetectLanguage(path string) (lintric.Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rs":
		return lintric.Rust, true
	case ".tsx":
		return lintric.TSX, true
	case ".ts", ".mts", ".cts":
		return lintric.TypeScript, true
	default:
		return 0, false
	}
}

// FindProjectRoot walks up from path looking for the nearest marker file in
// projectMarkers, returning nil if none is found before the filesystem root.
func (d *Detector) FindProjectRoot(path string) *ProjectRoot {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}
	dir := abs
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		for _, marker := range projectMarkers {
			markerPath := filepath.Join(dir, marker)
			if _, err := os.Stat(markerPath); err != nil {
				continue
			}
			root := &ProjectRoot{Path: dir, Marker: marker}
			if marker == "go.mod" {
				root.Module = d.readGoModulePath(markerPath)
			}
			return root
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

// readGoModulePath extracts the module path from a go.mod file, for the one
// marker type whose content needs a real parser rather than a file-exists
// check. Failures are non-fatal: a go.mod root with an unparseable module
// line still reports as a root, just without a module name.
func (d *Detector) readGoModulePath(goModPath string) string {
	content, err := d.fs.DownloadWithURL(context.Background(), goModPath)
	if err != nil || len(content) == 0 {
		return ""
	}
	mod, err := modfile.Parse(goModPath, content, nil)
	if err != nil || mod.Module == nil {
		return ""
	}
	return mod.Module.Mod.Path
}
