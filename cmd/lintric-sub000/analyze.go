package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/viant/afs"

	lintric "github.com/unhappychoice/lintric-sub000"
	"github.com/unhappychoice/lintric-sub000/cmd/lintric-sub000/langdetect"
)

func runAnalyze(ctx context.Context, path, languageFlag, format string, useCache bool) error {
	lang, err := resolveLanguage(path, languageFlag)
	if err != nil {
		return err
	}

	fs := afs.New()
	source, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var opts []lintric.Option
	if useCache {
		opts = append(opts, lintric.WithCache())
	}

	graph, diag, err := lintric.New(opts...).Analyze(ctx, source, lang)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%s: %d usages, %d resolved, %d unresolved\n",
		path, diag.UsageCount, diag.ResolvedCount, diag.UnresolvedCount)

	switch strings.ToLower(format) {
	case "text":
		return writeText(os.Stdout, graph)
	default:
		return writeYAML(os.Stdout, path, graph, diag)
	}
}

func resolveLanguage(path, override string) (lintric.Language, error) {
	switch strings.ToLower(override) {
	case "rust":
		return lintric.Rust, nil
	case "typescript":
		return lintric.TypeScript, nil
	case "tsx":
		return lintric.TSX, nil
	case "":
		// fall through to detection
	default:
		return 0, fmt.Errorf("unrecognised --language override %q", override)
	}

	d := langdetect.New()
	if lang, ok := d.DetectLanguage(path); ok {
		return lang, nil
	}
	return 0, fmt.Errorf("could not determine a language for %s; pass --language explicitly", path)
}
