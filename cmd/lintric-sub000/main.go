// Command lintric-sub000 is the out-of-scope CLI collaborator spec.md §6
// describes: it loads a single source file, picks a language, calls
// lintric.Analyze read-only, and renders the resulting graph. It never
// re-implements core semantics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lintric-sub000",
		Short:         "Compute an inter-line dependency graph for a single Rust or TypeScript/TSX file.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newAnalyzeCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	var (
		languageFlag string
		format       string
		cache        bool
	)
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a single source file and print its dependency graph.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), args[0], languageFlag, format, cache)
		},
	}
	cmd.Flags().StringVar(&languageFlag, "language", "", "Override language detection (rust|typescript|tsx).")
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml|text).")
	cmd.Flags().BoolVar(&cache, "cache", false, "Enable the optional resolution cache.")
	return cmd
}
