package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZXY595/fnerror/internal/diagfmt"
	"github.com/ZXY595/fnerror/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rs",
	Short: "Parse a source file and report syntax diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: syntax errors", filePath)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		file := result.Builder.Files.Get(result.FileID)
		fmt.Fprintf(os.Stdout, "%s: %d top-level items\n", filePath, len(file.Items))
	}
	return nil
}
