package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/diagfmt"
	"github.com/ZXY595/fnerror/internal/driver"
	"github.com/ZXY595/fnerror/internal/project"
	"github.com/ZXY595/fnerror/internal/source"
	"github.com/ZXY595/fnerror/internal/ui"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] <file.rs|dir>",
	Short: "Expand marked functions in a file or directory",
	Long: `Expand parses each input file, synthesizes an error enum per marked
function, rewrites marked call sites and return types, and prints or writes
the result. Any violation in a file aborts that file with no output.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().Bool("write", false, "write output files next to the inputs")
	expandCmd.Flags().String("format", "pretty", "diagnostics format: pretty or json")
	expandCmd.Flags().String("output", "", "output path for single-file mode (default stdout)")
	expandCmd.Flags().Int("jobs", 0, "parallel workers for directory mode (0 = GOMAXPROCS)")
	expandCmd.Flags().Bool("no-cache", false, "skip the expansion disk cache")
	expandCmd.Flags().Bool("drop-cache", false, "clear the expansion disk cache and exit")
}

func runExpand(cmd *cobra.Command, args []string) error {
	target := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	if drop, _ := cmd.Flags().GetBool("drop-cache"); drop {
		cache, err := driver.OpenDiskCache("fnerror")
		if err != nil {
			return err
		}
		return cache.DropAll()
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	cfg, err := project.FindConfig(targetDir(target, info.IsDir()))
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", project.ConfigFileName, err)
	}

	if info.IsDir() {
		return runExpandDir(cmd, target, cfg, maxDiagnostics)
	}
	return runExpandFile(cmd, target, cfg, maxDiagnostics)
}

func targetDir(target string, isDir bool) string {
	if isDir {
		return target
	}
	return "."
}

func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fileSet *source.FileSet) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return diagfmt.FormatDiagnosticsJSON(os.Stderr, bag, fileSet)
	case "", "pretty":
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected pretty or json)", format)
	}
}

func runExpandFile(cmd *cobra.Command, path string, cfg *project.Config, maxDiagnostics int) error {
	result, err := driver.Expand(path, cfg, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
			return err
		}
	}
	if result.Failed() {
		return fmt.Errorf("%s: expansion aborted", path)
	}

	write, _ := cmd.Flags().GetBool("write")
	output, _ := cmd.Flags().GetString("output")
	switch {
	case output != "" && output != "-":
		return os.WriteFile(output, result.Output, 0o644)
	case write:
		return os.WriteFile(driver.OutputPath(path, cfg), result.Output, 0o644)
	default:
		_, err := os.Stdout.Write(result.Output)
		return err
	}
}

func runExpandDir(cmd *cobra.Command, dir string, cfg *project.Config, maxDiagnostics int) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	var cache *driver.DiskCache
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		// A broken cache dir degrades to uncached runs.
		cache, _ = driver.OpenDiskCache("fnerror")
	}

	files, err := driver.ListInputFiles(dir, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintf(os.Stderr, "%s: no input files\n", dir)
		}
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	withUI := !quiet && isTerminal(os.Stdout)
	var (
		fileSet *source.FileSet
		results []driver.ExpandDirResult
	)
	if withUI {
		fileSet, results, err = expandDirWithUI(ctx, dir, cfg, maxDiagnostics, jobs, cache, files)
	} else {
		fileSet, results, err = driver.ExpandDir(ctx, dir, cfg, maxDiagnostics, jobs, cache, nil)
	}
	if err != nil {
		return err
	}

	failed := 0
	for i := range results {
		res := &results[i]
		if res.Bag != nil && res.Bag.Len() > 0 {
			res.Bag.Sort()
			if err := printDiagnostics(cmd, res.Bag, fileSet); err != nil {
				return err
			}
		}
		if res.Failed() {
			failed++
			continue
		}
		if err := os.WriteFile(driver.OutputPath(res.Path, cfg), res.Output, 0o644); err != nil {
			return err
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "expanded %d/%d files\n", len(results)-failed, len(results))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

type expandOutcome struct {
	fileSet *source.FileSet
	results []driver.ExpandDirResult
	err     error
}

func expandDirWithUI(
	ctx context.Context,
	dir string,
	cfg *project.Config,
	maxDiagnostics, jobs int,
	cache *driver.DiskCache,
	files []string,
) (*source.FileSet, []driver.ExpandDirResult, error) {
	// The UI may quit before the pipeline finishes (ctrl+c); cancelling lets
	// the workers abandon their event sends instead of blocking forever.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan expandOutcome, 1)

	go func() {
		fileSet, results, err := driver.ExpandDir(ctx, dir, cfg, maxDiagnostics, jobs, cache, events)
		outcomeCh <- expandOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("expanding "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	cancel()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
