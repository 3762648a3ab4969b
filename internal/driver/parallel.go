package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/project"
	"github.com/ZXY595/fnerror/internal/source"
)

// ExpandDirResult is the outcome for one file of a directory run.
type ExpandDirResult struct {
	Path   string
	Bag    *diag.Bag
	Output []byte // nil when expansion aborted
	Cached bool
}

// Failed reports whether the file produced no usable output.
func (r *ExpandDirResult) Failed() bool {
	return r.Output == nil
}

// ListInputFiles returns the sorted *.rs files under dir, skipping files
// that look like previous expansion outputs.
func ListInputFiles(dir string, cfg *project.Config) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".rs") {
			return nil
		}
		if IsExpandedOutput(path, cfg) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order.
	sort.Strings(files)
	return files, nil
}

// ExpandDir expands every input file under dir in parallel. Results come back
// in the sorted file order regardless of completion order. cache and events
// may be nil.
func ExpandDir(
	ctx context.Context,
	dir string,
	cfg *project.Config,
	maxDiagnostics, jobs int,
	cache *DiskCache,
	events chan<- Event,
) (*source.FileSet, []ExpandDirResult, error) {
	if cfg == nil {
		cfg = project.DefaultConfig()
	}

	files, err := ListInputFiles(dir, cfg)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Preload everything up front; load failures become diagnostics, not
	// run-aborting errors.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	optsHash := optionsDigest(cfg)

	// Each goroutine owns a distinct index, so no mutex around results.
	results := make([]ExpandDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	total := len(files)
	for i, path := range files {
		i, path := i, path
		emit(gctx, events, Event{Path: path, Stage: StageQueued, Index: i, Total: total})
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = ExpandDirResult{Path: path, Bag: bag}
				emit(gctx, events, Event{Path: path, Stage: StageError, Index: i, Total: total, Err: loadErr})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			contentHash := project.Digest(file.Hash)
			key := cacheKey(contentHash, optsHash)

			var payload DiskPayload
			if hit, err := cache.Get(key, &payload); err == nil && hit {
				results[i] = ExpandDirResult{
					Path:   path,
					Bag:    bag,
					Output: payload.Output,
					Cached: true,
				}
				emit(gctx, events, Event{Path: path, Stage: StageDone, Index: i, Total: total, Cached: true})
				return nil
			}

			emit(gctx, events, Event{Path: path, Stage: StageParsing, Index: i, Total: total})
			res, err := expandLoaded(fileSet, fileID, path, cfg, maxDiagnostics)
			if err != nil {
				return err
			}
			emit(gctx, events, Event{Path: path, Stage: StageExpanding, Index: i, Total: total})

			results[i] = ExpandDirResult{
				Path:   path,
				Bag:    res.Bag,
				Output: res.Output,
			}

			// Only successful expansions are cached: diagnostics don't
			// survive a round trip through the cache, so a failed file must
			// re-expand every run to keep its errors visible. Cache write
			// failures are not worth failing the run over.
			if !res.Failed() {
				_ = cache.Put(key, &DiskPayload{
					Schema:      diskCacheSchemaVersion,
					Path:        path,
					ContentHash: contentHash,
					OptionsHash: optsHash,
					Output:      res.Output,
				})
			}

			stage := StageDone
			if res.Failed() {
				stage = StageError
			}
			emit(gctx, events, Event{Path: path, Stage: stage, Index: i, Total: total})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
