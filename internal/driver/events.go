package driver

import "context"

// Stage identifies where a file is in the expansion pipeline. Stages are
// reported in order; StageDone and StageError are terminal.
type Stage uint8

const (
	StageQueued Stage = iota
	StageParsing
	StageExpanding
	StageWriting
	StageDone
	StageError
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageParsing:
		return "parsing"
	case StageExpanding:
		return "expanding"
	case StageWriting:
		return "writing"
	case StageDone:
		return "done"
	case StageError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a progress notification emitted while expanding a directory.
// Index is the position of the file in the sorted work list, Total the list
// size. Cached is set when the output came from the disk cache.
type Event struct {
	Path   string
	Stage  Stage
	Index  int
	Total  int
	Cached bool
	Err    error
}

// emit sends an event, giving up once the run is cancelled so a consumer
// that stopped reading cannot wedge the pipeline behind a full channel.
func emit(ctx context.Context, events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	select {
	case events <- ev:
	case <-ctx.Done():
	}
}
