package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const goodSource = `#[fnerror]
fn foo() -> Result<()> {
    #[fnerr]
    Oops("bad {0}", 1 as u8)?;
    Ok(())
}
`

const badSource = `#[fnerror]
fn f() -> Result<()> {
    #[fnerr]
    Bad("x {0}", y)?;
    Ok(())
}
`

func TestExpandDir(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "b_good.rs", goodSource)
	writeTestFile(t, dir, "a_bad.rs", badSource)
	writeTestFile(t, dir, "skip.expanded.rs", "ignored\n")
	writeTestFile(t, dir, "notes.txt", "not a source file\n")

	_, results, err := ExpandDir(context.Background(), dir, nil, 100, 2, nil, nil)
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// Results come back in sorted file order.
	if filepath.Base(results[0].Path) != "a_bad.rs" || filepath.Base(results[1].Path) != "b_good.rs" {
		t.Fatalf("unexpected result order: %q, %q", results[0].Path, results[1].Path)
	}
	if !results[0].Failed() {
		t.Error("a_bad.rs should have failed")
	}
	if !results[0].Bag.HasErrors() {
		t.Error("a_bad.rs should carry diagnostics")
	}
	if results[1].Failed() {
		t.Errorf("b_good.rs should have expanded: %+v", results[1].Bag.Items())
	}
	if len(results[1].Output) == 0 {
		t.Error("b_good.rs should have output")
	}
}

func TestExpandDir_Empty(t *testing.T) {
	_, results, err := ExpandDir(context.Background(), t.TempDir(), nil, 100, 0, nil, nil)
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestExpandDir_CacheHitOnSecondRun(t *testing.T) {
	cache := testCache(t)
	dir := t.TempDir()
	writeTestFile(t, dir, "foo.rs", goodSource)

	_, first, err := ExpandDir(context.Background(), dir, nil, 100, 1, cache, nil)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first[0].Cached {
		t.Fatal("first run cannot be cached")
	}

	_, second, err := ExpandDir(context.Background(), dir, nil, 100, 1, cache, nil)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second[0].Cached {
		t.Fatal("second run over unchanged input should hit the cache")
	}
	if string(second[0].Output) != string(first[0].Output) {
		t.Error("cached output differs from the fresh one")
	}
}

func TestExpandDir_EventsCoverEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "foo.rs", goodSource)
	writeTestFile(t, dir, "bar.rs", goodSource)

	events := make(chan Event, 64)
	done := make(chan struct{})
	terminal := make(map[string]Stage)
	go func() {
		for ev := range events {
			if ev.Stage == StageDone || ev.Stage == StageError {
				terminal[ev.Path] = ev.Stage
			}
		}
		close(done)
	}()

	_, _, err := ExpandDir(context.Background(), dir, nil, 100, 2, nil, events)
	close(events)
	<-done
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	if len(terminal) != 2 {
		t.Errorf("expected a terminal event per file, got %v", terminal)
	}
}

func TestListInputFiles_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestFile(t, dir, "z.rs", "")
	writeTestFile(t, sub, "a.rs", "")
	writeTestFile(t, dir, "z.expanded.rs", "")

	files, err := ListInputFiles(dir, nil)
	if err != nil {
		t.Fatalf("ListInputFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if filepath.Base(files[0]) != "a.rs" || filepath.Base(files[1]) != "z.rs" {
		t.Errorf("unexpected order: %v", files)
	}
}

func TestExpandDir_FailuresAreNotCached(t *testing.T) {
	cache := testCache(t)
	dir := t.TempDir()
	writeTestFile(t, dir, "bad.rs", badSource)

	_, first, err := ExpandDir(context.Background(), dir, nil, 100, 1, cache, nil)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if !first[0].Failed() {
		t.Fatal("bad.rs should have failed")
	}

	_, second, err := ExpandDir(context.Background(), dir, nil, 100, 1, cache, nil)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second[0].Cached {
		t.Error("a failed file must re-expand, not replay from the cache")
	}
	if !second[0].Bag.HasErrors() {
		t.Error("re-expansion must reproduce the diagnostics")
	}
}

func TestExpandDir_CancelledRunDoesNotBlockOnEvents(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.rs", goodSource)
	writeTestFile(t, dir, "b.rs", goodSource)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nobody reads this channel; a cancelled run must still return instead
	// of blocking on the event sends.
	events := make(chan Event)
	_, _, err := ExpandDir(ctx, dir, nil, 100, 2, nil, events)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
