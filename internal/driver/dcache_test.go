package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZXY595/fnerror/internal/project"
)

func testCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("fnerror-test")
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	return cache
}

func TestDiskCache_RoundTrip(t *testing.T) {
	cache := testCache(t)

	key := project.HashBytes([]byte("some key material"))
	in := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        "src/lib.rs",
		ContentHash: project.HashBytes([]byte("content")),
		OptionsHash: project.HashBytes([]byte("options")),
		Output:      []byte("pub enum E {}\n"),
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if out.Path != in.Path || !bytes.Equal(out.Output, in.Output) {
		t.Errorf("payload mismatch: %+v", out)
	}
	if out.ContentHash != in.ContentHash || out.OptionsHash != in.OptionsHash {
		t.Error("hashes did not survive the round trip")
	}
}

func TestDiskCache_Miss(t *testing.T) {
	cache := testCache(t)

	var out DiskPayload
	hit, err := cache.Get(project.HashBytes([]byte("never stored")), &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("expected a miss")
	}
}

func TestDiskCache_SchemaMismatchIsMiss(t *testing.T) {
	cache := testCache(t)

	key := project.HashBytes([]byte("k"))
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("a stale schema must read as a miss")
	}
}

func TestDiskCache_NilIsNoop(t *testing.T) {
	var cache *DiskCache
	if err := cache.Put(project.Digest{}, &DiskPayload{}); err != nil {
		t.Errorf("nil put: %v", err)
	}
	hit, err := cache.Get(project.Digest{}, &DiskPayload{})
	if err != nil || hit {
		t.Errorf("nil get: hit=%v err=%v", hit, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("nil drop: %v", err)
	}
}

func TestOptionsDigest_SensitiveToConfig(t *testing.T) {
	a := optionsDigest(project.DefaultConfig())
	b := optionsDigest(project.DefaultConfig())
	if a != b {
		t.Error("same config must hash the same")
	}

	cfg := project.DefaultConfig()
	cfg.Expander.ErrorSuffix = "Failure"
	if optionsDigest(cfg) == a {
		t.Error("different config must hash differently")
	}
}

func TestCacheKey_BindsContentAndOptions(t *testing.T) {
	content := project.HashBytes([]byte("content"))
	optsA := project.HashBytes([]byte("a"))
	optsB := project.HashBytes([]byte("b"))
	if cacheKey(content, optsA) == cacheKey(content, optsB) {
		t.Error("options must be part of the key")
	}
	if cacheKey(optsA, content) == cacheKey(content, optsA) {
		t.Error("key must not be symmetric")
	}
}

func TestDiskCache_PutLeavesNoTempFiles(t *testing.T) {
	cache := testCache(t)

	key := project.HashBytes([]byte("k"))
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion}); err != nil {
		t.Fatalf("put: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(cache.dir, "expanded"))
	if err != nil {
		t.Fatalf("read cache dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly the payload file, got %d entries", len(entries))
	}
}
