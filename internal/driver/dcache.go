package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ZXY595/fnerror/internal/project"
)

// Bump when DiskPayload changes shape.
const diskCacheSchemaVersion uint16 = 2

// DiskCache keeps expansion outputs keyed by content and options digests, so
// repeated runs over an unchanged tree skip parsing entirely.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is one cached expansion. Only successful expansions are
// stored; failed files re-expand every run so their diagnostics stay visible.
type DiskPayload struct {
	Schema uint16

	// Path is informational only; the key already encodes the content.
	Path        string
	ContentHash project.Digest
	OptionsHash project.Digest

	Output []byte
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root tidy and easy to sweep.
	return filepath.Join(c.dir, "expanded", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	// No-op after a successful rename.
	defer os.Remove(tmp)

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic swap.
	return os.Rename(tmp, p)
}

// Get reads and deserializes a payload from the disk cache. A schema
// mismatch counts as a miss.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey binds a file's content to the options that expanded it.
func cacheKey(contentHash, optionsHash project.Digest) project.Digest {
	h := sha256.New()
	h.Write(contentHash[:])
	h.Write(optionsHash[:])
	var key project.Digest
	copy(key[:], h.Sum(nil))
	return key
}

// optionsDigest hashes every configuration knob that affects output.
func optionsDigest(cfg *project.Config) project.Digest {
	if cfg == nil {
		cfg = project.DefaultConfig()
	}
	var sb strings.Builder
	sb.WriteString(cfg.Expander.MarkerFn)
	sb.WriteByte(0)
	sb.WriteString(cfg.Expander.MarkerCall)
	sb.WriteByte(0)
	sb.WriteString(cfg.Expander.ErrorSuffix)
	sb.WriteByte(0)
	sb.WriteString(cfg.Expander.ResultPath)
	sb.WriteByte(0)
	for _, d := range cfg.Expander.Derives {
		sb.WriteString(d)
		sb.WriteByte(0)
	}
	return project.HashBytes([]byte(sb.String()))
}
