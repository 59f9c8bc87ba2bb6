package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when an entry exists but has
// exceeded its time-to-live. The stale data stays on disk; callers should
// fetch fresh data and store it with [Cache.Set].
//
// Check with errors.Is:
//
//	ok, err := cache.Get("key", &value)
//	if errors.Is(err, httputil.ErrExpired) {
//	    // refetch and Set
//	}
var ErrExpired = errors.New("cache entry expired")

// Cache is file-based storage for JSON-marshalable values.
//
// Each entry is one JSON file whose name is the SHA-256 hash of the key, so
// arbitrary keys (full command lines, API URLs) are safe filenames. Entries
// expire by file modification time; a TTL of 0 means they never do.
//
// A Cache is not goroutine-safe, but separate Cache values (even in separate
// processes) can share a directory: writes are whole-file operations.
//
// Use [Cache.Namespace] to scope keys per data source:
//
//	probes := cache.Namespace("probe:")
//	issues := cache.Namespace("github:")
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// DefaultDir returns the default cache directory, ~/.cache/cliscribe.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".cache", "cliscribe"), nil
}

// NewCache creates a Cache storing entries in dir with the given TTL. An
// empty dir selects [DefaultDir]. The directory is created if missing;
// creation failure is the only error.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Dir returns the absolute path to the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the time-to-live for cache entries; 0 means no expiration.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get retrieves a cached value by key and unmarshals it into v, which must
// be a pointer.
//
// Outcomes:
//   - (true, nil): hit; v holds the cached value.
//   - (false, nil): miss; v is unchanged.
//   - (false, ErrExpired): entry exists but is past its TTL; v is unchanged.
//   - (false, other): I/O or unmarshal error.
//
// Get never mutates the cache; reads do not refresh TTLs.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// Set stores v under key, overwriting any previous entry and resetting its
// TTL. Errors come from JSON marshaling or the file write.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(c.prefix+key), data, 0o644)
}

// Clear deletes every entry in the cache directory and reports how many
// files were removed. The directory itself is kept. Entries from all
// namespaces sharing the directory are removed.
func (c *Cache) Clear() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// Namespace returns a Cache view that prefixes every key with prefix. The
// view shares the parent's directory and TTL. Namespaces nest:
//
//	cache.Namespace("github:").Namespace("issues:")
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		dir:    c.dir,
		ttl:    c.ttl,
		prefix: c.prefix + prefix,
	}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
