// Package cache persists per-file scan results keyed by content hash, so
// repeated checks of an unchanged config skip parsing and rule execution
// entirely. Entries are msgpack blobs under the user cache directory;
// losing or wiping them is always safe.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/duersjefen/deploy-kit/internal/detect"
)

// schemaVersion is baked into every entry key. Bumping it after a change
// to the rule set or result shape orphans old entries instead of
// misreading them.
const schemaVersion = 1

// Cache is a content-addressed result store. The zero value is not
// usable; call Open.
type Cache struct {
	dir string
}

// Open creates (if needed) and returns the scan cache rooted under the
// user cache directory.
func Open() (*Cache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	return OpenAt(filepath.Join(base, "deploykit", "scans"))
}

// OpenAt opens a cache rooted at an explicit directory.
func OpenAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// entry is the serialized form. Spans survive the round trip and stay
// valid: the key is the content hash, so a hit always refers to byte-for-
// byte identical text.
type entry struct {
	Schema int           `msgpack:"schema"`
	Result detect.Result `msgpack:"result"`
}

// key derives the entry file name from the content hash and everything
// that affects the result besides the content itself.
func (c *Cache) key(contentHash [32]byte, salt string) string {
	h := sha256.New()
	h.Write(contentHash[:])
	fmt.Fprintf(h, "|v%d|%s", schemaVersion, salt)
	return filepath.Join(c.dir, hex.EncodeToString(h.Sum(nil))+".bin")
}

// Get returns the cached result for a content hash, or ok=false on miss.
// Corrupt or mismatched entries read as misses.
func (c *Cache) Get(contentHash [32]byte, salt string) (*detect.Result, bool) {
	data, err := os.ReadFile(c.key(contentHash, salt))
	if err != nil {
		return nil, false
	}
	var e entry
	if err := msgpack.Unmarshal(data, &e); err != nil || e.Schema != schemaVersion {
		return nil, false
	}
	return &e.Result, true
}

// Put stores a result. Failures are returned but callers may ignore them;
// a scan that cannot be cached is still a valid scan.
func (c *Cache) Put(contentHash [32]byte, salt string, res *detect.Result) error {
	data, err := msgpack.Marshal(entry{Schema: schemaVersion, Result: *res})
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	path := c.key(contentHash, salt)
	tmp, err := os.CreateTemp(c.dir, ".entry-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
