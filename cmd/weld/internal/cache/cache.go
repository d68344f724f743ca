// Package cache tracks compiled widget definition fingerprints so
// unchanged files can be skipped on subsequent runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is where the fingerprint index lives, relative to the
// directory weld gen runs in.
const DefaultPath = ".weld/cache.json"

// Cache maps widget definition paths to the fingerprint of their last
// successful compilation.
type Cache struct {
	mu    sync.Mutex
	path  string
	index index
	dirty bool
}

type index struct {
	Version string           `json:"version"`
	Entries map[string]entry `json:"entries"`
	Updated time.Time        `json:"updated"`
}

type entry struct {
	Hash     string    `json:"hash"`
	Output   string    `json:"output"`
	Compiled time.Time `json:"compiled"`
}

// Open loads the index at path. A missing or corrupted index starts
// fresh; compilation must never fail because the cache is unreadable.
func Open(path string) *Cache {
	if path == "" {
		path = DefaultPath
	}
	c := &Cache{
		path:  path,
		index: index{Version: "1", Entries: make(map[string]entry)},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var idx index
	if err := json.Unmarshal(data, &idx); err != nil || idx.Entries == nil {
		return c
	}
	c.index = idx
	return c
}

// Key fingerprints a compilation: the definition source plus anything
// that changes the output, such as the rendered file options.
func Key(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Fresh reports whether source was already compiled with this
// fingerprint and its output file still exists.
func (c *Cache) Fresh(source, hash string) bool {
	c.mu.Lock()
	e, ok := c.index.Entries[source]
	c.mu.Unlock()

	if !ok || e.Hash != hash {
		return false
	}
	if _, err := os.Stat(e.Output); err != nil {
		return false
	}
	return true
}

// Record remembers a successful compilation of source into output.
func (c *Cache) Record(source, hash, output string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index.Entries[source] = entry{Hash: hash, Output: output, Compiled: time.Now()}
	c.index.Updated = time.Now()
	c.dirty = true
}

// Forget drops the entry for source, forcing its next compilation.
func (c *Cache) Forget(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.index.Entries[source]; ok {
		delete(c.index.Entries, source)
		c.index.Updated = time.Now()
		c.dirty = true
	}
}

// Save writes the index back to disk if anything changed.
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}

	data, err := json.MarshalIndent(c.index, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return err
	}
	c.dirty = false
	return nil
}
