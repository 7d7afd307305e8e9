package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache implements a file-based artifact cache.
// Each entry is a JSON file holding the artifact, its checksum, and an
// optional expiration time.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in the given directory.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// cacheEntry wraps a stored artifact with integrity and expiration metadata.
type cacheEntry struct {
	Artifact  Artifact  `json:"artifact"`
	Checksum  string    `json:"checksum"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Get retrieves an artifact from the cache.
// Expired, unparseable, or corrupted entries are removed and reported as
// misses.
func (c *FileCache) Get(ctx context.Context, key string) (Artifact, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Artifact{}, false, nil
	}
	if err != nil {
		return Artifact{}, false, err
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return Artifact{}, false, nil
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return Artifact{}, false, nil
	}

	if Hash(entry.Artifact.Data) != entry.Checksum {
		_ = os.Remove(path)
		return Artifact{}, false, nil
	}

	return entry.Artifact, true, nil
}

// Set stores an artifact in the cache.
func (c *FileCache) Set(ctx context.Context, key string, a Artifact, ttl time.Duration) error {
	entry := cacheEntry{
		Artifact: a,
		Checksum: Hash(a.Data),
	}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, entryData, 0644)
}

// Delete removes an artifact from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path converts a cache key to a file path.
// Uses a simple hash-based directory structure to avoid too many files in one dir.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	// Use first 2 chars as subdirectory for distribution
	subdir := hash[:2]
	filename := hash[2:] + ".json"
	return filepath.Join(c.dir, subdir, filename)
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
