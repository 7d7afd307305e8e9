// Package cache provides cached storage for rendered diagram artifacts.
//
// The serve command uses a cache so repeated requests for the same
// variant/format/style don't re-run the Graphviz layout and rasterization.
// Two implementations are provided: [FileCache] for persistent on-disk
// caching and [NullCache] to disable caching entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Artifact is a rendered diagram held by the cache, carrying enough
// metadata to serve it without re-deriving anything from the key.
type Artifact struct {
	Variant     string `json:"variant"`
	Format      string `json:"format"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// Cache stores rendered artifacts keyed by their render inputs.
type Cache interface {
	// Get retrieves an artifact. The second return value reports whether
	// the key was present, unexpired, and intact.
	Get(ctx context.Context, key string) (Artifact, bool, error)

	// Set stores an artifact. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, a Artifact, ttl time.Duration) error

	// Delete removes an artifact. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey builds a cache key for a rendered diagram from everything
// that influences the output bytes: topology variant, output format, and
// the full style. Any style change produces a different key.
func ArtifactKey(variant, format string, style any) string {
	return hashKey("artifact", variant, format, style)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
