package cache

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func pngArtifact(data string) Artifact {
	return Artifact{
		Variant:     "ring",
		Format:      "png",
		ContentType: "image/png",
		Data:        []byte(data),
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	art := pngArtifact("fake png bytes")

	if err := c.Set(ctx, "artifact:abc", art, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get: miss, want hit")
	}
	if string(got.Data) != string(art.Data) {
		t.Errorf("Data = %q, want %q", got.Data, art.Data)
	}
	if got.Variant != "ring" || got.Format != "png" || got.ContentType != "image/png" {
		t.Errorf("metadata = %+v, want variant/format/content-type preserved", got)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	_, ok, err := c.Get(context.Background(), "never-set")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get: hit, want miss")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	ctx := context.Background()
	if err := c.Set(ctx, "k", pngArtifact("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expired entry still returned")
	}
}

// corruptEntries overwrites every stored entry file with the given bytes.
func corruptEntries(t *testing.T, dir string, content []byte) {
	t.Helper()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		return os.WriteFile(path, content, 0644)
	})
	if err != nil {
		t.Fatalf("corrupt entries: %v", err)
	}
}

func TestFileCacheCorruptedEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	ctx := context.Background()
	if err := c.Set(ctx, "k", pngArtifact("original"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	t.Run("unparseable entry", func(t *testing.T) {
		corruptEntries(t, dir, []byte("not json"))
		if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
			t.Errorf("Get = ok=%v err=%v, want miss without error", ok, err)
		}
	})

	if err := c.Set(ctx, "k", pngArtifact("original"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	t.Run("checksum mismatch", func(t *testing.T) {
		tampered := []byte(`{"artifact":{"variant":"ring","format":"png","content_type":"image/png","data":"dGFtcGVyZWQ="},"checksum":"00"}`)
		corruptEntries(t, dir, tampered)
		if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
			t.Errorf("Get = ok=%v err=%v, want miss without error", ok, err)
		}
	})
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	ctx := context.Background()
	c.Set(ctx, "k", pngArtifact("v"), 0)

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("deleted entry still returned")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", pngArtifact("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache returned a hit")
	}
}

func TestArtifactKey(t *testing.T) {
	type style struct{ NodeColor string }

	k1 := ArtifactKey("ring", "png", style{"lightblue"})
	k2 := ArtifactKey("ring", "png", style{"lightblue"})
	if k1 != k2 {
		t.Error("same inputs produced different keys")
	}
	if !strings.HasPrefix(k1, "artifact:") {
		t.Errorf("key = %q, want artifact: prefix", k1)
	}

	distinct := []string{
		ArtifactKey("linear", "png", style{"lightblue"}),
		ArtifactKey("ring", "svg", style{"lightblue"}),
		ArtifactKey("ring", "png", style{"red"}),
	}
	for _, k := range distinct {
		if k == k1 {
			t.Errorf("key %q collides with base key", k)
		}
	}
}
