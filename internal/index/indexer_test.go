package index

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	return dir
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 100}))
}

func TestIndexer_BuildWalksTextFilesOnly(t *testing.T) {
	corpus := writeCorpus(t, map[string]string{
		"a.txt":   "cats and dogs",
		"b.txt":   "the dog runs",
		"c.other": "ignored",
	})
	cache := t.TempDir()

	ix := NewIndexer(corpus, cache, discardLogger())
	idx, err := ix.Build(context.Background(), false)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if idx.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", idx.Size())
	}
	if idx.DocumentFrequency("dog") != 2 {
		t.Errorf("DocumentFrequency(dog) = %d, want 2", idx.DocumentFrequency("dog"))
	}
}

func TestIndexer_EmptyCorpus(t *testing.T) {
	corpus := t.TempDir()
	cache := t.TempDir()

	ix := NewIndexer(corpus, cache, discardLogger())
	idx, err := ix.Build(context.Background(), false)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if idx.Size() != 0 {
		t.Errorf("Size() = %d, want 0", idx.Size())
	}
}

func TestIndexer_UsesCacheOnSecondBuild(t *testing.T) {
	corpus := writeCorpus(t, map[string]string{"a.txt": "cats and dogs"})
	cache := t.TempDir()

	ix := NewIndexer(corpus, cache, discardLogger())
	if _, err := ix.Build(context.Background(), true); err != nil {
		t.Fatalf("first Build() = %v", err)
	}
	if !ExistsOnDisk(cache) {
		t.Fatal("expected cached index artifacts on disk after first Build()")
	}

	idx, err := ix.Build(context.Background(), true)
	if err != nil {
		t.Fatalf("second Build() = %v", err)
	}
	if idx.Size() != 1 {
		t.Errorf("Size() from cache = %d, want 1", idx.Size())
	}
}

func TestIndexer_NonDirectoryCorpusFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	ix := NewIndexer(file, t.TempDir(), discardLogger())
	if _, err := ix.Build(context.Background(), false); err == nil {
		t.Fatal("Build() with file corpus path: want error, got nil")
	}
}
