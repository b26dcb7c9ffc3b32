package index

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/indexlocal/fulltextsearch/internal/analysis"
)

// Indexer builds an Index by walking a corpus directory of plain-text
// files. Unlike a reduce-from-many-workers build, corpus walking here is
// single threaded and the files are visited in sorted path order: document
// IDs must be dense and assigned in a deterministic order (I4), and that
// only holds if one goroutine hands them out one at a time.
type Indexer struct {
	corpusDir string
	cacheDir  string
	logger    *slog.Logger
}

// NewIndexer returns an Indexer that reads *.txt files from corpusDir and
// persists/reloads its built index under cacheDir.
func NewIndexer(corpusDir, cacheDir string, logger *slog.Logger) *Indexer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Indexer{corpusDir: corpusDir, cacheDir: cacheDir, logger: logger}
}

// Build returns an Index for the configured corpus. When useCache is true
// and a valid persisted index is found under cacheDir, it is loaded instead
// of re-walking the corpus; a corrupt cache falls back to a fresh build
// rather than failing the call, since the corpus itself is still available.
func (ix *Indexer) Build(ctx context.Context, useCache bool) (*Index, error) {
	if useCache && ExistsOnDisk(ix.cacheDir) {
		idx, err := Load(ix.cacheDir)
		if err == nil {
			ix.logger.Info("loaded index from cache", "dir", ix.cacheDir, "documents", idx.Size())
			return idx, nil
		}
		ix.logger.Warn("cached index failed validation, rebuilding", "dir", ix.cacheDir, "error", err)
	}

	idx, err := ix.walkCorpus(ctx)
	if err != nil {
		return nil, err
	}

	if idx.Size() == 0 {
		warnEmptyCorpus(ix.logger)
	}

	if useCache && idx.Size() > 0 {
		if err := os.MkdirAll(ix.cacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		if err := idx.Save(ix.cacheDir); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

func (ix *Indexer) walkCorpus(ctx context.Context) (*Index, error) {
	info, err := os.Stat(ix.corpusDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrConfig, ix.corpusDir)
	}

	paths, err := collectTextFiles(ix.corpusDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	idx := New()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines, err := tokenizeFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		docID := idx.AddDocument(path, lines)
		ix.logger.Debug("indexed document", "path", path, "document_id", docID, "lines", len(lines))
	}

	return idx, nil
}

// collectTextFiles lists every *.txt file under root, sorted by path so
// that document IDs are assigned deterministically across runs.
func collectTextFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".txt" {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// tokenizeFile reads path line by line and returns the stems of each line,
// in line order, ready for Index.AddDocument.
func tokenizeFile(path string) ([][]analysis.Stem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]analysis.Stem
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, analysis.Tokenize(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
