// Package engine is the public facade over the tokenizer, inverted index,
// and ranker: it owns an index's lifecycle (build, reload, query) the way
// this repo's original InvertedIndex owned posting lists and BM25 stats,
// narrowed to a single engine instance per corpus directory rather than a
// process-wide index.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/indexlocal/fulltextsearch/internal/analysis"
	"github.com/indexlocal/fulltextsearch/internal/index"
	"github.com/indexlocal/fulltextsearch/internal/rank"
)

// Re-exported so callers importing only this package can compare errors and
// select a strategy without reaching into internal/.
var (
	ErrConfig       = index.ErrConfig
	ErrIO           = index.ErrIO
	ErrCorruptIndex = index.ErrCorruptIndex
)

type Strategy = rank.Strategy

const (
	AND = rank.AND
	OR  = rank.OR
)

// EngineConfig configures a new Engine.
type EngineConfig struct {
	// CorpusDir is the directory recursively scanned for *.txt files.
	CorpusDir string
	// CacheDir is where the three persisted index artifacts live. Defaults
	// to the current working directory (".") when empty.
	CacheDir string
	// Logger receives structured progress and warning events. Defaults to
	// slog.Default() when nil.
	Logger *slog.Logger
}

// Engine is the full-text search facade: one per corpus, not safe for
// concurrent IndexCorpus/Search calls (see the concurrency model this
// mirrors from the reference's single-writer-lock indexing).
type Engine struct {
	cfg     EngineConfig
	logger  *slog.Logger
	indexer *index.Indexer
	idx     *index.Index
}

// New constructs an Engine for cfg.CorpusDir. It fails with ErrConfig if
// the path names an existing regular file rather than a directory.
func New(cfg EngineConfig) (*Engine, error) {
	info, err := os.Stat(cfg.CorpusDir)
	if err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a file, not a directory", ErrConfig, cfg.CorpusDir)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		cacheDir = "."
	}

	return &Engine{
		cfg:     cfg,
		logger:  logger,
		indexer: index.NewIndexer(cfg.CorpusDir, cacheDir, logger),
	}, nil
}

// IndexCorpus builds the engine's index, either by loading a valid cached
// copy (useCache) or by walking the corpus directory from scratch.
func (e *Engine) IndexCorpus(ctx context.Context, useCache bool) error {
	idx, err := e.indexer.Build(ctx, useCache)
	if err != nil {
		return err
	}
	e.idx = idx
	return nil
}

// IndexSize returns the number of indexed documents.
func (e *Engine) IndexSize() int {
	if e.idx == nil {
		return 0
	}
	return e.idx.Size()
}

// DocumentPath returns the filesystem path for a document ID.
func (e *Engine) DocumentPath(documentID int) (string, error) {
	if e.idx == nil {
		return "", ErrConfig
	}
	return e.idx.DocumentPath(documentID)
}

// SearchResult is one ranked hit: a query term matched in a document,
// carrying every occurrence of that term's stem in that document.
type SearchResult struct {
	QueryTerm      analysis.Stem
	DocumentID     int
	RelevanceScore float64
	Occurrences    []index.Occurrence
}

// Search tokenizes query, ranks the resulting stems against the index
// under strategy, and assembles SearchResults in descending score order.
// An empty tokenization (too short, all stop words) logs a note and
// returns an empty result and a nil error. ctx is checked before ranking
// begins; search itself is in-memory and does not otherwise block.
func (e *Engine) Search(ctx context.Context, query string, strategy Strategy) ([]SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.idx == nil {
		return nil, errors.New("engine: search called before IndexCorpus")
	}

	stems := analysis.Tokenize(query)
	if len(stems) == 0 {
		e.logger.Info("search produced no stems", "query", query)
		return nil, nil
	}

	terms := make([]string, len(stems))
	stemByTerm := make(map[string]analysis.Stem, len(stems))
	for i, s := range stems {
		terms[i] = s.Stemmed
		stemByTerm[s.Stemmed] = s
	}

	ranked := rank.Rank(e.idx, terms, strategy)
	results := make([]SearchResult, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, SearchResult{
			QueryTerm:      stemByTerm[r.Term],
			DocumentID:     r.DocumentID,
			RelevanceScore: r.Score,
			Occurrences:    e.idx.Occurrences(r.DocumentID, r.Term),
		})
	}
	return results, nil
}
