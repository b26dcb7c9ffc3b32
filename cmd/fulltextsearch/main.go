// Command fulltextsearch indexes a corpus directory and answers queries
// from stdin, one per line, in the "read terms, print matches" shape
// common to this corpus's example CLIs.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	engine "github.com/indexlocal/fulltextsearch"
)

func main() {
	corpusDir := flag.String("corpus", ".", "directory of .txt files to index")
	cacheDir := flag.String("cache", ".", "directory for persisted index artifacts")
	noCache := flag.Bool("no-cache", false, "ignore and rebuild any cached index")
	strategyFlag := flag.String("strategy", "and", "query strategy: and|or")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	strategy, err := parseStrategy(*strategyFlag)
	if err != nil {
		fatalf(logger, "%v", err)
	}

	ctx := context.Background()

	eng, err := engine.New(engine.EngineConfig{
		CorpusDir: *corpusDir,
		CacheDir:  *cacheDir,
		Logger:    logger,
	})
	if err != nil {
		fatalf(logger, "error: %v", err)
	}

	if err := eng.IndexCorpus(ctx, !*noCache); err != nil {
		fatalf(logger, "error indexing corpus: %v", err)
	}
	logger.Info("index ready", "documents", eng.IndexSize())

	if err := runQueries(ctx, os.Stdin, os.Stdout, eng, strategy); err != nil {
		if !errors.Is(err, io.EOF) {
			fatalf(logger, "error: %v", err)
		}
	}
}

func parseStrategy(s string) (engine.Strategy, error) {
	switch s {
	case "and", "AND":
		return engine.AND, nil
	case "or", "OR":
		return engine.OR, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q, want \"and\" or \"or\"", s)
	}
}

func runQueries(ctx context.Context, r io.Reader, w io.Writer, eng *engine.Engine, strategy engine.Strategy) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		query := scanner.Text()
		results, err := eng.Search(ctx, query, strategy)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if len(results) == 0 {
			fmt.Fprintf(w, "no matches for %q\n", query)
			continue
		}
		for _, r := range results {
			path, _ := eng.DocumentPath(r.DocumentID)
			fmt.Fprintf(w, "%.4f\t%s\t%s\n", r.RelevanceScore, r.QueryTerm.Stemmed, path)
		}
	}
	return scanner.Err()
}

func fatalf(logger *slog.Logger, format string, args ...any) {
	logger.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
