package history

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/masmgr/lawdiff/internal/aggregation"
	"github.com/masmgr/lawdiff/internal/corpus"
	"github.com/masmgr/lawdiff/internal/git"
	"github.com/masmgr/lawdiff/internal/textdiff"
)

// ErrStartNotFound is returned when the start revision cannot be resolved.
var ErrStartNotFound = errors.New("start revision not found")

// Options configures Run.
type Options struct {
	Start       string // revision to start from; empty means HEAD
	Matcher     *corpus.Matcher
	Differ      *textdiff.Differ
	Classifier  aggregation.EditClassifier
	Logger      logrus.FieldLogger
	CaptureText bool
}

// Stats summarises a run.
type Stats struct {
	Pairs   int // commit pairs compared
	Undated int // commits skipped because their message is not a date tag
	aggregation.Stats
}

// Result is the outcome of a complete walk.
type Result struct {
	Changes *aggregation.ChangeLog
	Stats   Stats
}

// Run walks the history of repo from opts.Start and collects the document
// changes of every dated commit. Errors reading history or trees abort the
// run; problems with single entries are logged and skipped.
func Run(repo git.Repository, opts Options) (*Result, error) {
	if opts.Matcher == nil {
		opts.Matcher = corpus.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	iter, err := repo.History(opts.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, err)
	}

	walker := NewWalker(iter, opts.Matcher)
	collector := aggregation.NewCollector(repo, aggregation.CollectorOptions{
		Matcher:     opts.Matcher,
		Differ:      opts.Differ,
		Classifier:  opts.Classifier,
		Logger:      opts.Logger,
		CaptureText: opts.CaptureText,
	})

	pairs := 0
	for {
		pair, err := walker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		entries, err := repo.DiffTrees(pair.OlderSHA(), pair.Newer.SHA)
		if err != nil {
			return nil, fmt.Errorf("compare %s with %s: %w", shortSHA(pair.Newer.SHA), describeOlder(pair), err)
		}
		opts.Logger.WithFields(logrus.Fields{
			"date":    pair.Date,
			"commit":  shortSHA(pair.Newer.SHA),
			"older":   describeOlder(pair),
			"entries": len(entries),
		}).Debug("comparing commit pair")

		collector.Observe(pair.Date, entries)
		pairs++
	}

	return &Result{
		Changes: collector.Changes(),
		Stats: Stats{
			Pairs:   pairs,
			Undated: walker.Undated(),
			Stats:   collector.Stats(),
		},
	}, nil
}

func describeOlder(p Pair) string {
	if p.Older == nil {
		return "empty tree"
	}
	return shortSHA(p.Older.SHA)
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
