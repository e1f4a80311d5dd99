package history

import (
	"fmt"
	"io"

	"github.com/masmgr/lawdiff/internal/corpus"
	"github.com/masmgr/lawdiff/internal/git"
)

// Pair is a dated commit together with the previous dated commit in the
// walk. Older is nil for the oldest dated commit, which is compared against
// the empty tree.
type Pair struct {
	Newer git.CommitInfo
	Older *git.CommitInfo
	Date  string
}

// OlderSHA returns the SHA of the older side, or "" for the empty tree.
func (p Pair) OlderSHA() string {
	if p.Older == nil {
		return ""
	}
	return p.Older.SHA
}

type datedCommit struct {
	commit git.CommitInfo
	date   string
}

// Walker pairs each dated commit of a newest-first history with the next
// dated commit behind it. Commits whose message is not a date tag are
// skipped.
type Walker struct {
	iter    git.CommitIterator
	matcher *corpus.Matcher

	started bool
	current *datedCommit
	undated int
}

// NewWalker creates a Walker over iter.
func NewWalker(iter git.CommitIterator, matcher *corpus.Matcher) *Walker {
	if matcher == nil {
		matcher = corpus.Default()
	}
	return &Walker{iter: iter, matcher: matcher}
}

// Next returns the next pair, or io.EOF once no dated commit is left. Any
// other error comes from reading history and ends the walk.
func (w *Walker) Next() (Pair, error) {
	if !w.started {
		w.started = true
		first, err := w.nextDated()
		if err != nil {
			return Pair{}, err
		}
		w.current = first
	}
	if w.current == nil {
		return Pair{}, io.EOF
	}

	previous, err := w.nextDated()
	if err != nil {
		return Pair{}, err
	}

	pair := Pair{Newer: w.current.commit, Date: w.current.date}
	if previous != nil {
		older := previous.commit
		pair.Older = &older
	}
	w.current = previous
	return pair, nil
}

// Undated returns how many commits were skipped so far.
func (w *Walker) Undated() int {
	return w.undated
}

// nextDated advances to the next commit with a date tag. It returns nil when
// the history is exhausted.
func (w *Walker) nextDated() (*datedCommit, error) {
	for {
		c, err := w.iter.Next()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("walk history: %w", err)
		}
		if date, ok := w.matcher.DateTag(c.Message); ok {
			return &datedCommit{commit: c, date: date}, nil
		}
		w.undated++
	}
}
