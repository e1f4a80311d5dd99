package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// corpusRepo builds a throwaway law corpus repository.
type corpusRepo struct {
	t   *testing.T
	dir string
	wt  *gogit.Worktree
	now time.Time
}

func newCorpusRepo(t *testing.T) *corpusRepo {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	return &corpusRepo{t: t, dir: dir, wt: wt, now: time.Date(2015, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (r *corpusRepo) write(rel, content string) {
	r.t.Helper()
	full := filepath.Join(r.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		r.t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		r.t.Fatalf("WriteFile: %v", err)
	}
	if _, err := r.wt.Add(rel); err != nil {
		r.t.Fatalf("Add: %v", err)
	}
}

func (r *corpusRepo) remove(rel string) {
	r.t.Helper()
	if _, err := r.wt.Remove(rel); err != nil {
		r.t.Fatalf("Remove: %v", err)
	}
}

func (r *corpusRepo) commit(msg string) string {
	r.t.Helper()
	r.now = r.now.Add(time.Hour)
	sig := &object.Signature{Name: "Wetten", Email: "wetten@example.com", When: r.now}
	hash, err := r.wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		r.t.Fatalf("Commit: %v", err)
	}
	return hash.String()
}
