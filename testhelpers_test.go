package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/masmgr/lawdiff/cmd"
)

// createTestRepo creates a temporary git repository
func createTestRepo(t *testing.T) (string, *git.Repository) {
	tmpDir := t.TempDir()

	repo, err := git.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}

	return tmpDir, repo
}

// commitFiles writes the given files, removes the ones mapped to "" and
// commits with message at commitTime.
func commitFiles(t *testing.T, repo *git.Repository, message string, files map[string]string, commitTime time.Time) {
	t.Helper()
	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	for name, content := range files {
		if content == "" {
			if _, err := w.Remove(name); err != nil {
				t.Fatalf("Failed to remove %s: %v", name, err)
			}
			continue
		}
		path := filepath.Join(w.Filesystem.Root(), name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if _, err := w.Add(name); err != nil {
			t.Fatalf("Failed to add file: %v", err)
		}
	}

	sig := &object.Signature{Name: "Test Author", Email: "test@example.com", When: commitTime}
	if _, err := w.Commit(message, &git.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
}

// runApp runs the CLI with its output streams discarded.
func runApp(t *testing.T, args ...string) error {
	t.Helper()
	app := cmd.App()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	return app.Run(append([]string{"lawdiff"}, args...))
}
