package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

var (
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrObjectNotFound     = errors.New("object not found")
	ErrObjectTooLarge     = errors.New("object too large")
)

// Repo reads history, trees and blobs from a Git repository.
type Repo struct {
	repo *git.Repository
	opts ReadOptions
}

// Open opens the repository at path, searching parent directories for the
// .git directory.
func Open(path string, opts ReadOptions) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrRepositoryNotFound, path)
		}
		return nil, err
	}
	return &Repo{repo: repo, opts: opts}, nil
}

// History returns a first-parent iterator starting at the given revision.
// An empty start means HEAD.
func (r *Repo) History(start string) (CommitIterator, error) {
	if strings.TrimSpace(start) == "" {
		start = "HEAD"
	}
	hash, err := r.repo.ResolveRevision(plumbing.Revision(start))
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", start, err)
	}
	c, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", hash, err)
	}
	return &firstParentIter{next: c}, nil
}

// DiffTrees lists the paths that differ between two commits. An empty older
// SHA compares against the empty tree.
func (r *Repo) DiffTrees(older, newer string) ([]PathEntry, error) {
	newTree, err := r.tree(newer)
	if err != nil {
		return nil, err
	}
	var oldTree *object.Tree
	if older != "" {
		if oldTree, err = r.tree(older); err != nil {
			return nil, err
		}
	}

	changes, err := object.DiffTreeWithOptions(context.Background(), oldTree, newTree, r.diffTreeOptions())
	if err != nil {
		return nil, fmt.Errorf("diff %s..%s: %w", older, newer, err)
	}

	entries := make([]PathEntry, 0, len(changes))
	for _, change := range changes {
		entry, ok, err := toPathEntry(change)
		if err != nil {
			return nil, err
		}
		if !ok || !r.matchesFilters(entry.Path()) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LoadBlob returns the contents of a blob. Blobs larger than limit are not
// read; a limit of zero or less disables the check.
func (r *Repo) LoadBlob(hash string, limit int64) ([]byte, error) {
	blob, err := r.repo.BlobObject(plumbing.NewHash(hash))
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, hash)
		}
		return nil, err
	}
	if limit > 0 && blob.Size > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrObjectTooLarge, hash, blob.Size)
	}

	rd, err := blob.Reader()
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	return io.ReadAll(rd)
}

// DiffAlgorithmPreference returns the diff.algorithm setting of the
// repository, falling back to the user's global git config. It returns an
// empty string when neither sets it.
func (r *Repo) DiffAlgorithmPreference() string {
	if cfg, err := r.repo.Config(); err == nil {
		if algorithm := diffAlgorithm(cfg); algorithm != "" {
			return algorithm
		}
	}
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return ""
	}
	return diffAlgorithm(cfg)
}

func diffAlgorithm(cfg *gitconfig.Config) string {
	if cfg == nil || cfg.Raw == nil || !cfg.Raw.HasSection("diff") {
		return ""
	}
	return cfg.Raw.Section("diff").Option("algorithm")
}

func (r *Repo) tree(sha string) (*object.Tree, error) {
	c, err := r.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", sha, err)
	}
	t, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("read tree of %s: %w", sha, err)
	}
	return t, nil
}

func (r *Repo) diffTreeOptions() *object.DiffTreeOptions {
	switch r.opts.RenameDetect {
	case RenameDetectExact:
		return &object.DiffTreeOptions{DetectRenames: true, OnlyExactRenames: true}
	case RenameDetectSimilarity:
		return &object.DiffTreeOptions{DetectRenames: true, RenameScore: 60}
	default:
		return &object.DiffTreeOptions{}
	}
}

// toPathEntry converts a go-git change. Entries where neither side is a
// regular file (submodules) are dropped.
func toPathEntry(change *object.Change) (PathEntry, bool, error) {
	action, err := change.Action()
	if err != nil {
		return PathEntry{}, false, err
	}

	from, to := change.From, change.To
	if !blobMode(from.TreeEntry.Mode) && !blobMode(to.TreeEntry.Mode) {
		return PathEntry{}, false, nil
	}

	entry := PathEntry{
		OldPath: from.Name,
		NewPath: to.Name,
		OldHash: blobHash(from),
		NewHash: blobHash(to),
	}

	switch action {
	case merkletrie.Insert:
		entry.OldPath = NoFile
		entry.Kind = ChangeKindAdded
	case merkletrie.Delete:
		entry.NewPath = NoFile
		entry.Kind = ChangeKindDeleted
	default:
		if from.Name != to.Name {
			entry.Kind = ChangeKindRenamed
		} else {
			entry.Kind = ChangeKindModified
		}
	}
	return entry, true, nil
}

func blobHash(e object.ChangeEntry) string {
	if e.Name == "" || !blobMode(e.TreeEntry.Mode) || e.TreeEntry.Hash.IsZero() {
		return ""
	}
	return e.TreeEntry.Hash.String()
}

// matchesFilters checks if a path matches the include/exclude filters.
func (r *Repo) matchesFilters(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range r.opts.Exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(r.opts.Include) == 0 {
		return true
	}

	for _, pattern := range r.opts.Include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}

type firstParentIter struct {
	next *object.Commit
}

// Next returns the current commit and advances to its first parent.
func (it *firstParentIter) Next() (CommitInfo, error) {
	c := it.next
	if c == nil {
		return CommitInfo{}, io.EOF
	}
	it.next = nil

	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return CommitInfo{}, fmt.Errorf("read parent of %s: %w", c.Hash, err)
		}
		it.next = parent
	}

	return CommitInfo{
		SHA:     c.Hash.String(),
		When:    c.Committer.When,
		Message: c.Message,
	}, nil
}
