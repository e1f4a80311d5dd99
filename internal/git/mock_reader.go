package git

import (
	"fmt"
	"io"
)

// MockRepository is a test double for Repo.
// It allows tests to provide predefined history, diffs and blobs without
// needing a real Git repository.
type MockRepository struct {
	Commits []CommitInfo           // newest first
	Diffs   map[string][]PathEntry // keyed by DiffKey(older, newer)
	Blobs   map[string][]byte
	Error   error // returned by History and DiffTrees when set
}

// NewMockRepository creates a new MockRepository with the given history.
func NewMockRepository(commits []CommitInfo) *MockRepository {
	return &MockRepository{
		Commits: commits,
		Diffs:   make(map[string][]PathEntry),
		Blobs:   make(map[string][]byte),
	}
}

// DiffKey builds the Diffs map key for a commit pair.
func DiffKey(older, newer string) string {
	return older + ".." + newer
}

// History returns an iterator over the predefined commits.
func (m *MockRepository) History(_ string) (CommitIterator, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return &sliceIter{commits: m.Commits}, nil
}

// DiffTrees returns the predefined entries for the pair.
func (m *MockRepository) DiffTrees(older, newer string) ([]PathEntry, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Diffs[DiffKey(older, newer)], nil
}

// LoadBlob returns the predefined blob contents.
func (m *MockRepository) LoadBlob(hash string, limit int64) ([]byte, error) {
	data, ok := m.Blobs[hash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, hash)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrObjectTooLarge, hash, len(data))
	}
	return data, nil
}

type sliceIter struct {
	commits []CommitInfo
	pos     int
}

func (it *sliceIter) Next() (CommitInfo, error) {
	if it.pos >= len(it.commits) {
		return CommitInfo{}, io.EOF
	}
	c := it.commits[it.pos]
	it.pos++
	return c, nil
}

// Compile-time interface conformance check.
var _ Repository = (*MockRepository)(nil)
