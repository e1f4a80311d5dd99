package git

// CommitIterator walks commits newest-first. Next returns io.EOF once the
// history is exhausted.
type CommitIterator interface {
	Next() (CommitInfo, error)
}

// TreeDiffer computes the changed paths between two commit snapshots.
// An empty older SHA stands for the empty tree.
type TreeDiffer interface {
	DiffTrees(older, newer string) ([]PathEntry, error)
}

// BlobLoader loads blob contents, refusing blobs larger than limit bytes.
type BlobLoader interface {
	LoadBlob(hash string, limit int64) ([]byte, error)
}

// Repository is everything the history pipeline needs from version control.
type Repository interface {
	TreeDiffer
	BlobLoader
	History(start string) (CommitIterator, error)
}

// Compile-time interface conformance check.
var _ Repository = (*Repo)(nil)
