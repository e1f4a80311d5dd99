package git

import (
	"strings"
	"time"
)

// NoFile is the path reported for the missing side of an add or delete.
const NoFile = "/dev/null"

// CommitInfo represents minimal information about a Git commit.
type CommitInfo struct {
	SHA     string
	When    time.Time
	Message string
}

// Subject returns the trimmed commit message.
func (c CommitInfo) Subject() string {
	return strings.TrimSpace(c.Message)
}

// ChangeKind represents the type of change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindModified
	ChangeKindDeleted
	ChangeKindRenamed
	ChangeKindCopied
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "added"
	case ChangeKindModified:
		return "modified"
	case ChangeKindDeleted:
		return "deleted"
	case ChangeKindRenamed:
		return "renamed"
	case ChangeKindCopied:
		return "copied"
	default:
		return "unknown"
	}
}

// PathEntry is a single file's identity within a tree diff.
type PathEntry struct {
	OldPath string
	NewPath string
	Kind    ChangeKind
	OldHash string // empty when the old side has no blob
	NewHash string // empty when the new side has no blob
}

// Path returns the new path, falling back to the old path when the new side
// denotes no file.
func (e PathEntry) Path() string {
	if e.NewPath == "" || e.NewPath == NoFile {
		return e.OldPath
	}
	return e.NewPath
}

// RenameDetectMode controls how file renames are detected.
type RenameDetectMode int

const (
	RenameDetectOff RenameDetectMode = iota
	RenameDetectExact
	RenameDetectSimilarity
)

// ReadOptions configures the repository reader.
type ReadOptions struct {
	Include      []string // Glob patterns to include
	Exclude      []string // Glob patterns to exclude
	RenameDetect RenameDetectMode
}
