package textdiff

import (
	"bytes"
	"errors"
	"fmt"
)

// binaryProbeSize is how many leading bytes are scanned for NUL.
const binaryProbeSize = 8000

// DefaultMaxSize is the largest blob diffed line by line.
const DefaultMaxSize = 50 << 20

var (
	ErrBinary   = errors.New("binary content")
	ErrTooLarge = errors.New("content too large")
)

// IsUndiffable reports whether err means no line-level diff is possible.
func IsUndiffable(err error) bool {
	return errors.Is(err, ErrBinary) || errors.Is(err, ErrTooLarge)
}

// IsBinary reports whether content looks binary: a NUL byte within the first
// binaryProbeSize bytes.
func IsBinary(content []byte) bool {
	if len(content) > binaryProbeSize {
		content = content[:binaryProbeSize]
	}
	return bytes.IndexByte(content, 0) >= 0
}

// Options configures a Differ.
type Options struct {
	Algorithm  Algorithm
	Comparator Comparator
	MaxSize    int64 // zero or less disables the size check
}

// Differ computes line edits between two versions of a text.
type Differ struct {
	opts Options
}

// NewDiffer creates a Differ. An empty algorithm selects histogram.
func NewDiffer(opts Options) *Differ {
	if opts.Algorithm == "" {
		opts.Algorithm = Histogram
	}
	return &Differ{opts: opts}
}

// MaxSize returns the configured size threshold.
func (d *Differ) MaxSize() int64 {
	return d.opts.MaxSize
}

// Algorithm returns the configured algorithm.
func (d *Differ) Algorithm() Algorithm {
	return d.opts.Algorithm
}

// Prepare checks both blobs and splits them into lines. It fails with
// ErrTooLarge or ErrBinary when a line diff is not possible.
func (d *Differ) Prepare(oldContent, newContent []byte) (*RawText, *RawText, error) {
	for _, side := range []struct {
		name    string
		content []byte
	}{{"old", oldContent}, {"new", newContent}} {
		if d.opts.MaxSize > 0 && int64(len(side.content)) > d.opts.MaxSize {
			return nil, nil, fmt.Errorf("%s side: %w (%d bytes)", side.name, ErrTooLarge, len(side.content))
		}
		if IsBinary(side.content) {
			return nil, nil, fmt.Errorf("%s side: %w", side.name, ErrBinary)
		}
	}
	return NewRawText(oldContent), NewRawText(newContent), nil
}

// Diff returns the ordered, non-overlapping edits turning a into b.
func (d *Differ) Diff(a, b *RawText) []Edit {
	cmp := d.opts.Comparator
	return d.opts.Algorithm.diff(cmp.keys(a), cmp.keys(b))
}
