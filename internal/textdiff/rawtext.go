package textdiff

import (
	"bytes"
	"strings"
)

// RawText is a blob split into lines. Line boundaries follow '\n'; the final
// line need not be terminated.
type RawText struct {
	content []byte
	starts  []int
}

// NewRawText indexes the line starts of content.
func NewRawText(content []byte) *RawText {
	t := &RawText{content: content}
	for pos := 0; pos < len(content); {
		t.starts = append(t.starts, pos)
		nl := bytes.IndexByte(content[pos:], '\n')
		if nl < 0 {
			break
		}
		pos += nl + 1
	}
	return t
}

// Len returns the number of lines.
func (t *RawText) Len() int {
	return len(t.starts)
}

// Line returns line i without its line terminator.
func (t *RawText) Line(i int) string {
	line := string(t.content[t.starts[i]:t.end(i)])
	return strings.TrimSuffix(line, "\n")
}

// Slice returns the raw text of lines [begin, end), terminators included.
func (t *RawText) Slice(begin, end int) string {
	if begin >= end || begin >= t.Len() {
		return ""
	}
	if end > t.Len() {
		end = t.Len()
	}
	return string(t.content[t.starts[begin]:t.end(end-1)])
}

// String returns the whole text.
func (t *RawText) String() string {
	return string(t.content)
}

func (t *RawText) end(i int) int {
	if i+1 < len(t.starts) {
		return t.starts[i+1]
	}
	return len(t.content)
}
