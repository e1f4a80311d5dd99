package textdiff

import (
	"fmt"
	"strings"
	"unicode"
)

// Comparator decides which lines are considered equal while matching.
type Comparator int

const (
	// CompareIgnoreAllSpace treats lines as equal when they differ only in
	// whitespace.
	CompareIgnoreAllSpace Comparator = iota
	// CompareExact requires byte-identical lines.
	CompareExact
)

// ParseComparator parses a whitespace mode name.
func ParseComparator(s string) (Comparator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore-all", "ignore-all-space":
		return CompareIgnoreAllSpace, nil
	case "exact", "none":
		return CompareExact, nil
	default:
		return CompareIgnoreAllSpace, fmt.Errorf("unknown whitespace mode %q (expected ignore-all or exact)", s)
	}
}

// String returns the canonical name of the comparator.
func (c Comparator) String() string {
	if c == CompareExact {
		return "exact"
	}
	return "ignore-all"
}

// Key maps a line to the value used for equality.
func (c Comparator) Key(line string) string {
	if c == CompareExact {
		return line
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
}

func (c Comparator) keys(t *RawText) []string {
	keys := make([]string, t.Len())
	for i := range keys {
		keys[i] = c.Key(t.Line(i))
	}
	return keys
}
