package textdiff

import (
	"fmt"
	"strings"
)

// Algorithm names a line diff algorithm.
type Algorithm string

const (
	Histogram Algorithm = "histogram"
	Myers     Algorithm = "myers"
)

// ParseAlgorithm maps a git diff.algorithm value onto a supported algorithm.
// An empty name selects histogram.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "histogram", "patience":
		return Histogram, nil
	case "myers", "default", "minimal":
		return Myers, nil
	default:
		return Histogram, fmt.Errorf("unknown diff algorithm %q (expected histogram or myers)", s)
	}
}

func (a Algorithm) diff(keysA, keysB []string) []Edit {
	if a == Myers {
		return myersRange(keysA, keysB, 0, len(keysA), 0, len(keysB))
	}
	return histogramDiff(keysA, keysB)
}
