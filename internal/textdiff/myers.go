package textdiff

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// myersRange diffs a[aS:aE] against b[bS:bE] with diffmatchpatch, mapping
// each distinct line key to one rune. Edits are reported in absolute line
// numbers.
func myersRange(a, b []string, aS, aE, bS, bE int) []Edit {
	ids := make(map[string]rune)
	next := rune(1)
	toRunes := func(keys []string) []rune {
		runes := make([]rune, len(keys))
		for i, k := range keys {
			id, ok := ids[k]
			if !ok {
				id = next
				next++
				if next == 0xD800 {
					// surrogates do not survive the rune to string round trip
					next = 0xE000
				}
				ids[k] = id
			}
			runes[i] = id
		}
		return runes
	}
	runesA := toRunes(a[aS:aE])
	runesB := toRunes(b[bS:bE])

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(runesA, runesB, false)

	var edits []Edit
	var cur *Edit
	flush := func() {
		if cur != nil {
			edits = append(edits, *cur)
			cur = nil
		}
	}

	i, j := aS, bS
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			i += n
			j += n
		case diffmatchpatch.DiffDelete:
			if cur == nil {
				cur = &Edit{BeginA: i, EndA: i, BeginB: j, EndB: j}
			}
			i += n
			cur.EndA = i
		case diffmatchpatch.DiffInsert:
			if cur == nil {
				cur = &Edit{BeginA: i, EndA: i, BeginB: j, EndB: j}
			}
			j += n
			cur.EndB = j
		}
	}
	flush()
	return edits
}
