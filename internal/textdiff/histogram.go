package textdiff

// maxChainLength bounds how many occurrences a line may have in the old range
// and still serve as an anchor.
const maxChainLength = 64

type region struct {
	beginA, endA int
	beginB, endB int
}

func (r region) len() int { return r.endA - r.beginA }

type histogram struct {
	a, b  []string
	edits []Edit
}

// histogramDiff anchors on the longest common run built around the line with
// the fewest occurrences, then recurses on both sides of it. Ranges with no
// usable anchor fall back to Myers.
func histogramDiff(a, b []string) []Edit {
	h := &histogram{a: a, b: b}
	h.diffRange(0, len(a), 0, len(b))
	return h.edits
}

func (h *histogram) diffRange(aS, aE, bS, bE int) {
	for aS < aE && bS < bE && h.a[aS] == h.b[bS] {
		aS++
		bS++
	}
	for aS < aE && bS < bE && h.a[aE-1] == h.b[bE-1] {
		aE--
		bE--
	}

	if aS == aE && bS == bE {
		return
	}
	if aS == aE || bS == bE {
		h.edits = append(h.edits, Edit{BeginA: aS, EndA: aE, BeginB: bS, EndB: bE})
		return
	}

	r, ok := h.anchor(aS, aE, bS, bE)
	if !ok {
		h.edits = append(h.edits, myersRange(h.a, h.b, aS, aE, bS, bE)...)
		return
	}
	h.diffRange(aS, r.beginA, bS, r.beginB)
	h.diffRange(r.endA, aE, r.endB, bE)
}

func (h *histogram) anchor(aS, aE, bS, bE int) (region, bool) {
	index := make(map[string][]int)
	for i := aS; i < aE; i++ {
		index[h.a[i]] = append(index[h.a[i]], i)
	}

	var best region
	bestLow := maxChainLength + 1
	found := false

	for j := bS; j < bE; {
		occ := index[h.b[j]]
		if len(occ) == 0 || len(occ) > maxChainLength {
			j++
			continue
		}

		next := j + 1
		for _, i := range occ {
			r := region{beginA: i, endA: i + 1, beginB: j, endB: j + 1}
			low := len(occ)
			for r.beginA > aS && r.beginB > bS && h.a[r.beginA-1] == h.b[r.beginB-1] {
				r.beginA--
				r.beginB--
				if n := len(index[h.a[r.beginA]]); n < low {
					low = n
				}
			}
			for r.endA < aE && r.endB < bE && h.a[r.endA] == h.b[r.endB] {
				if n := len(index[h.a[r.endA]]); n < low {
					low = n
				}
				r.endA++
				r.endB++
			}

			if r.endB > next {
				next = r.endB
			}
			if !found || low < bestLow || (low == bestLow && r.len() > best.len()) {
				best, bestLow, found = r, low, true
			}
		}
		j = next
	}
	return best, found
}
