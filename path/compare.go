package path

import (
	"sort"
	"strings"
)

// Compare orders paths lexicographically over their raw steps, with
// ordinary byte string ordering at each position; a strict prefix is
// less than any extension of it.  It returns -1, 0 or 1 as p is less
// than, equal to or greater than q.
func (p Path) Compare(q Path) int {
	n := min(len(p.steps), len(q.steps))
	for i := 0; i < n; i++ {
		if c := strings.Compare(p.steps[i], q.steps[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.steps) < len(q.steps):
		return -1
	case len(p.steps) > len(q.steps):
		return 1
	}
	return 0
}

// Equal reports whether p and q have equal step sequences.
func (p Path) Equal(q Path) bool {
	return p.Compare(q) == 0
}

// Less reports whether p orders before q.
func (p Path) Less(q Path) bool {
	return p.Compare(q) < 0
}

// Sort sorts paths in place in Compare order.
func Sort(paths []Path) {
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].Less(paths[j])
	})
}
