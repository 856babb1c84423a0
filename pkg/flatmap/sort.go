package flatmap

import (
	"slices"
	"sort"
)

// Sort reorders the entries in place using cmp, which must return a
// negative number when a sorts before b, zero when they are equal and a
// positive number when a sorts after b. The sort is stable, so entries
// that compare equal keep their relative order. Sorting invalidates any
// outstanding entry or value pointers.
func (m *FlatMap[K, V]) Sort(cmp func(a, b Entry[K, V]) int) {
	slices.SortStableFunc(m.items, cmp)
}

// SortKeys reorders the entries in place by key only, using cmp with
// the same contract as Sort.
func (m *FlatMap[K, V]) SortKeys(cmp func(a, b K) int) {
	slices.SortStableFunc(m.items, func(a, b Entry[K, V]) int {
		return cmp(a.Key, b.Key)
	})
}

// Search binary searches the entries for one where cmp returns zero and
// returns its slot index. The entries must already be sorted consistent
// with cmp, which returns a negative number when the probed entry sorts
// before the target and a positive number when it sorts after. When no
// entry matches, Search returns the slot where one would be inserted
// and false.
func (m *FlatMap[K, V]) Search(cmp func(entry Entry[K, V]) int) (int, bool) {
	i := sort.Search(len(m.items), func(i int) bool {
		return cmp(m.items[i]) >= 0
	})
	if i < len(m.items) && cmp(m.items[i]) == 0 {
		return i, true
	}
	return i, false
}
