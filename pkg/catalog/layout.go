package catalog

// Layout is an ordering of catalog objects. Every element is an index
// into the catalog load order, and a valid Layout is a permutation of
// [0, N).
type Layout []int

// Identity returns the layout that keeps the load order.
func Identity(n int) Layout {
	res := make(Layout, n)
	for i := range res {
		res[i] = i
	}
	return res
}

// Clone returns a copy of the layout.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	res := make(Layout, len(l))
	copy(res, l)
	return res
}

// IsPermutation checks that the layout contains every index of [0, n)
// exactly once.
func (l Layout) IsPermutation(n int) bool {
	if len(l) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range l {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
