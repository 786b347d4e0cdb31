package shadergui

// FoldoutStore holds the open/closed flag of every foldout, keyed by the
// index of the parameter that declares it. It is the only inspector state that
// outlives a render pass.
type FoldoutStore struct {
	open []bool
}

// Resize makes the store hold exactly n flags. When the parameter count
// changed since the last pass every flag is reset to closed, since indices no
// longer refer to the same parameters.
func (s *FoldoutStore) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if len(s.open) == n {
		return
	}
	s.open = make([]bool, n)
}

// Len returns the number of tracked indices.
func (s *FoldoutStore) Len() int { return len(s.open) }

// Open reports whether the foldout at index i is open. Out-of-range indices
// report closed.
func (s *FoldoutStore) Open(i int) bool {
	if i < 0 || i >= len(s.open) {
		return false
	}
	return s.open[i]
}

// SetOpen stores the flag for index i. Out-of-range indices are ignored.
func (s *FoldoutStore) SetOpen(i int, open bool) {
	if i < 0 || i >= len(s.open) {
		return
	}
	s.open[i] = open
}

// AnyOpen reports whether any foldout in [from, to] is open. Bounds are
// clipped to the store.
func (s *FoldoutStore) AnyOpen(from, to int) bool {
	if from < 0 {
		from = 0
	}
	if to >= len(s.open) {
		to = len(s.open) - 1
	}
	for i := to; i >= from; i-- {
		if s.open[i] {
			return true
		}
	}
	return false
}
