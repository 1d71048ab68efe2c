package multiset

// Multiset counts occurrences of arbitrary comparable elements.
//
// Unlike Ordered it imposes no order on its elements; its threshold
// query selects elements by raw multiplicity rather than by cumulative
// observations. Thread-safe use must be handled by the caller.
type Multiset[T comparable] struct {
	counts map[T]uint64
	total  uint64
}

// New creates a new empty multiset.
func New[T comparable]() *Multiset[T] {
	return &Multiset[T]{counts: make(map[T]uint64)}
}

// Add adds one occurrence of elem.
func (m *Multiset[T]) Add(elem T) {
	m.counts[elem]++
	m.total++
}

// AddAll adds one occurrence of every element given.
func (m *Multiset[T]) AddAll(elems ...T) {
	for _, elem := range elems {
		m.Add(elem)
	}
}

// Count returns the number of occurrences of elem.
func (m *Multiset[T]) Count(elem T) uint64 {
	return m.counts[elem]
}

// Total returns the total number of occurrences across all elements.
func (m *Multiset[T]) Total() uint64 {
	return m.total
}

// Len returns the number of distinct elements stored.
func (m *Multiset[T]) Len() int {
	return len(m.counts)
}

// Threshold returns the elements whose multiplicity is at least t, in
// unspecified order.
//
// Threshold panics if t is zero: every element trivially qualifies at
// t = 0, which is never what a caller wants.
func (m *Multiset[T]) Threshold(t uint64) []T {
	if t == 0 {
		panic("multiset: threshold must be at least 1")
	}
	var elems []T
	for elem, count := range m.counts {
		if count >= t {
			elems = append(elems, elem)
		}
	}
	return elems
}
