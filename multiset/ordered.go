package multiset

import "slices"

// Ordered is a multiset of uint64 values that keeps its distinct values
// sorted so they can be scanned from the highest value downward.
//
// The core query is Threshold: given the prefix semantics of sequence
// numbers (an insertion of value v also counts as an observation of
// every value below v), Threshold(t) reports the largest value observed
// by at least t of the insertions performed so far.
//
// Values only accumulate; there is no removal. Thread-safe use must be
// handled by the caller.
type Ordered struct {
	counts map[uint64]uint64
	values []uint64 // distinct values, ascending
	total  uint64
}

// NewOrdered creates a new empty ordered multiset.
func NewOrdered() *Ordered {
	return &Ordered{counts: make(map[uint64]uint64)}
}

// Insert adds one occurrence of v. It always succeeds.
func (m *Ordered) Insert(v uint64) {
	m.InsertN(v, 1)
}

// InsertN adds n occurrences of v at once. Inserting zero occurrences
// is a no-op and does not record v as a distinct value.
func (m *Ordered) InsertN(v uint64, n uint64) {
	if n == 0 {
		return
	}
	if _, ok := m.counts[v]; !ok {
		i, _ := slices.BinarySearch(m.values, v)
		m.values = slices.Insert(m.values, i, v)
	}
	m.counts[v] += n
	m.total += n
}

// Count returns the number of occurrences of v.
func (m *Ordered) Count(v uint64) uint64 {
	return m.counts[v]
}

// Total returns the total number of occurrences across all values.
func (m *Ordered) Total() uint64 {
	return m.total
}

// Len returns the number of distinct values stored.
func (m *Ordered) Len() int {
	return len(m.values)
}

// Max returns the highest value stored, or false if the multiset is
// empty.
func (m *Ordered) Max() (uint64, bool) {
	if len(m.values) == 0 {
		return 0, false
	}
	return m.values[len(m.values)-1], true
}

// Threshold returns the largest value v such that the number of
// occurrences of values greater than or equal to v is at least t.
// It returns false when fewer than t occurrences exist in total.
//
// Threshold panics if t is zero: every value trivially qualifies at
// t = 0, which is never what a caller wants.
func (m *Ordered) Threshold(t uint64) (uint64, bool) {
	if t == 0 {
		panic("multiset: threshold must be at least 1")
	}
	if m.total < t {
		return 0, false
	}

	// Scan distinct values from the highest down, accumulating
	// multiplicities. An occurrence of a high value counts as an
	// observation of every lower value, so the running total is the
	// number of insertions that reached the current value.
	var reached uint64
	for i := len(m.values) - 1; i >= 0; i-- {
		v := m.values[i]
		reached += m.counts[v]
		if reached >= t {
			return v, true
		}
	}

	// Unreachable: the running total ends at m.total, which is >= t.
	return 0, false
}
