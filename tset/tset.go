package tset

import "github.com/causalkit/threshold/multiset"

// TSet accumulates sets of elements and answers threshold-union
// queries over them. Sets only accumulate; there is no removal.
// Thread-safe use must be handled by the caller.
type TSet[T comparable] struct {
	sets        uint64
	occurrences *multiset.Multiset[T]
}

// New creates a new empty threshold set.
func New[T comparable]() *TSet[T] {
	return &TSet[T]{occurrences: multiset.New[T]()}
}

// Add records one set of elements. The elements of a single call are
// treated as a set: callers must pass distinct elements, or the
// duplicates will be counted as if they appeared in separate sets.
func (s *TSet[T]) Add(elems ...T) {
	s.sets++
	s.occurrences.AddAll(elems...)
}

// SetCount returns the number of sets added.
func (s *TSet[T]) SetCount() uint64 {
	return s.sets
}

// Count returns the number of added sets that contain elem.
func (s *TSet[T]) Count(elem T) uint64 {
	return s.occurrences.Count(elem)
}

// ThresholdUnion returns the elements present in at least t of the
// added sets, in unspecified order. It panics if t is zero.
func (s *TSet[T]) ThresholdUnion(t uint64) []T {
	return s.occurrences.Threshold(t)
}

// Union returns the elements present in at least one of the added
// sets.
func (s *TSet[T]) Union() []T {
	return s.ThresholdUnion(1)
}

// Intersection returns the elements present in every added set.
func (s *TSet[T]) Intersection() []T {
	if s.sets == 0 {
		return nil
	}
	return s.ThresholdUnion(s.sets)
}
