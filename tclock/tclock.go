package tclock

import (
	"github.com/causalkit/threshold/clock"
	"github.com/causalkit/threshold/multiset"
)

// TClock accumulates vector clocks and computes their threshold union.
// It owns one ordered multiset per actor, recording how many of the
// added clocks reached each sequence number for that actor.
//
// Every per-actor multiset always holds exactly one entry per added
// clock: a clock that omits an actor contributes an explicit zero, and
// an actor first seen after earlier additions is back-filled with a
// zero per prior clock. This keeps the threshold arithmetic correct
// when clocks disagree on the actor set.
type TClock[A comparable] struct {
	occurrences map[A]*multiset.Ordered
	clocks      uint64
}

// New creates a new empty threshold clock.
func New[A comparable]() *TClock[A] {
	return &TClock[A]{occurrences: make(map[A]*multiset.Ordered)}
}

// Add records one observer's vector clock. It always succeeds.
func (t *TClock[A]) Add(vc clock.VectorClock[A]) {
	// An actor first seen in this clock was implicitly at zero in
	// every clock added before it.
	for actor := range vc.Actors() {
		if _, ok := t.occurrences[actor]; !ok {
			m := multiset.NewOrdered()
			m.InsertN(0, t.clocks)
			t.occurrences[actor] = m
		}
	}

	// Every tracked actor receives exactly one insertion per added
	// clock; actors absent from vc contribute zero.
	for actor, m := range t.occurrences {
		m.Insert(vc.Get(actor))
	}
	t.clocks++
}

// ClockCount returns the number of vector clocks added.
func (t *TClock[A]) ClockCount() uint64 {
	return t.clocks
}

// Len returns the number of actors tracked.
func (t *TClock[A]) Len() int {
	return len(t.occurrences)
}

// ThresholdUnion computes the vector clock whose entry for each actor
// is the highest sequence number reached by at least threshold of the
// added clocks. Actors for which no sequence number qualifies are
// absent from the result, so a threshold larger than the number of
// added clocks yields an empty clock rather than an error.
//
// The computation is read-only and repeatable. ThresholdUnion panics
// if threshold is zero.
func (t *TClock[A]) ThresholdUnion(threshold uint64) clock.VectorClock[A] {
	if threshold == 0 {
		panic("tclock: threshold must be at least 1")
	}

	result := clock.New[A]()
	for actor, m := range t.occurrences {
		if seq, ok := m.Threshold(threshold); ok {
			result.Set(actor, seq)
		}
	}
	return result
}

// Union computes the coordinate-wise maximum of all added clocks,
// which equals ThresholdUnion(1). The returned flag reports whether
// every added clock was equal: in that case each actor saw a single
// distinct sequence number across all additions.
func (t *TClock[A]) Union() (clock.VectorClock[A], bool) {
	result := clock.New[A]()
	allEqual := true
	for actor, m := range t.occurrences {
		if m.Len() > 1 {
			allEqual = false
		}
		if highest, ok := m.Max(); ok {
			result.Set(actor, highest)
		}
	}
	return result, allEqual
}
