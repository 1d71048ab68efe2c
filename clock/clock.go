package clock

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// VectorClock represents a vector clock as a map from actor to the
// highest sequence number observed for that actor. An absent entry and
// a zero entry are equivalent; methods keep the map normalized so that
// zero entries are never stored. Thread-safe operations should be
// handled by the caller.
type VectorClock[A comparable] map[A]uint64

// New creates a new empty vector clock.
func New[A comparable]() VectorClock[A] {
	return make(VectorClock[A])
}

// FromSeqs creates a vector clock from an ordered list of sequence
// numbers, assigning actor identifiers by position: the first sequence
// number belongs to actor 0, the last to actor len(seqs)-1.
func FromSeqs(seqs ...uint64) VectorClock[uint64] {
	vc := New[uint64]()
	for i, seq := range seqs {
		vc.Set(uint64(i), seq)
	}
	return vc
}

// FromEntries creates a vector clock from an explicit actor to
// sequence number mapping.
func FromEntries[A comparable](entries map[A]uint64) VectorClock[A] {
	vc := New[A]()
	for actor, seq := range entries {
		vc.Set(actor, seq)
	}
	return vc
}

// Get returns the sequence number for the given actor, or 0 if absent.
func (vc VectorClock[A]) Get(actor A) uint64 {
	return vc[actor]
}

// Set sets the sequence number for the given actor. Setting zero
// removes the entry, since absence and zero are equivalent.
func (vc VectorClock[A]) Set(actor A, seq uint64) {
	if seq == 0 {
		delete(vc, actor)
		return
	}
	vc[actor] = seq
}

// Next generates the next event for the given actor, incrementing its
// entry and returning the new sequence number.
func (vc VectorClock[A]) Next(actor A) uint64 {
	vc[actor]++
	return vc[actor]
}

// NextDot generates the next event for the given actor and returns it
// as a Dot.
func (vc VectorClock[A]) NextDot(actor A) Dot[A] {
	return Dot[A]{Actor: actor, Seq: vc.Next(actor)}
}

// Contains reports whether the event identified by actor and seq has
// been observed. With prefix semantics this holds whenever seq is at
// most the actor's entry; a zero seq is trivially contained.
func (vc VectorClock[A]) Contains(actor A, seq uint64) bool {
	return seq <= vc[actor]
}

// ContainsDot reports whether the event identified by the dot has been
// observed.
func (vc VectorClock[A]) ContainsDot(d Dot[A]) bool {
	return vc.Contains(d.Actor, d.Seq)
}

// Merge merges another vector clock into this one, taking the maximum
// sequence number for each actor. After the merge, every event in
// other is an event in this clock.
func (vc VectorClock[A]) Merge(other VectorClock[A]) {
	for actor, seq := range other {
		if vc[actor] < seq {
			vc[actor] = seq
		}
	}
}

// Meet intersects another vector clock with this one, keeping for each
// actor the minimum sequence number. Actors absent from either clock
// are absent from the result: only events observed by both survive.
func (vc VectorClock[A]) Meet(other VectorClock[A]) {
	for actor, seq := range vc {
		otherSeq := other[actor]
		if otherSeq < seq {
			vc.Set(actor, otherSeq)
		}
	}
}

// Copy creates a deep copy of the vector clock.
func (vc VectorClock[A]) Copy() VectorClock[A] {
	cp := New[A]()
	for actor, seq := range vc {
		cp.Set(actor, seq)
	}
	return cp
}

// Len returns the number of actors with a non-zero entry.
func (vc VectorClock[A]) Len() int {
	n := 0
	for _, seq := range vc {
		if seq > 0 {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the clock has no non-zero entries.
func (vc VectorClock[A]) IsEmpty() bool {
	return vc.Len() == 0
}

// Actors returns an iterator over the actors with non-zero entries, in
// unspecified order. The iterator is restartable: ranging over it again
// yields the actors again.
func (vc VectorClock[A]) Actors() iter.Seq[A] {
	return func(yield func(A) bool) {
		for actor, seq := range vc {
			if seq == 0 {
				continue
			}
			if !yield(actor) {
				return
			}
		}
	}
}

// CompareResult represents the result of comparing two vector clocks.
type CompareResult int

const (
	// Before indicates this clock happened before the other.
	Before CompareResult = iota
	// After indicates this clock happened after the other.
	After
	// Concurrent indicates the clocks are concurrent (no causal relationship).
	Concurrent
	// Equal indicates the clocks are equal.
	Equal
)

// Compare compares two vector clocks and returns their relationship.
// Returns:
//   - Equal: if all entries are equal
//   - Before: if this clock happened before other (all entries <=, at least one <)
//   - After: if this clock happened after other (all entries >=, at least one >)
//   - Concurrent: if neither dominates (some entries are greater, some are less)
//
// Absent entries compare as zero.
func (vc VectorClock[A]) Compare(other VectorClock[A]) CompareResult {
	if vc.Equal(other) {
		return Equal
	}

	allActors := make(map[A]bool)
	for actor := range vc {
		allActors[actor] = true
	}
	for actor := range other {
		allActors[actor] = true
	}

	var thisLess, thisGreater bool
	for actor := range allActors {
		thisSeq := vc[actor]
		otherSeq := other[actor]
		if thisSeq < otherSeq {
			thisLess = true
		} else if thisSeq > otherSeq {
			thisGreater = true
		}
	}

	if thisLess && !thisGreater {
		return Before
	}
	if thisGreater && !thisLess {
		return After
	}
	return Concurrent
}

// Equal checks if two vector clocks are equal, treating absent entries
// as zero.
func (vc VectorClock[A]) Equal(other VectorClock[A]) bool {
	for actor, seq := range vc {
		if other[actor] != seq {
			return false
		}
	}
	for actor, seq := range other {
		if vc[actor] != seq {
			return false
		}
	}
	return true
}

// Dominates returns true if this clock dominates (happened after) the other.
func (vc VectorClock[A]) Dominates(other VectorClock[A]) bool {
	return vc.Compare(other) == After
}

// IsConcurrent returns true if this clock is concurrent with the other.
func (vc VectorClock[A]) IsConcurrent(other VectorClock[A]) bool {
	return vc.Compare(other) == Concurrent
}

// String returns a string representation of the vector clock. Entries
// are sorted by the actor's formatted representation for deterministic
// output.
func (vc VectorClock[A]) String() string {
	type entry struct {
		actor string
		seq   uint64
	}
	entries := make([]entry, 0, len(vc))
	for actor, seq := range vc {
		if seq == 0 {
			continue
		}
		entries = append(entries, entry{fmt.Sprint(actor), seq})
	}
	if len(entries) == 0 {
		return "{}"
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.actor, b.actor)
	})

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s:%d", e.actor, e.seq)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
