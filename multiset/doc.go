// Package multiset provides counting multisets with threshold queries.
// The ordered variant answers "largest value reached by at least t
// insertions" over uint64 sequence numbers, which is the per-actor
// building block for threshold-union computation over vector clocks.
package multiset
