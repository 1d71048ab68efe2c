// Package tset provides a threshold set: an accumulator of sets that
// reports the elements present in at least t of the sets added so far.
// Union and intersection are the two extremes of the same query, at
// thresholds 1 and the number of sets added.
package tset
