// Package tclock provides a threshold clock: an accumulator of vector
// clocks that computes their threshold union. Given the vector clocks
// reported by a growing collection of observers, the threshold union
// at t is the vector clock whose entry for each actor is the highest
// sequence number observed by at least t of the reports.
//
// A threshold clock is a local, single-owner value: it performs no
// internal synchronization, and concurrent use requires external
// mutual exclusion.
package tclock
