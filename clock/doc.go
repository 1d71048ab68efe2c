// Package clock provides a vector clock implementation for tracking
// causality between independent actors. Each entry records the highest
// sequence number observed for one actor, with prefix semantics:
// observing sequence number n implies having observed 1..n. Vector
// clocks enable conflict detection and resolution by capturing
// happened-before relationships.
package clock
