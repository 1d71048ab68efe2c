package clock

import "fmt"

// Dot identifies one specific event: the Seq-th event produced by
// Actor.
type Dot[A comparable] struct {
	Actor A
	Seq   uint64
}

// String returns a string representation of the dot.
func (d Dot[A]) String() string {
	return fmt.Sprintf("%v@%d", d.Actor, d.Seq)
}
