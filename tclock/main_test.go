package tclock_test

import (
	"testing"

	"go.uber.org/goleak"
)

// All operations are synchronous and run on the caller's goroutine;
// the leak check pins that down.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
