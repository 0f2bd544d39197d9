// Package seed supplies the pseudo-random source shared by the demo
// drivers. The library itself never draws randomness; whatever
// orchestration wraps it injects a source like this one.
package seed

import (
	"math/rand/v2"
	"os"
	"time"
)

// New returns a source seeded from the process ID and wall clock, so
// repeated runs diverge without any configuration.
func New() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(os.Getpid()), uint64(time.Now().Unix())))
}
