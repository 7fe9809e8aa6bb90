package sim

import (
	"math/rand"
	"time"
)

// SimulationKey identifies the random stream shared by every run in a process.
// Two processes with the same SimulationKey and identical configuration
// MUST produce identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
// A zero seed selects the wall clock, matching an unseeded process.
func NewSimulationKey(seed int64) SimulationKey {
	if seed == 0 {
		return SimulationKey(time.Now().UnixNano())
	}
	return SimulationKey(seed)
}

// NewStream returns the pseudo-random stream for key.
//
// The stream is created once per process and handed to every run, so the
// separate-queue and single-queue runs draw consecutive values from the same
// sequence rather than restarting it.
//
// Thread-safety: NOT thread-safe. Must be used from a single goroutine.
func NewStream(key SimulationKey) *rand.Rand {
	return rand.New(rand.NewSource(int64(key)))
}
