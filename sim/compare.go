package sim

import (
	"math/rand"

	"github.com/banksim/banksim/sim/trace"
)

// DefaultModes is the order runs are made in when no modes are given.
var DefaultModes = []QueueMode{SeparateQueues, SingleQueue}

// RunResult is the outcome of one run of a comparison.
type RunResult struct {
	Mode    QueueMode
	Metrics *Metrics
	Trace   *trace.SimulationTrace // nil when tracing is off
}

// RunComparison runs base once per mode, in order, each on a fresh Simulator.
// All runs draw from rng, so they are independent but not individually
// reseeded. base.Mode is ignored. With no modes, DefaultModes is used.
func RunComparison(base SimConfig, rng *rand.Rand, level trace.TraceLevel, modes ...QueueMode) ([]*RunResult, error) {
	if len(modes) == 0 {
		modes = DefaultModes
	}
	results := make([]*RunResult, 0, len(modes))
	for _, mode := range modes {
		cfg := base
		cfg.Mode = mode
		s, err := NewSimulator(cfg, rng, WithTrace(level))
		if err != nil {
			return nil, err
		}
		s.Run()
		results = append(results, &RunResult{Mode: mode, Metrics: s.Metrics, Trace: s.Trace})
	}
	return results, nil
}
