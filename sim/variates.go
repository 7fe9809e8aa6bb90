package sim

import "math/rand"

// Variates draws arrival, service and idle times from the run's random stream.
// All durations are in minutes.
type Variates struct {
	rng            *rand.Rand
	horizon        float64
	avgServiceTime float64
	bounds         VariateBounds
}

// NewVariates binds a generator to rng. rng must not be nil.
func NewVariates(rng *rand.Rand, horizon, avgServiceTime float64, bounds VariateBounds) *Variates {
	if rng == nil {
		panic("NewVariates: rng must not be nil")
	}
	return &Variates{rng: rng, horizon: horizon, avgServiceTime: avgServiceTime, bounds: bounds}
}

// ArrivalTime returns an absolute arrival instant, uniform over [0, horizon].
// Customers are drawn independently; this is not a Poisson arrival process.
func (v *Variates) ArrivalTime() float64 {
	return v.horizon * v.rng.Float64()
}

// ServiceTime returns a duration uniform over [0, 2*avgServiceTime].
func (v *Variates) ServiceTime() float64 {
	return 2.0 * v.avgServiceTime * v.rng.Float64()
}

// InitialTellerIdle returns the first idle period of a teller, uniform over
// [IdleFloor, InitialIdleMax].
func (v *Variates) InitialTellerIdle() float64 {
	return v.uniform(v.bounds.IdleFloor, v.bounds.InitialIdleMax)
}

// ReidleTime returns the delay before a teller with nothing to do looks again,
// uniform over [IdleFloor, ReidleMax].
func (v *Variates) ReidleTime() float64 {
	return v.uniform(v.bounds.IdleFloor, v.bounds.ReidleMax)
}

// CoinFlip returns true with probability 1/2.
func (v *Variates) CoinFlip() bool {
	return v.rng.Intn(2) == 0
}

func (v *Variates) uniform(lo, hi float64) float64 {
	return lo + v.rng.Float64()*(hi-lo)
}
