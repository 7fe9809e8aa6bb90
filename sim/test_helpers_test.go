package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// fractionSource is a rand.Source whose Int63 values make Float64 return the
// given fractions in turn, cycling. Dyadic fractions (0.5, 0.25, ...) come
// back exactly.
type fractionSource struct {
	fracs []float64
	i     int
}

func (s *fractionSource) Int63() int64 {
	f := s.fracs[s.i%len(s.fracs)]
	s.i++
	return int64(f * (1 << 63))
}

func (s *fractionSource) Seed(int64) {}

// fractionRand returns a stream whose Float64 draws follow fracs.
func fractionRand(fracs ...float64) *rand.Rand {
	return rand.New(&fractionSource{fracs: fracs})
}

// newTestSimulator builds a Simulator or fails the test.
func newTestSimulator(t *testing.T, cfg SimConfig, rng *rand.Rand, opts ...Option) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg, rng, opts...)
	require.NoError(t, err)
	return s
}
