package sim

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure in SimConfig.Validate.
var ErrInvalidConfig = errors.New("invalid simulation config")

// QueueMode selects the queueing discipline for a run.
type QueueMode int

const (
	// SeparateQueues gives every teller its own line and lets idle tellers steal.
	SeparateQueues QueueMode = iota
	// SingleQueue makes all tellers draw from one shared line.
	SingleQueue
)

// String returns the CLI/YAML name of the mode.
func (m QueueMode) String() string {
	switch m {
	case SeparateQueues:
		return "separate"
	case SingleQueue:
		return "single"
	default:
		return fmt.Sprintf("QueueMode(%d)", int(m))
	}
}

// Title returns the human-readable label used in reports.
func (m QueueMode) Title() string {
	switch m {
	case SeparateQueues:
		return "Separate Queues"
	case SingleQueue:
		return "Single Queue"
	default:
		return m.String()
	}
}

// ParseQueueMode converts "separate" or "single" (case-insensitive) to a QueueMode.
func ParseQueueMode(s string) (QueueMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "separate", "separate-queues":
		return SeparateQueues, nil
	case "single", "single-queue":
		return SingleQueue, nil
	default:
		return 0, fmt.Errorf("%w: unknown queue mode %q (valid: separate, single)", ErrInvalidConfig, s)
	}
}

// Idle window defaults, in minutes.
const (
	DefaultIdleFloor      = 1.0 / 60.0 // one second
	DefaultInitialIdleMax = 10.0
	DefaultReidleMax      = 2.5
)

// VariateBounds groups the teller idle windows drawn by the Variates generator.
type VariateBounds struct {
	IdleFloor      float64 // lower bound of every idle draw (must be > 0)
	InitialIdleMax float64 // upper bound of a teller's first idle period
	ReidleMax      float64 // upper bound of every later idle re-check
}

// DefaultVariateBounds returns the stock idle windows.
func DefaultVariateBounds() VariateBounds {
	return VariateBounds{
		IdleFloor:      DefaultIdleFloor,
		InitialIdleMax: DefaultInitialIdleMax,
		ReidleMax:      DefaultReidleMax,
	}
}

// SimConfig holds the parameters of a single run.
type SimConfig struct {
	Customers      int     // number of customers generated (> 0)
	Tellers        int     // number of tellers (> 0)
	Horizon        float64 // simulation end time in minutes (> 0)
	AvgServiceTime float64 // mean service time in minutes (> 0)
	Mode           QueueMode
	Bounds         VariateBounds
}

// NewSimConfig returns a SimConfig with default idle bounds.
func NewSimConfig(customers, tellers int, horizon, avgServiceTime float64, mode QueueMode) SimConfig {
	return SimConfig{
		Customers:      customers,
		Tellers:        tellers,
		Horizon:        horizon,
		AvgServiceTime: avgServiceTime,
		Mode:           mode,
		Bounds:         DefaultVariateBounds(),
	}
}

// Validate checks that all parameters are positive and finite.
func (c SimConfig) Validate() error {
	if c.Customers <= 0 {
		return fmt.Errorf("%w: customers must be positive, got %d", ErrInvalidConfig, c.Customers)
	}
	if c.Tellers <= 0 {
		return fmt.Errorf("%w: tellers must be positive, got %d", ErrInvalidConfig, c.Tellers)
	}
	if !positiveFinite(c.Horizon) {
		return fmt.Errorf("%w: horizon must be a finite positive number of minutes, got %v", ErrInvalidConfig, c.Horizon)
	}
	if !positiveFinite(c.AvgServiceTime) {
		return fmt.Errorf("%w: average service time must be a finite positive number of minutes, got %v", ErrInvalidConfig, c.AvgServiceTime)
	}
	if c.Mode != SeparateQueues && c.Mode != SingleQueue {
		return fmt.Errorf("%w: unknown queue mode %d", ErrInvalidConfig, int(c.Mode))
	}
	return c.Bounds.Validate()
}

// Validate checks 0 < IdleFloor <= min(InitialIdleMax, ReidleMax).
func (b VariateBounds) Validate() error {
	if !positiveFinite(b.IdleFloor) {
		return fmt.Errorf("%w: idle floor must be a finite positive number, got %v", ErrInvalidConfig, b.IdleFloor)
	}
	if !positiveFinite(b.InitialIdleMax) || b.InitialIdleMax < b.IdleFloor {
		return fmt.Errorf("%w: initial idle max must be >= idle floor (%v), got %v", ErrInvalidConfig, b.IdleFloor, b.InitialIdleMax)
	}
	if !positiveFinite(b.ReidleMax) || b.ReidleMax < b.IdleFloor {
		return fmt.Errorf("%w: re-idle max must be >= idle floor (%v), got %v", ErrInvalidConfig, b.IdleFloor, b.ReidleMax)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
