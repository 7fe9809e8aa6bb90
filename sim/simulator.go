// sim/simulator.go
package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/banksim/banksim/sim/trace"
)

// Option customizes a Simulator at construction.
type Option func(*Simulator)

// WithTrace enables decision tracing at the given level.
func WithTrace(level trace.TraceLevel) Option {
	return func(s *Simulator) {
		if level.Enabled() {
			s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: level})
		}
	}
}

// Simulator is the core object that holds simulation time, the bank's state,
// and the event loop for one run. It is not reusable: build a new one per run.
type Simulator struct {
	Clock   float64 // minutes
	Horizon float64 // minutes
	Config  SimConfig
	// events has all pending Arrival, ServiceEnd and TellerAction events
	events   *EventQueue
	lines    *Lines
	tellers  []*Teller
	variates *Variates
	Metrics  *Metrics
	Trace    *trace.SimulationTrace // nil unless WithTrace enabled it

	processed [3]int // events handled, indexed by EventKind
	hasRun    bool
}

// NewSimulator validates cfg and builds the lines and tellers for one run.
// rng is the process-wide stream; runs that share it draw consecutive values.
func NewSimulator(cfg SimConfig, rng *rand.Rand, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random stream must not be nil", ErrInvalidConfig)
	}
	s := &Simulator{
		Clock:    0,
		Horizon:  cfg.Horizon,
		Config:   cfg,
		events:   NewEventQueue(),
		lines:    NewLines(cfg.Mode, cfg.Tellers),
		tellers:  make([]*Teller, cfg.Tellers),
		variates: NewVariates(rng, cfg.Horizon, cfg.AvgServiceTime, cfg.Bounds),
		Metrics:  NewMetrics(),
	}
	for i := range s.tellers {
		s.tellers[i] = &Teller{ID: i + 1}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	sim.events.Insert(ev)
}

// Run seeds the initial events, processes events until the queue empties or
// the next event lies past the horizon, then releases everything still
// pending. Panics if called twice.
func (sim *Simulator) Run() {
	if sim.hasRun {
		panic("Simulator.Run() called more than once")
	}
	sim.hasRun = true

	sim.seedEvents()
	logrus.Infof("[%8.2f] Starting %s run: %d customers, %d tellers, horizon=%.2f",
		sim.Clock, sim.Config.Mode, sim.Config.Customers, sim.Config.Tellers, sim.Horizon)

	for sim.step() {
	}

	sim.teardown()
	logrus.Infof("[%8.2f] Simulation ended: served=%d unserved=%d discarded_events=%d",
		sim.Clock, sim.Metrics.CustomersServed, sim.Metrics.CustomersUnserved, sim.Metrics.EventsDiscarded)
}

// step processes the earliest pending event. Returns false, without
// executing anything, once the queue is empty or the earliest event lies past
// the horizon; that event is dropped.
func (sim *Simulator) step() bool {
	ev, ok := sim.events.ExtractMin()
	if !ok {
		return false
	}
	if ev.Timestamp() > sim.Horizon {
		logrus.Debugf("[%8.2f] %s at %.2f is past the horizon, stopping", sim.Clock, ev.Kind(), ev.Timestamp())
		sim.Metrics.EventsDiscarded++
		return false
	}
	sim.Clock = ev.Timestamp()
	sim.dispatch(ev)
	sim.processed[ev.Kind()]++
	return true
}

// ProcessedEvents returns how many events of kind were handled.
func (sim *Simulator) ProcessedEvents(kind EventKind) int {
	return sim.processed[kind]
}

// PendingEvents returns the number of events still queued.
func (sim *Simulator) PendingEvents() int {
	return sim.events.Len()
}

// Waiting returns the number of customers queued across all lines.
func (sim *Simulator) Waiting() int {
	return sim.lines.Waiting()
}

// seedEvents schedules one Arrival per customer, then one initial
// TellerAction per teller.
func (sim *Simulator) seedEvents() {
	for i := 0; i < sim.Config.Customers; i++ {
		c := &Customer{
			ID:          i + 1,
			ArrivalTime: sim.variates.ArrivalTime(),
		}
		sim.Schedule(NewArrivalEvent(c))
	}
	for _, t := range sim.tellers {
		sim.Schedule(NewTellerActionEvent(sim.variates.InitialTellerIdle(), t))
	}
	logrus.Debugf("Initial events scheduled: %d", sim.events.Len())
}

// dispatch runs the handler for ev's concrete variant.
func (sim *Simulator) dispatch(ev Event) {
	switch e := ev.(type) {
	case *ArrivalEvent:
		sim.handleArrival(e.Customer)
	case *ServiceEndEvent:
		sim.handleServiceEnd(e.Customer)
	case *TellerActionEvent:
		sim.handleTellerAction(e.Teller)
	default:
		panic(fmt.Sprintf("dispatch: unknown event type %T", ev))
	}
}

// handleArrival puts c in its line. It does not start service: the next
// TellerAction of some teller discovers the customer.
func (sim *Simulator) handleArrival(c *Customer) {
	logrus.Debugf("[%8.2f] Arrival %s", sim.Clock, c)

	var lengths []int
	if sim.Trace != nil {
		lengths = sim.lines.Lengths()
	}

	line := sim.lines.ShortestLine(sim.variates.CoinFlip)
	line.Enqueue(c)
	sim.Metrics.CustomersArrived++
	sim.Metrics.ObserveLineLength(line.Len())

	if sim.Trace != nil {
		sim.Trace.RecordLineChoice(trace.LineChoiceRecord{
			CustomerID:  c.ID,
			Clock:       sim.Clock,
			ChosenLine:  line.ID,
			LineLengths: lengths,
			Tied:        hasTie(lengths, line.ID-1),
		})
	}
}

// handleServiceEnd records c's departure. After this c is referenced by
// nothing in the simulator.
func (sim *Simulator) handleServiceEnd(c *Customer) {
	c.DepartureTime = sim.Clock
	sim.Metrics.RecordDeparture(c)
	logrus.Debugf("[%8.2f] Service end %s (wait: %.2f, total: %.2f)", sim.Clock, c, c.WaitTime(), c.TimeInBank())
}

// handleTellerAction has t serve the next customer from its line, steal one
// from another line, or go idle until its next check.
func (sim *Simulator) handleTellerAction(t *Teller) {
	logrus.Debugf("[%8.2f] Teller %s action", sim.Clock, t)

	own := sim.lines.For(t)
	c := own.Dequeue()
	if c == nil {
		var from *TellerQueue
		c, from = sim.lines.Steal(own)
		if c != nil {
			sim.Metrics.Steals++
			logrus.Debugf("[%8.2f] Teller %s stole %s from line %d", sim.Clock, t, c, from.ID)
			if sim.Trace != nil {
				sim.Trace.RecordSteal(trace.StealRecord{
					TellerID:   t.ID,
					CustomerID: c.ID,
					Clock:      sim.Clock,
					FromLine:   from.ID,
				})
			}
		}
	}

	if c != nil {
		c.ServiceStartTime = sim.Clock
		done := sim.Clock + sim.variates.ServiceTime()
		// ServiceEnd goes in first so it fires before the teller's next
		// action at the same instant.
		sim.Schedule(NewServiceEndEvent(done, c))
		sim.Schedule(NewTellerActionEvent(done, t))
		return
	}

	until := sim.Clock + sim.variates.ReidleTime()
	sim.Schedule(NewTellerActionEvent(until, t))
	sim.Metrics.IdleChecks++
	logrus.Debugf("[%8.2f] Teller %s idle until %.2f", sim.Clock, t, until)
	if sim.Trace != nil {
		sim.Trace.RecordIdle(trace.IdleRecord{TellerID: t.ID, Clock: sim.Clock, Until: until})
	}
}

// teardown releases pending events and queued customers and finalizes metrics.
func (sim *Simulator) teardown() {
	dropped := sim.events.Drain()
	released := sim.lines.Release()
	sim.Metrics.EventsDiscarded += dropped
	sim.Metrics.CustomersUnserved = sim.Config.Customers - sim.Metrics.CustomersServed
	sim.Metrics.SimEndedTime = sim.Clock
	logrus.Debugf("Teardown: released %d events and %d queued customers", dropped, released)
}

// hasTie reports whether any line other than chosen has the same length.
func hasTie(lengths []int, chosen int) bool {
	for i, n := range lengths {
		if i != chosen && n == lengths[chosen] {
			return true
		}
	}
	return false
}
