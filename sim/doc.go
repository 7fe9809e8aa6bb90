// Package sim provides the discrete-event simulation engine for a bank with
// tellers and waiting lines.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the three event variants (Arrival, ServiceEnd, TellerAction)
//   - teller_queue.go: teller lines, shortest-line choice and work stealing
//   - simulator.go: the event loop and the handler for each event variant
//
// # Model
//
// Every customer's arrival instant is drawn independently and uniformly over
// the horizon. Tellers are never woken by an arrival: each teller runs its own
// chain of TellerAction events, either serving the next customer (and acting
// again when the service ends) or idling for a short random period. In
// SeparateQueues mode each teller has its own line, arrivals join the shortest
// one, and a teller with an empty line steals from the first non-empty line.
// In SingleQueue mode all tellers share one line and nothing is stolen.
//
// The event whose time first exceeds the horizon ends the run and is never
// executed, so the clock never passes the horizon.
//
// # Randomness
//
// A Simulator draws every variate from the *rand.Rand it is given. The CLI
// creates one stream per process and passes it to each run in turn; tests
// pass a seeded stream for reproducibility.
//
// See sim/trace for the optional decision trace.
package sim
