// Tracks run-wide statistics: wait, service and time-in-bank totals and the
// counters needed to turn them into end-of-run averages.

package sim

import (
	"fmt"
	"io"
)

// Metrics accumulates statistics for one run.
type Metrics struct {
	CustomersServed   int     // customers whose ServiceEnd fired within the horizon
	CustomersArrived  int     // customers whose Arrival fired within the horizon
	CustomersUnserved int     // customers still queued or in service at teardown
	TotalWaitTime     float64 // sum of (service start - arrival)
	TotalServiceTime  float64 // sum of (departure - service start)
	TotalTimeInBank   float64 // sum of Customer.TimeInBank
	TotalSojourn      float64 // sum of (departure - arrival)
	MaxWaitTime       float64

	Steals          int // customers served from a line other than the teller's own
	IdleChecks      int // TellerActions that found nobody to serve
	MaxLineLength   int // longest any line got
	EventsDiscarded int // events still pending at teardown (including the past-horizon one)
	SimEndedTime    float64
}

// NewMetrics creates a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordDeparture adds a departed customer's times to the totals.
func (m *Metrics) RecordDeparture(c *Customer) {
	wait := c.WaitTime()
	m.TotalWaitTime += wait
	m.TotalServiceTime += c.ServiceDuration()
	m.TotalTimeInBank += c.TimeInBank()
	m.TotalSojourn += c.Sojourn()
	m.MaxWaitTime = max(m.MaxWaitTime, wait)
	m.CustomersServed++
}

// ObserveLineLength tracks the longest line seen.
func (m *Metrics) ObserveLineLength(n int) {
	m.MaxLineLength = max(m.MaxLineLength, n)
}

// Averages holds per-served-customer means.
type Averages struct {
	WaitTime    float64 `yaml:"avg_wait_time"`
	ServiceTime float64 `yaml:"avg_service_time"`
	TimeInBank  float64 `yaml:"avg_time_in_bank"`
	Sojourn     float64 `yaml:"avg_sojourn"`
}

// Averages returns the per-customer means. The second result is false when no
// customer was served, in which case the returned Averages are zero.
func (m *Metrics) Averages() (Averages, bool) {
	if m.CustomersServed == 0 {
		return Averages{}, false
	}
	n := float64(m.CustomersServed)
	return Averages{
		WaitTime:    m.TotalWaitTime / n,
		ServiceTime: m.TotalServiceTime / n,
		TimeInBank:  m.TotalTimeInBank / n,
		Sojourn:     m.TotalSojourn / n,
	}, true
}

// Print writes the end-of-run statistics block for mode to w.
func (m *Metrics) Print(w io.Writer, mode QueueMode) {
	avg, ok := m.Averages()
	if !ok {
		fmt.Fprintln(w, "\nNo customers were served during the simulation time.")
		return
	}

	fmt.Fprintf(w, "\n--- Simulation Results (%s) ---\n", mode.Title())
	fmt.Fprintf(w, "Customers Served: %d\n", m.CustomersServed)
	fmt.Fprintf(w, "Customers Unserved: %d\n", m.CustomersUnserved)
	fmt.Fprintf(w, "Simulation End Time: %.2f minutes\n", m.SimEndedTime)
	fmt.Fprintln(w, "--- Averages ---")
	fmt.Fprintf(w, "Avg Wait Time: %.2f minutes\n", avg.WaitTime)
	fmt.Fprintf(w, "Avg Service Time: %.2f minutes\n", avg.ServiceTime)
	fmt.Fprintf(w, "Avg Time in Bank: %.2f minutes\n", avg.TimeInBank)
	fmt.Fprintf(w, "Avg Sojourn (arrival to departure): %.2f minutes\n", avg.Sojourn)
	fmt.Fprintf(w, "Max Wait Time: %.2f minutes\n", m.MaxWaitTime)
	fmt.Fprintln(w, "--- Tellers ---")
	fmt.Fprintf(w, "Steals: %d\n", m.Steals)
	fmt.Fprintf(w, "Idle Checks: %d\n", m.IdleChecks)
	fmt.Fprintf(w, "Max Line Length: %d\n", m.MaxLineLength)
	fmt.Fprintln(w, "\n--------------------------------------------")
}
