package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	sim "github.com/banksim/banksim/sim"
	"github.com/banksim/banksim/sim/trace"
)

func printParameters(w io.Writer, cfg sim.SimConfig) {
	fmt.Fprintln(w, "--- Simulation Parameters ---")
	fmt.Fprintf(w, "Customers: %d, Tellers: %d, Time: %.1f min, Avg Service: %.1f min\n",
		cfg.Customers, cfg.Tellers, cfg.Horizon, cfg.AvgServiceTime)
}

func printModeBanner(w io.Writer, mode sim.QueueMode) {
	rule := strings.Repeat("=", 44)
	fmt.Fprintf(w, "\n%s\n      RUNNING SIMULATION: %s\n%s\n", rule, strings.ToUpper(mode.Title()), rule)
}

// printTraceSummary writes the decision-trace totals and per-line breakdowns.
func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "Line Choices: %d (ties: %d)\n", s.TotalLineChoices, s.TiedChoices)
	fmt.Fprintf(w, "Steals: %d\n", s.TotalSteals)
	fmt.Fprintf(w, "Idle Checks: %d (mean idle: %.2f min)\n", s.TotalIdles, s.MeanIdle)
	printIntMap(w, "Customers per line", "line", s.LineDistribution)
	printIntMap(w, "Steals by teller", "teller", s.StealsByTeller)
	printIntMap(w, "Steals from line", "line", s.StealsFromLine)
}

// printIntMap prints m sorted by key; nothing is printed for an empty map.
func printIntMap(w io.Writer, title, label string, m map[int]int) {
	if len(m) == 0 {
		return
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	fmt.Fprintf(w, "%s:\n", title)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s %d: %d\n", label, k, m[k])
	}
}
