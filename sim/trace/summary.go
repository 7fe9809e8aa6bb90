package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalLineChoices int
	TiedChoices      int
	TotalSteals      int
	TotalIdles       int
	MeanIdle         float64     // mean idle duration in minutes
	LineDistribution map[int]int // line ID → customers that joined it
	StealsByTeller   map[int]int // teller ID → customers stolen
	StealsFromLine   map[int]int // line ID → customers stolen from it
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		LineDistribution: make(map[int]int),
		StealsByTeller:   make(map[int]int),
		StealsFromLine:   make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalLineChoices = len(st.LineChoices)
	for _, r := range st.LineChoices {
		summary.LineDistribution[r.ChosenLine]++
		if r.Tied {
			summary.TiedChoices++
		}
	}

	summary.TotalSteals = len(st.Steals)
	for _, r := range st.Steals {
		summary.StealsByTeller[r.TellerID]++
		summary.StealsFromLine[r.FromLine]++
	}

	summary.TotalIdles = len(st.Idles)
	if len(st.Idles) > 0 {
		total := 0.0
		for _, r := range st.Idles {
			total += r.Until - r.Clock
		}
		summary.MeanIdle = total / float64(len(st.Idles))
	}

	return summary
}
