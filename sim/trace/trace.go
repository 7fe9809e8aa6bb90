package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures line choices, steals and idle re-checks.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Enabled reports whether level records anything.
func (l TraceLevel) Enabled() bool {
	return l == TraceLevelDecisions
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records during one run.
type SimulationTrace struct {
	Config      TraceConfig
	LineChoices []LineChoiceRecord
	Steals      []StealRecord
	Idles       []IdleRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		LineChoices: make([]LineChoiceRecord, 0),
		Steals:      make([]StealRecord, 0),
		Idles:       make([]IdleRecord, 0),
	}
}

// RecordLineChoice appends a line-choice record.
func (st *SimulationTrace) RecordLineChoice(record LineChoiceRecord) {
	st.LineChoices = append(st.LineChoices, record)
}

// RecordSteal appends a steal record.
func (st *SimulationTrace) RecordSteal(record StealRecord) {
	st.Steals = append(st.Steals, record)
}

// RecordIdle appends an idle record.
func (st *SimulationTrace) RecordIdle(record IdleRecord) {
	st.Idles = append(st.Idles, record)
}
