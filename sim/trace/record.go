// Package trace provides decision-trace recording for bank simulation runs.
// It has no dependencies on sim/ and stores plain data types.
package trace

// LineChoiceRecord captures the line a newly arrived customer joined.
type LineChoiceRecord struct {
	CustomerID  int
	Clock       float64
	ChosenLine  int   // 1-based line ID
	LineLengths []int // lengths of every line before the customer joined
	Tied        bool  // true if another line had the same length as the chosen one
}

// StealRecord captures a teller taking a customer from another teller's line.
type StealRecord struct {
	TellerID   int
	CustomerID int
	Clock      float64
	FromLine   int // 1-based line ID the customer was taken from
}

// IdleRecord captures a teller finding nobody to serve.
type IdleRecord struct {
	TellerID int
	Clock    float64
	Until    float64 // time of the teller's next action
}
