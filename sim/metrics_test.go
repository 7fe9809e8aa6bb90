package sim

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/banksim/banksim/sim/internal/testutil"
)

func TestMetrics_RecordDeparture_Totals(t *testing.T) {
	// GIVEN two departed customers
	m := NewMetrics()
	m.RecordDeparture(&Customer{ID: 1, ArrivalTime: 0, ServiceStartTime: 2, DepartureTime: 5})
	m.RecordDeparture(&Customer{ID: 2, ArrivalTime: 1, ServiceStartTime: 7, DepartureTime: 8})

	// THEN totals and averages reflect both
	assert.Equal(t, 2, m.CustomersServed)
	assert.Equal(t, 8.0, m.TotalWaitTime)
	assert.Equal(t, 4.0, m.TotalServiceTime)
	assert.Equal(t, 6.0, m.MaxWaitTime)

	avg, ok := m.Averages()
	require.True(t, ok)
	testutil.AssertFloat64Equal(t, "avg wait", 4.0, avg.WaitTime, 1e-12)
	testutil.AssertFloat64Equal(t, "avg service", 2.0, avg.ServiceTime, 1e-12)
	testutil.AssertFloat64Equal(t, "avg sojourn", 6.0, avg.Sojourn, 1e-12)
}

// TestMetrics_TimeInBank_EqualsServiceDuration documents that "time in bank"
// is measured from service start, not arrival, so it excludes the wait.
func TestMetrics_TimeInBank_EqualsServiceDuration(t *testing.T) {
	m := NewMetrics()
	m.RecordDeparture(&Customer{ID: 1, ArrivalTime: 0, ServiceStartTime: 10, DepartureTime: 13})

	avg, ok := m.Averages()
	require.True(t, ok)
	assert.Equal(t, avg.ServiceTime, avg.TimeInBank)
	assert.Equal(t, 13.0, avg.Sojourn)
}

func TestMetrics_Averages_NoneServed(t *testing.T) {
	avg, ok := NewMetrics().Averages()
	assert.False(t, ok)
	assert.Equal(t, Averages{}, avg)
}

func TestMetrics_Print_Served(t *testing.T) {
	m := NewMetrics()
	m.RecordDeparture(&Customer{ID: 1, ArrivalTime: 0, ServiceStartTime: 1, DepartureTime: 4})
	m.SimEndedTime = 12.5

	var buf bytes.Buffer
	m.Print(&buf, SingleQueue)
	out := buf.String()

	assert.Contains(t, out, "--- Simulation Results (Single Queue) ---")
	assert.Contains(t, out, "Customers Served: 1")
	assert.Contains(t, out, "Simulation End Time: 12.50 minutes")
	assert.Contains(t, out, "Avg Wait Time: 1.00 minutes")
	assert.Contains(t, out, "Avg Time in Bank: 3.00 minutes")
}

func TestMetrics_ObserveLineLength_KeepsMax(t *testing.T) {
	m := NewMetrics()
	for _, n := range []int{1, 4, 2} {
		m.ObserveLineLength(n)
	}
	assert.Equal(t, 4, m.MaxLineLength)
}

func TestSaveResults_WritesYAML(t *testing.T) {
	// GIVEN a served run and an empty run
	served := NewMetrics()
	served.RecordDeparture(&Customer{ID: 1, ArrivalTime: 0, ServiceStartTime: 1, DepartureTime: 3})
	served.Steals = 2
	results := []*RunResult{
		{Mode: SeparateQueues, Metrics: served},
		{Mode: SingleQueue, Metrics: NewMetrics()},
	}
	base := NewSimConfig(5, 2, 60, 3, SeparateQueues)
	path := filepath.Join(t.TempDir(), "results.yaml")

	// WHEN saved
	require.NoError(t, SaveResults(path, NewResultsFile(SimulationKey(42), base, results)))

	// THEN the file carries the parameters and one record per run
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got ResultsFile
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, int64(42), got.Seed)
	assert.Equal(t, 5, got.Customers)
	require.Len(t, got.Runs, 2)
	assert.Equal(t, "separate", got.Runs[0].Mode)
	assert.Equal(t, 2, got.Runs[0].Steals)
	require.NotNil(t, got.Runs[0].Averages)
	assert.Equal(t, 1.0, got.Runs[0].Averages.WaitTime)
	assert.Equal(t, "single", got.Runs[1].Mode)
	assert.Nil(t, got.Runs[1].Averages, "empty run has no averages")
}

func TestSaveResults_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "results.yaml")
	err := SaveResults(path, &ResultsFile{})
	assert.Error(t, err)
}
