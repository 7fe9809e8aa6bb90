package sim

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ResultsFile is the YAML document written by SaveResults.
type ResultsFile struct {
	Seed           int64       `yaml:"seed"`
	Customers      int         `yaml:"customers"`
	Tellers        int         `yaml:"tellers"`
	Horizon        float64     `yaml:"horizon_minutes"`
	AvgServiceTime float64     `yaml:"avg_service_time_minutes"`
	Runs           []RunRecord `yaml:"runs"`
}

// RunRecord holds the statistics of one run in a ResultsFile.
type RunRecord struct {
	Mode              string    `yaml:"mode"`
	CustomersServed   int       `yaml:"customers_served"`
	CustomersUnserved int       `yaml:"customers_unserved"`
	SimEndedTime      float64   `yaml:"sim_ended_time"`
	Averages          *Averages `yaml:"averages,omitempty"` // nil when nobody was served
	MaxWaitTime       float64   `yaml:"max_wait_time"`
	Steals            int       `yaml:"steals"`
	IdleChecks        int       `yaml:"idle_checks"`
	MaxLineLength     int       `yaml:"max_line_length"`
}

// NewResultsFile builds the document for a finished comparison.
func NewResultsFile(key SimulationKey, base SimConfig, results []*RunResult) *ResultsFile {
	rf := &ResultsFile{
		Seed:           int64(key),
		Customers:      base.Customers,
		Tellers:        base.Tellers,
		Horizon:        base.Horizon,
		AvgServiceTime: base.AvgServiceTime,
		Runs:           make([]RunRecord, 0, len(results)),
	}
	for _, r := range results {
		m := r.Metrics
		rec := RunRecord{
			Mode:              r.Mode.String(),
			CustomersServed:   m.CustomersServed,
			CustomersUnserved: m.CustomersUnserved,
			SimEndedTime:      m.SimEndedTime,
			MaxWaitTime:       m.MaxWaitTime,
			Steals:            m.Steals,
			IdleChecks:        m.IdleChecks,
			MaxLineLength:     m.MaxLineLength,
		}
		if avg, ok := m.Averages(); ok {
			rec.Averages = &avg
		}
		rf.Runs = append(rf.Runs, rec)
	}
	return rf
}

// SaveResults writes rf to path as YAML.
func SaveResults(path string, rf *ResultsFile) error {
	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results to %s: %w", path, err)
	}
	logrus.Infof("Results written to %s", path)
	return nil
}
