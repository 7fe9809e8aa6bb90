package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/banksim/banksim/sim"
)

// IdleConfig overrides the teller idle windows, in minutes.
type IdleConfig struct {
	Floor      float64 `yaml:"floor"`
	InitialMax float64 `yaml:"initial_max"`
	ReidleMax  float64 `yaml:"reidle_max"`
}

// Scenario represents a scenario YAML file.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Scenario struct {
	Seed        int64       `yaml:"seed"`
	Modes       []string    `yaml:"modes"`
	LogLevel    string      `yaml:"log_level"`
	TraceLevel  string      `yaml:"trace_level"`
	ResultsPath string      `yaml:"results_path"`
	Idle        *IdleConfig `yaml:"idle"`
}

// loadScenario parses a scenario file with strict field checking: typos must
// cause errors.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	return &sc, nil
}

// VariateBounds returns the idle bounds with any zero field left at its default.
func (sc *Scenario) VariateBounds() sim.VariateBounds {
	b := sim.DefaultVariateBounds()
	if sc == nil || sc.Idle == nil {
		return b
	}
	if sc.Idle.Floor != 0 {
		b.IdleFloor = sc.Idle.Floor
	}
	if sc.Idle.InitialMax != 0 {
		b.InitialIdleMax = sc.Idle.InitialMax
	}
	if sc.Idle.ReidleMax != 0 {
		b.ReidleMax = sc.Idle.ReidleMax
	}
	return b
}
