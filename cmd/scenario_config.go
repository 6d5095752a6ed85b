package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Scenario is one named preset in the scenarios file.
// Zero-valued fields leave the corresponding flag default in place.
type Scenario struct {
	Description        string  `yaml:"description,omitempty"`
	DurationMinutes    int     `yaml:"duration_minutes"`
	NumRuns            int     `yaml:"num_runs"`
	ArrivalRate        float64 `yaml:"arrival_rate"`
	BusIntervalMinutes int     `yaml:"bus_interval_minutes"`
	BusCapacity        int     `yaml:"bus_capacity"`
	StartTime          string  `yaml:"start_time,omitempty"`
	Seed               *int64  `yaml:"seed,omitempty"`
}

// ScenarioFile represents the full scenarios.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioFile struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// LoadScenarioFile reads and parses a scenarios YAML file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios file: %w", err)
	}
	var f ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing scenarios file: %w", err)
	}
	return &f, nil
}

// Lookup returns the named scenario or an error listing the known names.
func (f *ScenarioFile) Lookup(name string) (Scenario, error) {
	if sc, ok := f.Scenarios[name]; ok {
		return sc, nil
	}
	names := make([]string, 0, len(f.Scenarios))
	for n := range f.Scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return Scenario{}, fmt.Errorf("unknown scenario %q; valid: %s", name, strings.Join(names, ", "))
}

// applyScenario copies preset values into the flag variables, skipping any
// flag the user set explicitly.
func applyScenario(cmd *cobra.Command, sc Scenario) {
	changed := cmd.Flags().Changed
	if sc.DurationMinutes != 0 && !changed("duration") {
		durationMinutes = sc.DurationMinutes
	}
	if sc.NumRuns != 0 && !changed("runs") {
		numRuns = sc.NumRuns
	}
	if sc.ArrivalRate != 0 && !changed("rate") {
		arrivalRate = sc.ArrivalRate
	}
	if sc.BusIntervalMinutes != 0 && !changed("bus-interval") {
		busIntervalMinutes = sc.BusIntervalMinutes
	}
	if sc.BusCapacity != 0 && !changed("bus-capacity") {
		busCapacity = sc.BusCapacity
	}
	if sc.StartTime != "" && !changed("start") {
		startTime = sc.StartTime
	}
	if sc.Seed != nil && !changed("seed") {
		seed = *sc.Seed
	}
}
