// Package harness runs YAML-defined conformance scenarios against the
// query analysis engine. A scenario names a query and asserts on the
// analysis outcome; golden snapshots pin the full canonical report.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance case.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario pins down.
	Description string `yaml:"description,omitempty"`

	// Query is the SPARQL text under analysis.
	Query string `yaml:"query"`

	// Assertions validate the analysis outcome.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion is a single expectation about the analysis of the query.
//
// Supported types:
//   - valid / invalid: the validation verdict
//   - error_contains: substring of the validation error (implies invalid)
//   - warning_contains: substring of at least one validation warning
//   - warning_count: exact number of validation warnings
//   - complex / not_complex: the classifier verdict
//   - suggests_prefix: a prefix suggestion with the given short name
//   - has_variable: the variable (with its ? marker) was extracted
//   - format_stable: formatting the query twice gives the same text
type Assertion struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value,omitempty"`
	Count int    `yaml:"count,omitempty"`
}

// knownAssertionTypes guards against typos in scenario files.
var knownAssertionTypes = map[string]bool{
	"valid":            true,
	"invalid":          true,
	"error_contains":   true,
	"warning_contains": true,
	"warning_count":    true,
	"complex":          true,
	"not_complex":      true,
	"suggests_prefix":  true,
	"has_variable":     true,
	"format_stable":    true,
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.check(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadDir loads every *.yaml scenario in a directory, sorted by file
// name so execution order is deterministic.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (s *Scenario) check() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("at least one assertion is required")
	}
	for i, a := range s.Assertions {
		if !knownAssertionTypes[a.Type] {
			return fmt.Errorf("assertion %d: unknown type %q", i, a.Type)
		}
	}
	return nil
}
