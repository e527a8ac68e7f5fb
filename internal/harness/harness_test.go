package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/notice_basic.yaml")
	require.NoError(t, err)
	assert.Equal(t, "notice_basic", s.Name)
	assert.Contains(t, s.Query, "?notice")
	assert.NotEmpty(t, s.Assertions)
}

func TestLoadScenarioRejectsUnknownAssertion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := `name: bad
query: "ASK { ?s ?p ?o }"
assertions:
  - type: frobnicate
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "frobnicate"`)
}

func TestLoadScenarioRequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noname.yaml")
	content := `query: "ASK { ?s ?p ?o }"
assertions:
  - type: valid
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadDirSorted(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)
	require.Len(t, scenarios, 3)
	assert.Equal(t, "empty_query", scenarios[0].Name)
	assert.Equal(t, "notice_basic", scenarios[1].Name)
	assert.Equal(t, "union_complex", scenarios[2].Name)
}

func TestRunPassingScenario(t *testing.T) {
	s := &Scenario{
		Name:  "inline",
		Query: "SELECT ?s WHERE { ?s ?p ?o . } LIMIT 10",
		Assertions: []Assertion{
			{Type: "valid"},
			{Type: "not_complex"},
			{Type: "has_variable", Value: "?s"},
			{Type: "warning_count", Count: 0},
		},
	}
	result := Run(s)
	assert.True(t, result.Passed(), "failures: %v", result.Failures)
}

func TestRunCollectsFailures(t *testing.T) {
	s := &Scenario{
		Name:  "failing",
		Query: "SELECT ?s WHERE { ?s ?p ?o . } LIMIT 10",
		Assertions: []Assertion{
			{Type: "invalid"},
			{Type: "complex"},
			{Type: "has_variable", Value: "?missing"},
		},
	}
	result := Run(s)
	assert.False(t, result.Passed())
	assert.Len(t, result.Failures, 3)

	var assertionErr *AssertionError
	require.ErrorAs(t, result.Failures[0], &assertionErr)
	assert.Equal(t, "invalid", assertionErr.Type)
}

func TestScenarioConformance(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Passed(), "failures: %v", result.Failures)
		})
	}
}
