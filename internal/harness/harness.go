package harness

import (
	"github.com/tenderdata/sparqlint/internal/format"
	"github.com/tenderdata/sparqlint/internal/report"
)

// Result is the outcome of one scenario run.
type Result struct {
	Scenario string
	Report   report.Report
	Failures []error
}

// Passed reports whether every assertion held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run analyzes the scenario's query and evaluates every assertion.
// Assertion failures accumulate in the result; Run itself fails only on
// a malformed scenario.
func Run(s *Scenario) *Result {
	rep := report.Build(s.Query)
	result := &Result{Scenario: s.Name, Report: rep}

	for _, a := range s.Assertions {
		if err := evaluate(a, s.Query, rep); err != nil {
			result.Failures = append(result.Failures, err)
		}
	}
	return result
}

// evaluate dispatches one assertion against the built report. The
// format_stable assertion re-runs the formatter since idempotence is a
// property of the text, not the report.
func evaluate(a Assertion, query string, rep report.Report) error {
	switch a.Type {
	case "valid":
		return assertValid(rep)
	case "invalid":
		return assertInvalid(rep)
	case "error_contains":
		return assertErrorContains(rep, a.Value)
	case "warning_contains":
		return assertWarningContains(rep, a.Value)
	case "warning_count":
		return assertWarningCount(rep, a.Count)
	case "complex":
		return assertComplex(rep, true)
	case "not_complex":
		return assertComplex(rep, false)
	case "suggests_prefix":
		return assertSuggestsPrefix(rep, a.Value)
	case "has_variable":
		return assertHasVariable(rep, a.Value)
	case "format_stable":
		return assertFormatStable(query)
	default:
		// Unreachable for loaded scenarios; Scenario.check rejects
		// unknown types.
		return &AssertionError{Type: a.Type, Expected: "a known assertion type", Actual: "unknown"}
	}
}

func assertFormatStable(query string) error {
	once := format.Query(query)
	twice := format.Query(once)
	if once != twice {
		return &AssertionError{
			Type:     "format_stable",
			Expected: "formatting to be idempotent",
			Actual:   "second pass changed the text",
		}
	}
	return nil
}
