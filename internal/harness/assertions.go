package harness

import (
	"fmt"
	"strings"

	"github.com/tenderdata/sparqlint/internal/report"
)

// AssertionError carries enough context to debug a failed scenario
// without re-running it.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s\n  expected: %s\n  actual: %s", e.Type, e.Expected, e.Actual)
}

func assertValid(rep report.Report) error {
	if rep.Validation.Valid {
		return nil
	}
	return &AssertionError{
		Type:     "valid",
		Expected: "query to validate",
		Actual:   fmt.Sprintf("invalid: %s", rep.Validation.Error),
	}
}

func assertInvalid(rep report.Report) error {
	if !rep.Validation.Valid {
		return nil
	}
	return &AssertionError{
		Type:     "invalid",
		Expected: "query to fail validation",
		Actual:   "valid",
	}
}

func assertErrorContains(rep report.Report, substr string) error {
	if !rep.Validation.Valid && strings.Contains(rep.Validation.Error, substr) {
		return nil
	}
	return &AssertionError{
		Type:     "error_contains",
		Expected: fmt.Sprintf("validation error containing %q", substr),
		Actual:   describeVerdict(rep),
	}
}

func assertWarningContains(rep report.Report, substr string) error {
	for _, w := range rep.Validation.Warnings {
		if strings.Contains(w, substr) {
			return nil
		}
	}
	return &AssertionError{
		Type:     "warning_contains",
		Expected: fmt.Sprintf("a warning containing %q", substr),
		Actual:   fmt.Sprintf("warnings: %v", rep.Validation.Warnings),
	}
}

func assertWarningCount(rep report.Report, count int) error {
	if len(rep.Validation.Warnings) == count {
		return nil
	}
	return &AssertionError{
		Type:     "warning_count",
		Expected: fmt.Sprintf("%d warnings", count),
		Actual:   fmt.Sprintf("%d warnings: %v", len(rep.Validation.Warnings), rep.Validation.Warnings),
	}
}

func assertComplex(rep report.Report, want bool) error {
	if rep.Complex == want {
		return nil
	}
	name := "complex"
	if !want {
		name = "not_complex"
	}
	return &AssertionError{
		Type:     name,
		Expected: fmt.Sprintf("complex=%t", want),
		Actual:   fmt.Sprintf("complex=%t", rep.Complex),
	}
}

func assertSuggestsPrefix(rep report.Report, prefix string) error {
	for _, s := range rep.Suggestions {
		if s.Prefix == prefix {
			return nil
		}
	}
	return &AssertionError{
		Type:     "suggests_prefix",
		Expected: fmt.Sprintf("a suggestion for prefix %q", prefix),
		Actual:   fmt.Sprintf("suggestions: %v", rep.Suggestions),
	}
}

func assertHasVariable(rep report.Report, name string) error {
	for _, v := range rep.Variables {
		if v == name {
			return nil
		}
	}
	return &AssertionError{
		Type:     "has_variable",
		Expected: fmt.Sprintf("variable %q to be extracted", name),
		Actual:   fmt.Sprintf("variables: %v", rep.Variables),
	}
}

func describeVerdict(rep report.Report) string {
	if rep.Validation.Valid {
		return "valid"
	}
	return fmt.Sprintf("invalid: %s", rep.Validation.Error)
}
