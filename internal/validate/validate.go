// Package validate produces structural verdicts for SPARQL query text.
//
// Validation is lexical, not grammatical: presence checks, balance
// counters, and regex heuristics stand in for a real parser. Queries the
// classifier flags as complex get a reduced-strictness pass, trading
// precision for availability on syntax the heuristics cannot judge
// safely.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tenderdata/sparqlint/internal/scan"
)

// Fixed messages surfaced to callers. The texts are part of the tool's
// contract with its UI consumers.
const (
	MsgEmptyQuery   = "Query cannot be empty"
	MsgMissingForm  = "Query must start with SELECT, CONSTRUCT, ASK, or DESCRIBE"
	MsgMissingWhere = "Query is missing a WHERE clause"
	MsgEmptyFilter  = "Empty FILTER clause found"
	MsgComplexQuery = "Complex query detected. Some validation checks have been skipped."
	MsgMissingLimit = "Query has no LIMIT clause. Consider adding LIMIT to bound the result size."
)

// queryForms are checked by substring presence, case-insensitively.
var queryForms = []string{"SELECT", "CONSTRUCT", "ASK", "DESCRIBE"}

var emptyFilterPattern = regexp.MustCompile(`(?i)\bFILTER\s*\(\s*\)`)

// Result is the verdict for a single query. Error is set exactly when
// Valid is false; Warnings is always non-nil when Valid is true.
type Result struct {
	Valid    bool     `json:"valid"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings"`
}

func invalid(msg string) Result {
	return Result{Valid: false, Error: msg}
}

func valid(warnings []string) Result {
	if warnings == nil {
		warnings = []string{}
	}
	return Result{Valid: true, Warnings: warnings}
}

// Query validates a raw query string. Complex queries take the lenient
// path; everything else gets the full set of structural checks.
func Query(text string) Result {
	if strings.TrimSpace(text) == "" {
		return invalid(MsgEmptyQuery)
	}
	if IsComplex(text) {
		return lenient(text)
	}
	return strict(text)
}

// lenient checks only minimal structure and balance. Complex queries
// defeat the strict heuristics (sub-SELECTs, multiple WHERE groups), so
// everything beyond structure is skipped and flagged as such.
func lenient(text string) Result {
	if !hasQueryForm(text) {
		return invalid(MsgMissingForm)
	}
	if requiresWhere(text) && !scan.HasKeyword(text, "WHERE") {
		return invalid(MsgMissingWhere)
	}
	if msg, ok := balanceError(text); ok {
		return invalid(msg)
	}

	warnings := []string{MsgComplexQuery}
	if missingLimit(text) {
		warnings = append(warnings, MsgMissingLimit)
	}
	return valid(warnings)
}

// strict applies every structural and advisory check.
func strict(text string) Result {
	if !hasQueryForm(text) {
		return invalid(MsgMissingForm)
	}

	var warnings []string
	if requiresWhere(text) && !scan.HasKeyword(text, "WHERE") {
		return invalid(MsgMissingWhere)
	}
	if scan.HasKeyword(text, "DESCRIBE") && !requiresWhere(text) && !scan.HasKeyword(text, "WHERE") {
		warnings = append(warnings, "DESCRIBE query has no WHERE clause")
	}

	if msg, ok := balanceError(text); ok {
		return invalid(msg)
	}
	if emptyFilterPattern.MatchString(text) {
		return invalid(MsgEmptyFilter)
	}

	warnings = append(warnings, undeclaredPrefixWarnings(text)...)
	if missingLimit(text) {
		warnings = append(warnings, MsgMissingLimit)
	}
	if n := scan.CountToken(text, "OPTIONAL"); n > 3 {
		warnings = append(warnings, fmt.Sprintf("Query uses %d OPTIONAL blocks. Consider restructuring to reduce them.", n))
	}
	if missingDotSeparators(text) {
		warnings = append(warnings, "Triple patterns in the WHERE block may be missing '.' separators")
	}
	return valid(warnings)
}

func hasQueryForm(text string) bool {
	for _, form := range queryForms {
		if scan.HasKeyword(text, form) {
			return true
		}
	}
	return false
}

// requiresWhere reports whether the query form present demands a WHERE
// clause. DESCRIBE-only queries do not.
func requiresWhere(text string) bool {
	return scan.HasKeyword(text, "SELECT") ||
		scan.HasKeyword(text, "CONSTRUCT") ||
		scan.HasKeyword(text, "ASK")
}

// balanceError reports brace and quote imbalances. The message names the
// kind of imbalance and the observed counts.
func balanceError(text string) (string, bool) {
	opens, closes := scan.BraceCounts(text)
	if opens != closes {
		return fmt.Sprintf("Unbalanced braces: %d opening and %d closing", opens, closes), true
	}
	double, single := scan.QuoteCounts(text)
	if double%2 != 0 {
		return fmt.Sprintf("Unbalanced double quotes: %d found", double), true
	}
	if single%2 != 0 {
		return fmt.Sprintf("Unbalanced single quotes: %d found", single), true
	}
	return "", false
}

func missingLimit(text string) bool {
	if !scan.HasKeyword(text, "SELECT") && !scan.HasKeyword(text, "CONSTRUCT") {
		return false
	}
	return !scan.HasToken(text, "LIMIT")
}

// undeclaredPrefixWarnings cross-checks every prefix:localname token
// against the declared PREFIX lines, one warning per undeclared prefix.
func undeclaredPrefixWarnings(text string) []string {
	declared := scan.Prefixes(text)
	var warnings []string
	for _, used := range scan.UsedPrefixes(text) {
		if _, ok := declared[used]; !ok {
			warnings = append(warnings, fmt.Sprintf("Prefix %q is used but never declared", used+":"))
		}
	}
	return warnings
}

// missingDotSeparators inspects the first WHERE block: when it holds
// several pattern lines but fewer '.' separators than pattern count
// minus one, some separators are probably missing. Literals are
// stripped first so dots inside URIs do not count.
func missingDotSeparators(text string) bool {
	block, ok := scan.FirstWhereBlock(text)
	if !ok {
		return false
	}
	stripped := scan.StripLiterals(block)

	var patterns int
	for _, line := range strings.Split(stripped, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !strings.Contains(trimmed, "?") && !strings.Contains(trimmed, ":") {
			continue
		}
		patterns++
	}
	if patterns < 2 {
		return false
	}
	return strings.Count(stripped, ".") < patterns-1
}
