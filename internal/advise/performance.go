package advise

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tenderdata/sparqlint/internal/scan"
)

// Performance thresholds.
const (
	maxOptionals = 3
	maxFilters   = 5
)

// Performance warning messages with fixed text.
const (
	MsgNoLimit            = "Query has no LIMIT clause. Consider adding LIMIT to bound the result size."
	MsgSelectStar         = "SELECT * projects every variable. Project only the variables you need."
	MsgUngroupedAggregate = "Aggregate function used without GROUP BY"
	MsgCartesianCandidate = "WHERE block may contain disconnected triple patterns (possible cartesian product)"
)

var (
	selectStarPattern    = regexp.MustCompile(`(?i)\bSELECT\s+(DISTINCT\s+)?\*`)
	aggregateCallPattern = regexp.MustCompile(`(?i)\b(COUNT|SUM|AVG|MIN|MAX)\s*\(`)
	groupByClausePattern = regexp.MustCompile(`(?i)\bGROUP\s+BY\b`)
	variableRefPattern   = regexp.MustCompile(`\?[A-Za-z_][A-Za-z0-9_]*`)
)

// CheckPerformance flags likely performance problems. It always returns,
// never fails, and runs independently of validation.
func CheckPerformance(query string) []string {
	warnings, _ := CheckPerformanceDetailed(query)
	return warnings
}

// CheckPerformanceDetailed additionally reports whether the check
// degraded to an empty result instead of completing, so callers and
// tests can tell "no findings" from "gave up".
func CheckPerformanceDetailed(query string) (warnings []string, degraded bool) {
	defer func() {
		if r := recover(); r != nil {
			warnings, degraded = nil, true
		}
	}()

	if len(query) > scan.MaxInputBytes {
		return nil, true
	}

	if missingLimit(query) {
		warnings = append(warnings, MsgNoLimit)
	}
	if n := scan.CountToken(query, "OPTIONAL"); n > maxOptionals {
		warnings = append(warnings, fmt.Sprintf("Query uses %d OPTIONAL blocks; each one can multiply the work the endpoint does", n))
	}
	if n := scan.CountToken(query, "FILTER"); n > maxFilters {
		warnings = append(warnings, fmt.Sprintf("Query uses %d FILTER clauses; consider folding them into the triple patterns", n))
	}
	if hasDisconnectedPatterns(query) {
		warnings = append(warnings, MsgCartesianCandidate)
	}
	if selectStarPattern.MatchString(query) {
		warnings = append(warnings, MsgSelectStar)
	}
	if aggregateCallPattern.MatchString(query) && !groupByClausePattern.MatchString(query) {
		warnings = append(warnings, MsgUngroupedAggregate)
	}
	return warnings, false
}

func missingLimit(query string) bool {
	if !scan.HasKeyword(query, "SELECT") && !scan.HasKeyword(query, "CONSTRUCT") {
		return false
	}
	return !scan.HasToken(query, "LIMIT")
}

// hasDisconnectedPatterns is the cartesian-product heuristic. It splits
// the first WHERE block into segments on " . ", drops comments and
// FILTER segments, and counts how many variables appear in exactly one
// segment. When lonely variables outnumber half the segments, the
// patterns probably do not join.
//
// Known limitation: only the first WHERE block is inspected and the
// block scan is not nesting-aware, so nested groups and later WHERE
// groups are ignored.
func hasDisconnectedPatterns(query string) bool {
	block, ok := scan.FirstWhereBlock(query)
	if !ok {
		return false
	}

	var segments []string
	for _, seg := range strings.Split(block, " . ") {
		trimmed := strings.TrimSpace(seg)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if scan.HasToken(trimmed, "FILTER") {
			continue
		}
		segments = append(segments, trimmed)
	}
	if len(segments) <= 2 {
		return false
	}

	occurrences := make(map[string]int)
	for _, seg := range segments {
		for _, v := range uniqueVariables(seg) {
			occurrences[v]++
		}
	}
	lonely := 0
	for _, n := range occurrences {
		if n == 1 {
			lonely++
		}
	}
	return lonely > len(segments)/2
}

func uniqueVariables(segment string) []string {
	var vars []string
	seen := make(map[string]bool)
	for _, v := range variableRefPattern.FindAllString(segment, -1) {
		if !seen[v] {
			seen[v] = true
			vars = append(vars, v)
		}
	}
	return vars
}
