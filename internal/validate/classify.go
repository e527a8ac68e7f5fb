package validate

import (
	"regexp"

	"github.com/tenderdata/sparqlint/internal/scan"
)

// Complexity thresholds. A query crossing any of them is considered too
// complex for the strict lexical checks to judge safely.
const (
	maxSimpleOptionals = 2
	maxSimpleBraces    = 3
	maxSimpleLines     = 20
)

var (
	aggregatePattern = regexp.MustCompile(`(?i)\b(COUNT|SUM|AVG|MIN|MAX)\s*\(`)
	bindPattern      = regexp.MustCompile(`(?i)\bBIND\s*\(`)
	groupByPattern   = regexp.MustCompile(`(?i)\bGROUP\s+BY\b`)
)

// IsComplex reports whether the query looks too complex for strict
// lexical validation. Each signal is a named predicate so individual
// heuristics can be tested and replaced independently. Empty input is
// not complex.
func IsComplex(query string) bool {
	return hasNestedSelect(query) ||
		hasManyOptionals(query) ||
		hasUnion(query) ||
		hasGroupBy(query) ||
		hasAggregate(query) ||
		hasBind(query) ||
		isDeeplyNested(query) ||
		isLong(query)
}

// hasNestedSelect treats a repeated SELECT keyword as a proxy for a
// sub-SELECT.
func hasNestedSelect(query string) bool {
	return scan.CountToken(query, "SELECT") > 1
}

func hasManyOptionals(query string) bool {
	return scan.CountToken(query, "OPTIONAL") > maxSimpleOptionals
}

func hasUnion(query string) bool {
	return scan.HasToken(query, "UNION")
}

func hasGroupBy(query string) bool {
	return groupByPattern.MatchString(query)
}

func hasAggregate(query string) bool {
	return aggregatePattern.MatchString(query)
}

func hasBind(query string) bool {
	return bindPattern.MatchString(query)
}

func isDeeplyNested(query string) bool {
	opens, _ := scan.BraceCounts(query)
	return opens > maxSimpleBraces
}

func isLong(query string) bool {
	return scan.CountLines(query) > maxSimpleLines
}
