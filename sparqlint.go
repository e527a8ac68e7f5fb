// Package sparqlint analyzes SPARQL query text without executing it.
// It validates structure, re-indents, extracts variables and prefix
// declarations, suggests missing PREFIX declarations from a known
// namespace table, flags likely performance problems, and repairs
// incomplete queries into minimally valid ones.
//
// Every function accepts arbitrary text and never panics; malformed
// input degrades to an empty or pass-through result.
package sparqlint

import (
	"github.com/tenderdata/sparqlint/internal/advise"
	"github.com/tenderdata/sparqlint/internal/complete"
	"github.com/tenderdata/sparqlint/internal/format"
	"github.com/tenderdata/sparqlint/internal/scan"
	"github.com/tenderdata/sparqlint/internal/validate"
)

// Result is a validation verdict: either an error that makes the query
// structurally invalid, or a list of advisory warnings.
type Result = validate.Result

// PrefixSuggestion is a missing PREFIX declaration the query could add.
type PrefixSuggestion = advise.PrefixSuggestion

// Namespace is one entry of the prefix advisor's namespace table.
type Namespace = advise.Namespace

// Validate checks a query for structural problems. Complex queries get
// a lenient pass with a complexity warning instead of strict checks.
func Validate(query string) Result {
	return validate.Query(query)
}

// IsComplex reports whether the query trips any complexity signal
// (nested SELECT, many OPTIONALs, UNION, GROUP BY, aggregates, BIND,
// deep nesting, or sheer length).
func IsComplex(query string) bool {
	return validate.IsComplex(query)
}

// Format re-indents a query to two spaces per nesting level. Lines are
// never reordered, merged, or split; malformed input comes back
// unchanged.
func Format(query string) string {
	return format.Query(query)
}

// ExtractPrefixes returns the query's declared PREFIX bindings, prefix
// name to namespace URI.
func ExtractPrefixes(query string) map[string]string {
	return scan.Prefixes(query)
}

// ExtractVariables returns the query's variables in order of first use,
// without duplicates.
func ExtractVariables(query string) []string {
	return scan.Variables(query)
}

// SuggestPrefixes matches the query's URI literals against the builtin
// namespace table and returns the PREFIX declarations it could add.
func SuggestPrefixes(query string) []PrefixSuggestion {
	return advise.SuggestPrefixes(query)
}

// CheckPerformance flags patterns that tend to be slow on public
// endpoints. Findings are advisory and never make a query invalid.
func CheckPerformance(query string) []string {
	return advise.CheckPerformance(query)
}

// AddMissingStructure repairs incomplete query text into a minimally
// valid query, adding default prefixes, a SELECT clause, a WHERE block,
// and a LIMIT only where missing. Empty input yields the starter
// template.
func AddMissingStructure(query string) string {
	return complete.Query(query)
}
