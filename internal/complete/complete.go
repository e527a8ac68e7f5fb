// Package complete repairs incomplete SPARQL query text into a
// minimally valid query: default prefixes, a query-form clause, a WHERE
// block, and a LIMIT, each added only when missing.
package complete

import (
	"regexp"
	"strings"

	"github.com/tenderdata/sparqlint/internal/scan"
)

// Defaults appended or prepended by the repairs.
const (
	defaultPrefixBlock = "PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>\n" +
		"PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>\n"
	defaultSelectClause = "SELECT ?subject ?predicate ?object"
	defaultWhereBlock   = "WHERE {\n  ?subject ?predicate ?object .\n}"
	defaultLimitClause  = "LIMIT 100"
)

// minimalTemplate is returned verbatim for empty input.
const minimalTemplate = defaultPrefixBlock + "\n" +
	defaultSelectClause + "\n" +
	defaultWhereBlock + "\n" +
	defaultLimitClause

var whereOpenPattern = regexp.MustCompile(`(?i)\bWHERE\s*\{`)

// Query fills in missing structure. Repairs are applied in a fixed
// order, each on the result of the previous one, so a bare string of
// triple patterns accumulates prefixes, a SELECT, a WHERE block, and a
// LIMIT in one call.
func Query(text string) string {
	if strings.TrimSpace(text) == "" {
		return minimalTemplate
	}

	out := text
	out = ensurePrefixes(out)
	out = ensureQueryForm(out)
	out = ensureWhere(out)
	out = ensureLimit(out)
	return out
}

func ensurePrefixes(text string) string {
	if scan.HasToken(text, "PREFIX") {
		return text
	}
	return defaultPrefixBlock + "\n" + text
}

func ensureQueryForm(text string) string {
	for _, form := range []string{"SELECT", "CONSTRUCT", "ASK", "DESCRIBE"} {
		if scan.HasKeyword(text, form) {
			return text
		}
	}
	return text + "\n" + defaultSelectClause
}

func ensureWhere(text string) string {
	if whereOpenPattern.MatchString(text) {
		return text
	}
	return text + "\n" + defaultWhereBlock
}

func ensureLimit(text string) string {
	if !scan.HasKeyword(text, "SELECT") && !scan.HasKeyword(text, "CONSTRUCT") {
		return text
	}
	if scan.HasToken(text, "LIMIT") {
		return text
	}
	return text + "\n" + defaultLimitClause
}
