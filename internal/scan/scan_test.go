package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariablesOrderAndDedup(t *testing.T) {
	vars := Variables("SELECT ?a ?b WHERE { ?a ?p ?b }")
	assert.Equal(t, []string{"?a", "?b", "?p"}, vars)
}

func TestVariablesEmpty(t *testing.T) {
	assert.Empty(t, Variables(""))
	assert.Empty(t, Variables("SELECT * WHERE { <a> <b> <c> }"))
}

func TestVariablesUnderscoreAndDigits(t *testing.T) {
	vars := Variables("SELECT ?_x1 WHERE { ?_x1 ?p2 ?y }")
	assert.Equal(t, []string{"?_x1", "?p2", "?y"}, vars)
}

func TestPrefixes(t *testing.T) {
	query := `PREFIX epo: <http://data.europa.eu/a4g/ontology#>
prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT ?s WHERE { ?s a epo:Notice }`

	prefixes := Prefixes(query)
	require.Len(t, prefixes, 2)
	assert.Equal(t, "http://data.europa.eu/a4g/ontology#", prefixes["epo"])
	assert.Equal(t, "http://www.w3.org/2000/01/rdf-schema#", prefixes["rdfs"])
}

func TestPrefixesDefaultNamespace(t *testing.T) {
	prefixes := Prefixes("PREFIX : <http://example.org/>")
	assert.Equal(t, "http://example.org/", prefixes[""])
}

func TestURIs(t *testing.T) {
	query := `SELECT ?s WHERE {
  ?s a <http://data.europa.eu/a4g/ontology#Notice> .
  ?s <http://purl.org/dc/terms/title> ?t .
  ?s a <http://data.europa.eu/a4g/ontology#Notice> .
}`
	uris := URIs(query)
	assert.Equal(t, []string{
		"http://data.europa.eu/a4g/ontology#Notice",
		"http://purl.org/dc/terms/title",
	}, uris)
}

func TestUsedPrefixes(t *testing.T) {
	query := `PREFIX epo: <http://data.europa.eu/a4g/ontology#>
SELECT ?s WHERE {
  ?s a epo:Notice .
  ?s dct:title "epo:NotAPrefix" .
  ?s foaf:name ?n .
}`
	used := UsedPrefixes(query)
	assert.Equal(t, []string{"epo", "dct", "foaf"}, used)
}

func TestUsedPrefixesIgnoresURISchemes(t *testing.T) {
	used := UsedPrefixes("SELECT ?s WHERE { ?s ?p <http://example.org/x> }")
	assert.Empty(t, used)
}

func TestBraceCounts(t *testing.T) {
	opens, closes := BraceCounts("SELECT ?s WHERE { { ?s ?p ?o } }")
	assert.Equal(t, 2, opens)
	assert.Equal(t, 2, closes)
}

func TestQuoteCounts(t *testing.T) {
	double, single := QuoteCounts(`?s rdfs:label "x" . ?s ?p 'y'`)
	assert.Equal(t, 2, double)
	assert.Equal(t, 2, single)
}

func TestFirstWhereBlock(t *testing.T) {
	block, ok := FirstWhereBlock("SELECT ?s WHERE { ?s ?p ?o . ?o ?q ?r } LIMIT 5")
	require.True(t, ok)
	assert.Contains(t, block, "?s ?p ?o")
	assert.Contains(t, block, "?o ?q ?r")
}

func TestFirstWhereBlockMissing(t *testing.T) {
	_, ok := FirstWhereBlock("ASK { ?s ?p ?o }")
	assert.False(t, ok)
}

func TestFirstWhereBlockTruncatesNestedGroups(t *testing.T) {
	// The scan is not nesting-aware: it stops at the first closing brace.
	block, ok := FirstWhereBlock("SELECT ?s WHERE { OPTIONAL { ?s ?p ?o } ?s ?q ?r }")
	require.True(t, ok)
	assert.NotContains(t, block, "?q")
}

func TestHasKeywordCaseInsensitive(t *testing.T) {
	assert.True(t, HasKeyword("select ?s where { ?s ?p ?o }", "SELECT"))
	assert.True(t, HasKeyword("SELECT ?s", "select"))
	assert.False(t, HasKeyword("ASK { ?s ?p ?o }", "SELECT"))
}

func TestCountToken(t *testing.T) {
	query := "SELECT ?s WHERE { OPTIONAL { ?s ?p ?o } OPTIONAL { ?s ?q ?r } }"
	assert.Equal(t, 2, CountToken(query, "OPTIONAL"))
	assert.Equal(t, 1, CountToken(query, "select"))
	assert.Equal(t, 0, CountToken("?selection", "SELECT"))
}

func TestOversizedInputDegrades(t *testing.T) {
	huge := strings.Repeat("?x ", MaxInputBytes)
	assert.Nil(t, Variables(huge))
	assert.Empty(t, Prefixes(huge))
	assert.Nil(t, URIs(huge))
	_, ok := FirstWhereBlock(huge)
	assert.False(t, ok)
}
