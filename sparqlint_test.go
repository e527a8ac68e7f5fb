package sparqlint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenderdata/sparqlint"
)

func TestValidate(t *testing.T) {
	res := sparqlint.Validate("SELECT ?s WHERE { ?s ?p ?o . } LIMIT 10")
	assert.True(t, res.Valid)
	assert.Empty(t, res.Warnings)

	res = sparqlint.Validate("")
	assert.False(t, res.Valid)
	assert.Equal(t, "Query cannot be empty", res.Error)
}

func TestIsComplex(t *testing.T) {
	assert.False(t, sparqlint.IsComplex("ASK { ?s ?p ?o }"))
	assert.True(t, sparqlint.IsComplex("SELECT ?s WHERE { { ?s ?p ?o } UNION { ?s ?q ?o } }"))
}

func TestFormat(t *testing.T) {
	got := sparqlint.Format("SELECT ?s WHERE {\n?s ?p ?o .\n}")
	assert.Equal(t, "SELECT ?s WHERE {\n  ?s ?p ?o .\n}", got)
}

func TestExtractPrefixes(t *testing.T) {
	prefixes := sparqlint.ExtractPrefixes("PREFIX epo: <http://data.europa.eu/a4g/ontology#>\nASK { ?s ?p ?o }")
	assert.Equal(t, map[string]string{"epo": "http://data.europa.eu/a4g/ontology#"}, prefixes)
}

func TestExtractVariables(t *testing.T) {
	assert.Equal(t, []string{"?a", "?b", "?p"},
		sparqlint.ExtractVariables("SELECT ?a ?b WHERE { ?a ?p ?b }"))
}

func TestSuggestPrefixes(t *testing.T) {
	suggestions := sparqlint.SuggestPrefixes(
		"SELECT ?n WHERE { ?n a <http://data.europa.eu/a4g/ontology#Notice> }")
	require.Len(t, suggestions, 1)
	assert.Equal(t, "PREFIX epo: <http://data.europa.eu/a4g/ontology#>", suggestions[0].Declaration)
}

func TestCheckPerformance(t *testing.T) {
	warnings := sparqlint.CheckPerformance("SELECT * WHERE { ?s ?p ?o }")
	assert.Contains(t, warnings, "SELECT * projects every variable. Project only the variables you need.")
}

func TestAddMissingStructure(t *testing.T) {
	repaired := sparqlint.AddMissingStructure("")
	res := sparqlint.Validate(repaired)
	assert.True(t, res.Valid)
}
