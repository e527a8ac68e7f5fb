package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintStable(t *testing.T) {
	query := "SELECT ?s WHERE { ?s ?p ?o . } LIMIT 10"
	a := Fingerprint(query)
	b := Fingerprint(query)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprintDiffersPerQuery(t *testing.T) {
	a := Fingerprint("SELECT ?s WHERE { ?s ?p ?o }")
	b := Fingerprint("SELECT ?x WHERE { ?x ?p ?o }")
	assert.NotEqual(t, a, b)
}

func TestBuildRunsAllComponents(t *testing.T) {
	query := `SELECT ?n WHERE {
  ?n a <http://data.europa.eu/a4g/ontology#Notice>
}`
	rep := Build(query)

	assert.NotEmpty(t, rep.Fingerprint)
	assert.False(t, rep.Complex)
	assert.True(t, rep.Validation.Valid)
	assert.Contains(t, rep.Performance, "Query has no LIMIT clause. Consider adding LIMIT to bound the result size.")
	require.Len(t, rep.Suggestions, 1)
	assert.Equal(t, "epo", rep.Suggestions[0].Prefix)
	assert.Equal(t, []string{"?n"}, rep.Variables)
	assert.Empty(t, rep.Prefixes)
}

func TestCanonicalJSONDeterministic(t *testing.T) {
	rep := Build("SELECT ?s WHERE { ?s ?p ?o . } LIMIT 10")
	a, err := rep.CanonicalJSON()
	require.NoError(t, err)
	b, err := rep.CanonicalJSON()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Canonical keys come out in sorted order.
	assert.True(t, strings.HasPrefix(string(a), `{"complex":`), string(a))

	// Output stays parseable as regular JSON.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(a, &decoded))
	assert.Equal(t, rep.Fingerprint, decoded["fingerprint"])
}

func TestMarshalCanonicalSortsKeys(t *testing.T) {
	b, err := MarshalCanonical(map[string]any{"b": "2", "a": "1", "c": "3"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"1","b":"2","c":"3"}`, string(b))
}

func TestMarshalCanonicalNoHTMLEscaping(t *testing.T) {
	b, err := MarshalCanonical("PREFIX epo: <http://data.europa.eu/a4g/ontology#>")
	require.NoError(t, err)
	assert.Equal(t, `"PREFIX epo: <http://data.europa.eu/a4g/ontology#>"`, string(b))
}

func TestMarshalCanonicalRejectsFloatsAndNull(t *testing.T) {
	_, err := MarshalCanonical(3.14)
	assert.Error(t, err)

	_, err = MarshalCanonical(nil)
	assert.Error(t, err)

	_, err = MarshalCanonical(map[string]any{"x": 1.5})
	assert.Error(t, err)
}

func TestMarshalCanonicalNestedShapes(t *testing.T) {
	b, err := MarshalCanonical(map[string]any{
		"warnings": []string{"w1", "w2"},
		"count":    2,
		"valid":    true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"count":2,"valid":true,"warnings":["w1","w2"]}`, string(b))
}

func TestCanonicalJSONIncludesErrorOnlyWhenInvalid(t *testing.T) {
	bad, err := Build("").CanonicalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(bad), fmt.Sprintf(`"error":%q`, "Query cannot be empty"))

	good, err := Build("ASK { ?s ?p ?o }").CanonicalJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(good), `"error"`)
}
