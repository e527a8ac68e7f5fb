// Package advise generates advisory output for SPARQL query text:
// missing PREFIX declarations for known namespaces and likely
// performance problems. Advice never blocks execution and the advisors
// never fail; internal problems degrade to empty results.
package advise

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/tenderdata/sparqlint/internal/scan"
)

// Namespace binds a namespace URI to its canonical short prefix.
type Namespace struct {
	URI    string `yaml:"uri" json:"uri"`
	Prefix string `yaml:"prefix" json:"prefix"`
}

// Builtin is the seed namespace table, ordered. Order is precedence:
// when a URI matches both a broader and a narrower namespace, the first
// entry whose URI is a prefix of the candidate wins. The table is never
// mutated; extensions are merged into a copy.
var Builtin = []Namespace{
	{URI: "http://data.europa.eu/a4g/ontology#", Prefix: "epo"},
	{URI: "http://data.europa.eu/a4g/resource/", Prefix: "epo-res"},
	{URI: "http://data.europa.eu/m8g/", Prefix: "cccev"},
	{URI: "http://publications.europa.eu/resource/authority/", Prefix: "at"},
	{URI: "http://www.w3.org/1999/02/22-rdf-syntax-ns#", Prefix: "rdf"},
	{URI: "http://www.w3.org/2000/01/rdf-schema#", Prefix: "rdfs"},
	{URI: "http://www.w3.org/2002/07/owl#", Prefix: "owl"},
	{URI: "http://www.w3.org/2001/XMLSchema#", Prefix: "xsd"},
	{URI: "http://www.w3.org/2004/02/skos/core#", Prefix: "skos"},
	{URI: "http://purl.org/dc/terms/", Prefix: "dct"},
	{URI: "http://xmlns.com/foaf/0.1/", Prefix: "foaf"},
	{URI: "http://www.w3.org/ns/org#", Prefix: "org"},
	{URI: "http://www.w3.org/ns/locn#", Prefix: "locn"},
	{URI: "http://www.w3.org/ns/adms#", Prefix: "adms"},
	{URI: "http://www.w3.org/2006/time#", Prefix: "time"},
}

// PrefixSuggestion is a PREFIX declaration the query could add.
// Declaration is the exact text to splice into the editor buffer.
type PrefixSuggestion struct {
	Prefix      string `json:"prefix"`
	URI         string `json:"uri"`
	Declaration string `json:"declaration"`
}

// SuggestPrefixes scans the query's URI literals against the builtin
// namespace table.
func SuggestPrefixes(query string) []PrefixSuggestion {
	return SuggestPrefixesFrom(query, Builtin)
}

// SuggestPrefixesFrom suggests declarations from an explicit table. For
// each URI literal the first table entry whose URI is a string-prefix of
// the literal matches; a namespace is suggested at most once and only
// when the query does not already declare its short prefix.
func SuggestPrefixesFrom(query string, table []Namespace) (suggestions []PrefixSuggestion) {
	defer func() {
		if r := recover(); r != nil {
			suggestions = nil
		}
	}()

	matched := make(map[string]bool)
	for _, uri := range scan.URIs(query) {
		for _, ns := range table {
			if !hasStringPrefix(uri, ns.URI) {
				continue
			}
			if !matched[ns.URI] && !declaresPrefix(query, ns.Prefix) {
				suggestions = append(suggestions, PrefixSuggestion{
					Prefix:      ns.Prefix,
					URI:         ns.URI,
					Declaration: fmt.Sprintf("PREFIX %s: <%s>", ns.Prefix, ns.URI),
				})
			}
			matched[ns.URI] = true
			break
		}
	}
	return suggestions
}

func hasStringPrefix(uri, namespace string) bool {
	return len(uri) >= len(namespace) && uri[:len(namespace)] == namespace
}

// declaresPrefix reports whether the query already declares the exact
// short prefix, regardless of which URI it binds.
func declaresPrefix(query, prefix string) bool {
	re := regexp.MustCompile(`(?i)\bPREFIX\s+` + regexp.QuoteMeta(prefix) + `\s*:`)
	return re.MatchString(query)
}

// LoadNamespaces reads namespace table extensions from a YAML file of
// {uri, prefix} entries.
func LoadNamespaces(path string) ([]Namespace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read namespace file: %w", err)
	}
	var entries []Namespace
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse namespace file %s: %w", path, err)
	}
	for i, ns := range entries {
		if ns.URI == "" || ns.Prefix == "" {
			return nil, fmt.Errorf("namespace file %s: entry %d needs both uri and prefix", path, i)
		}
	}
	return entries, nil
}

// MergeNamespaces appends extensions after the base table, dropping
// entries whose URI the base already covers so seed precedence holds.
func MergeNamespaces(base, extra []Namespace) []Namespace {
	known := make(map[string]bool, len(base))
	for _, ns := range base {
		known[ns.URI] = true
	}
	merged := make([]Namespace, len(base), len(base)+len(extra))
	copy(merged, base)
	for _, ns := range extra {
		if !known[ns.URI] {
			known[ns.URI] = true
			merged = append(merged, ns)
		}
	}
	return merged
}
