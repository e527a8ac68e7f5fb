// Package report aggregates every analysis the engine offers into one
// value with a deterministic serialization: validation verdict,
// complexity, performance warnings, prefix suggestions, and extracted
// tokens, plus a content-addressed fingerprint of the query text.
package report

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"

	"github.com/tenderdata/sparqlint/internal/advise"
	"github.com/tenderdata/sparqlint/internal/scan"
	"github.com/tenderdata/sparqlint/internal/validate"
)

// domainQuery separates query fingerprints from any other hashing this
// tool may grow. The version suffix allows algorithm migration.
const domainQuery = "sparqlint/query/v1"

// Report is the complete analysis of one query string.
type Report struct {
	Fingerprint string                    `json:"fingerprint"`
	Complex     bool                      `json:"complex"`
	Validation  validate.Result           `json:"validation"`
	Performance []string                  `json:"performance"`
	Suggestions []advise.PrefixSuggestion `json:"suggestions"`
	Variables   []string                  `json:"variables"`
	Prefixes    map[string]string         `json:"prefixes"`
}

// Build runs every analysis component over the query. Pure and
// synchronous; each call constructs a fresh Report.
func Build(query string) Report {
	return Report{
		Fingerprint: Fingerprint(query),
		Complex:     validate.IsComplex(query),
		Validation:  validate.Query(query),
		Performance: advise.CheckPerformance(query),
		Suggestions: advise.SuggestPrefixes(query),
		Variables:   scan.Variables(query),
		Prefixes:    scan.Prefixes(query),
	}
}

// Fingerprint computes the content-addressed identity of a query:
// SHA-256 over the domain tag, a null separator, and the NFC-normalized
// query bytes. Stable across processes for the same text.
func Fingerprint(query string) string {
	h := sha256.New()
	h.Write([]byte(domainQuery))
	h.Write([]byte{0x00})
	h.Write([]byte(norm.NFC.String(query)))
	return hex.EncodeToString(h.Sum(nil))
}

// CanonicalJSON renders the report as canonical JSON for golden
// comparison and fingerprint-stable transport.
func (r Report) CanonicalJSON() ([]byte, error) {
	return MarshalCanonical(r.toCanonicalMap())
}

// toCanonicalMap flattens the report into the plain types the canonical
// marshaler accepts. Nil slices become empty arrays so presence is
// stable.
func (r Report) toCanonicalMap() map[string]any {
	validation := map[string]any{
		"valid":    r.Validation.Valid,
		"warnings": stringsOrEmpty(r.Validation.Warnings),
	}
	if r.Validation.Error != "" {
		validation["error"] = r.Validation.Error
	}

	suggestions := make([]any, len(r.Suggestions))
	for i, s := range r.Suggestions {
		suggestions[i] = map[string]any{
			"prefix":      s.Prefix,
			"uri":         s.URI,
			"declaration": s.Declaration,
		}
	}

	prefixes := make(map[string]any, len(r.Prefixes))
	for k, v := range r.Prefixes {
		prefixes[k] = v
	}

	return map[string]any{
		"fingerprint": r.Fingerprint,
		"complex":     r.Complex,
		"validation":  validation,
		"performance": stringsOrEmpty(r.Performance),
		"suggestions": suggestions,
		"variables":   stringsOrEmpty(r.Variables),
		"prefixes":    prefixes,
	}
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
