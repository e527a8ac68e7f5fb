// Package scan provides the regex-driven lexical primitives shared by the
// query analysis components: variable, prefix, and URI extraction plus
// brace/quote balance counting.
//
// These are shallow heuristics over raw query text, not a SPARQL
// tokenizer. Every primitive tolerates partial or malformed input and
// never fails; oversized input degrades to empty results.
package scan

import (
	"regexp"
	"strings"
)

// MaxInputBytes caps the query size the scanners inspect. Anything past
// the cap yields empty results instead of stalling the caller.
const MaxInputBytes = 1 << 20

var (
	variablePattern     = regexp.MustCompile(`\?[A-Za-z_][A-Za-z0-9_]*`)
	prefixDeclPattern   = regexp.MustCompile(`(?i)\bPREFIX\s+([A-Za-z][A-Za-z0-9_-]*)?\s*:\s*<([^<>\s]*)>`)
	uriPattern          = regexp.MustCompile(`<([^<>\s]+)>`)
	prefixedNamePattern = regexp.MustCompile(`([A-Za-z][A-Za-z0-9_-]*):[A-Za-z_][A-Za-z0-9_-]*`)
	quotedLiteralPattern = regexp.MustCompile(`"[^"]*"|'[^']*'`)
	uriLiteralPattern    = regexp.MustCompile(`<[^<>\s]*>`)
	whereBlockPattern    = regexp.MustCompile(`(?is)\bWHERE\s*\{(.*?)\}`)
)

// Variables returns every ?name variable in order of first occurrence,
// deduplicated.
func Variables(query string) []string {
	if len(query) > MaxInputBytes {
		return nil
	}
	var vars []string
	seen := make(map[string]bool)
	for _, v := range variablePattern.FindAllString(query, -1) {
		if !seen[v] {
			seen[v] = true
			vars = append(vars, v)
		}
	}
	return vars
}

// Prefixes returns the declared PREFIX bindings as a prefix-to-URI map.
// A default namespace declaration (PREFIX : <...>) maps from "".
func Prefixes(query string) map[string]string {
	prefixes := make(map[string]string)
	if len(query) > MaxInputBytes {
		return prefixes
	}
	for _, m := range prefixDeclPattern.FindAllStringSubmatch(query, -1) {
		prefixes[m[1]] = m[2]
	}
	return prefixes
}

// URIs returns every <...> URI literal in order of first occurrence,
// deduplicated and stripped of the angle brackets.
func URIs(query string) []string {
	if len(query) > MaxInputBytes {
		return nil
	}
	var uris []string
	seen := make(map[string]bool)
	for _, m := range uriPattern.FindAllStringSubmatch(query, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			uris = append(uris, m[1])
		}
	}
	return uris
}

// UsedPrefixes returns the prefix names of prefix:localname tokens in
// order of first occurrence, deduplicated. URI and string literals are
// stripped first so scheme separators (http:) do not count.
func UsedPrefixes(query string) []string {
	if len(query) > MaxInputBytes {
		return nil
	}
	stripped := StripLiterals(query)
	var names []string
	seen := make(map[string]bool)
	for _, m := range prefixedNamePattern.FindAllStringSubmatchIndex(stripped, -1) {
		// A ?var3:x match would start inside a variable name; skip
		// tokens glued to the previous word or a variable marker.
		if m[0] > 0 {
			prev := stripped[m[0]-1]
			if prev == '?' || prev == '$' || isNameByte(prev) {
				continue
			}
		}
		name := stripped[m[2]:m[3]]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func isNameByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// StripLiterals blanks out URI literals and quoted strings so token
// scans do not match inside them. The replacement preserves nothing of
// the literal content.
func StripLiterals(query string) string {
	stripped := uriLiteralPattern.ReplaceAllString(query, " ")
	return quotedLiteralPattern.ReplaceAllString(stripped, " ")
}

// BraceCounts returns the number of '{' and '}' characters.
func BraceCounts(query string) (opens, closes int) {
	return strings.Count(query, "{"), strings.Count(query, "}")
}

// QuoteCounts returns the number of double and single quote characters.
// Balance is a mod-2 property; the counters are not escape-aware.
func QuoteCounts(query string) (double, single int) {
	return strings.Count(query, `"`), strings.Count(query, `'`)
}

// FirstWhereBlock returns the contents of the first WHERE { ... } group.
// The scan stops at the first closing brace, so nested groups come back
// truncated; callers treat the result as a heuristic sample, not a
// faithful parse.
func FirstWhereBlock(query string) (string, bool) {
	if len(query) > MaxInputBytes {
		return "", false
	}
	m := whereBlockPattern.FindStringSubmatch(query)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CountLines returns the number of lines in the query.
func CountLines(query string) int {
	return strings.Count(query, "\n") + 1
}

// HasKeyword reports whether the keyword occurs anywhere in the query,
// case-insensitively, as a plain substring. This mirrors the loose
// presence checks the validator applies to query-form keywords.
func HasKeyword(query, keyword string) bool {
	return strings.Contains(strings.ToUpper(query), strings.ToUpper(keyword))
}

// CountToken returns the number of word-bounded, case-insensitive
// occurrences of the token.
func CountToken(query, token string) int {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
	return len(re.FindAllString(query, -1))
}

// HasToken reports whether the token occurs at least once, word-bounded
// and case-insensitive.
func HasToken(query, token string) bool {
	return CountToken(query, token) > 0
}
