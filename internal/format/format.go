// Package format re-indents SPARQL query text to two spaces per nesting
// level. The pass is line-oriented: lines are never reordered, merged,
// or split, only re-indented. On any internal failure the original text
// comes back unchanged.
package format

import (
	"regexp"
	"strings"

	"github.com/tenderdata/sparqlint/internal/scan"
)

const indentUnit = "  "

// keywordPattern matches lines that start with a SPARQL keyword.
var keywordPattern = regexp.MustCompile(`(?i)^(PREFIX|SELECT|DISTINCT|CONSTRUCT|ASK|DESCRIBE|FROM|WHERE|FILTER|OPTIONAL|UNION|MINUS|GRAPH|SERVICE|GROUP\s+BY|HAVING|ORDER\s+BY|LIMIT|OFFSET|BIND)\b`)

var prefixLinePattern = regexp.MustCompile(`(?i)^PREFIX\b`)

// Query re-indents the query. Fail-soft: the original input is returned
// when formatting cannot complete.
func Query(text string) string {
	out, ok := QueryChecked(text)
	if !ok {
		return text
	}
	return out
}

// QueryChecked is Query with an explicit outcome: ok is false when the
// formatter degraded and handed back the input unchanged.
func QueryChecked(text string) (formatted string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			formatted, ok = text, false
		}
	}()

	if len(text) > scan.MaxInputBytes {
		return text, false
	}

	st := state{}
	for _, line := range strings.Split(text, "\n") {
		st = step(st, line)
	}
	return strings.Join(st.out, "\n"), true
}

// state is the fold accumulator: current nesting depth plus the emitted
// lines so far.
type state struct {
	depth int
	out   []string
}

func (st state) emit(line string) state {
	st.out = append(st.out, strings.Repeat(indentUnit, st.depth)+line)
	return st
}

// step is the per-line transition. Exactly one rule applies to each
// line; rules are ordered blank, comment, closing brace, keyword,
// fallback.
func step(st state, raw string) state {
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		st.out = append(st.out, "")
		return st
	case strings.HasPrefix(trimmed, "#"):
		return st.emit(trimmed)
	case closesBlock(trimmed):
		return closeLine(st, trimmed)
	}

	line := trimmed
	if strings.HasPrefix(line, ".") {
		// Leading separator goes on its own line before the clause.
		st = st.emit(".")
		line = strings.TrimSpace(line[1:])
		if line == "" {
			return st
		}
	}

	if keywordPattern.MatchString(line) {
		if prefixLinePattern.MatchString(line) {
			st.out = append(st.out, line)
			return st
		}
		st = st.emit(line)
		st.depth += openedBraces(line)
		return st
	}

	st = st.emit(line)
	st.depth += openedBraces(line)
	return st
}

// closesBlock reports whether the line ends a block: it leads with a
// closing brace or closes more braces than it opens. Lines that open
// and close a group inline stay whole.
func closesBlock(line string) bool {
	if strings.HasPrefix(line, "}") {
		return true
	}
	return strings.Count(line, "}") > strings.Count(line, "{")
}

// closeLine handles a block-closing line: content before the brace is
// emitted at the current depth, each leading brace dedents and lands on
// its own line, and trailing content follows at the new depth.
func closeLine(st state, line string) state {
	idx := strings.Index(line, "}")
	if before := strings.TrimSpace(line[:idx]); before != "" {
		st = st.emit(before)
	}

	rest := line[idx:]
	for strings.HasPrefix(rest, "}") {
		if st.depth > 0 {
			st.depth--
		}
		st = st.emit("}")
		rest = strings.TrimSpace(rest[1:])
	}

	if rest != "" {
		st = st.emit(rest)
		st.depth += openedBraces(rest)
	}
	return st
}

// openedBraces counts braces a line opens and does not close on the
// same line. Never negative.
func openedBraces(line string) int {
	n := strings.Count(line, "{") - strings.Count(line, "}")
	if n < 0 {
		return 0
	}
	return n
}
