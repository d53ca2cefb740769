// Package repair applies best-effort textual fixes to malformed JSON.
//
// The heuristics target the malformations most common in hand-edited or
// loosely serialized payloads: single-quoted strings, bare object keys,
// missing commas between adjacent values, and trailing commas. They are
// plain text substitutions with no guarantee of producing valid JSON;
// the caller re-parses the combined result once and decides.
package repair

import (
	"regexp"
	"strings"
)

// A Heuristic is a pure textual substitution applied to malformed JSON.
type Heuristic func(string) string

// Heuristics is the fixed application order. Each entry is independent
// and applied unconditionally.
var Heuristics = []Heuristic{
	ReplaceSingleQuotes,
	QuoteBareKeys,
	InsertMissingCommas,
	StripTrailingCommas,
}

// Fix runs every heuristic in order and returns the candidate string.
func Fix(s string) string {
	for _, h := range Heuristics {
		s = h(s)
	}
	return s
}

// ReplaceSingleQuotes converts unescaped single quotes to double quotes.
// Single quotes inside a double-quoted span are left untouched, so
// apostrophes in properly quoted string values survive.
func ReplaceSingleQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inDouble := false
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
			b.WriteRune(r)
		case r == '\\':
			escaped = true
			b.WriteRune(r)
		case inDouble:
			if r == '"' {
				inDouble = false
			}
			b.WriteRune(r)
		case r == '"':
			inDouble = true
			b.WriteRune(r)
		case r == '\'':
			b.WriteRune('"')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var bareKeyRe = regexp.MustCompile(`([{,])(\s*)([A-Za-z0-9_]+)\s*:`)

// QuoteBareKeys wraps unquoted object keys in double quotes.
// Only keys directly following "{" or "," are recognized, so a key that
// becomes reachable only after a later comma insertion stays bare.
func QuoteBareKeys(s string) string {
	return bareKeyRe.ReplaceAllString(s, `${1}${2}"${3}":`)
}

// InsertMissingCommas inserts a comma between two adjacent values where
// the separator is plainly missing, e.g. `"a": 1 "b": 2` or `"x""y"`.
//
// The scan tracks double-quoted spans so text inside string values is
// never touched. A value ends at a closing quote, a digit, or "}"; a
// value starts at an opening quote, "{", or a word character. Two bare
// word characters (or digits) must be whitespace-separated to count,
// which keeps multi-digit numbers intact.
func InsertMissingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	data := []rune(s)
	inString := false
	escaped := false
	for i := 0; i < len(data); i++ {
		r := data[i]
		b.WriteRune(r)
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
				if _, ok := nextValueStart(data, i+1); ok {
					b.WriteRune(',')
				}
			}
			continue
		}
		switch {
		case r == '"':
			inString = true
		case r == '}' || isDigit(r):
			j, ok := nextValueStart(data, i+1)
			if !ok {
				continue
			}
			// A digit run followed immediately by a word character is
			// more likely a single mangled token than two values.
			if isDigit(r) && isWord(data[j]) && j == i+1 {
				continue
			}
			b.WriteRune(',')
		}
	}
	return b.String()
}

// nextValueStart reports whether the next non-whitespace rune at or after
// position i begins a new value.
func nextValueStart(data []rune, i int) (int, bool) {
	for ; i < len(data); i++ {
		r := data[i]
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return i, r == '"' || r == '{' || isWord(r)
	}
	return i, false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isWord(r rune) bool {
	return r == '_' || isDigit(r) ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

var (
	trailingObjCommaRe = regexp.MustCompile(`,\s*}`)
	trailingArrCommaRe = regexp.MustCompile(`,\s*]`)
)

// StripTrailingCommas removes a trailing comma before a closing brace or
// bracket. The substitution is blind to string boundaries.
func StripTrailingCommas(s string) string {
	s = trailingObjCommaRe.ReplaceAllString(s, "}")
	return trailingArrCommaRe.ReplaceAllString(s, "]")
}
