// Package escape hides the characters of a Lucene query string that must not
// take part in splitting, and restores them afterwards.
//
// Protect runs before a query is split on whitespace and colons. Inside
// quoted strings, {…} and […] ranges and /…/ regular expressions it replaces
// whitespace, colons and parentheses with sentinel strings; Restore turns
// those sentinels back into the characters they replaced.
//
// The sentinels are plain substrings. A query that already contains one of
// them verbatim is not parsed correctly.
package escape

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// ranges recognize the protected spans. The opening and the closing
// delimiter only count when they are not preceded by a backslash.
var ranges = []*regexp2.Regexp{
	mustCompile(`(?<!\\)\{.*?(?<!\\)\}`), // exclusive range
	mustCompile(`(?<!\\)\[.*?(?<!\\)\]`), // inclusive range
	mustCompile(`(?<!\\)/.*?(?<!\\)/`),   // regular expression
	mustCompile(`(?<!\\)".*?(?<!\\)"`),   // quoted string
}

// rangeMarkers are concealed inside ranges, one kind at a time.
var rangeMarkers = []Marker{Space, Colon, OpenParen, CloseParen}

// Protect returns q with escaped backslashes and escaped quotes replaced by
// sentinels, and with whitespace, colons and parentheses inside every
// range replaced by sentinels.
//
// Each marker kind is swept over the spans of all four range kinds before
// the next marker kind is processed. Spans are looked up again on the
// current string for every sweep. Overlapping ranges are not supported, and
// an opening delimiter without a closing one does not form a range.
func Protect(q string) string {
	q = Metaescape.Conceal(q)
	q = Quote.Conceal(q)

	for _, m := range rangeMarkers {
		for _, r := range ranges {
			q = replaceFunc(r, q, m.Conceal)
		}
	}
	return q
}

// StripRanges removes every recognized range from q, after escaped
// backslashes and escaped quotes have been concealed. What is left is the
// part of the query whose delimiters are interpreted structurally.
func StripRanges(q string) string {
	q = Metaescape.Conceal(q)
	q = Quote.Conceal(q)

	for _, r := range ranges {
		q = replaceAll(r, q, " ")
	}
	return q
}

// Restore reverses every sentinel in v. Sentinels are replaced in Marker
// order and the restored text never contains a sentinel, so applying
// Restore twice gives the same result as applying it once.
func Restore(v string) string {
	if v == "" {
		return v
	}
	for _, s := range substitutions {
		v = strings.ReplaceAll(v, s.sentinel, s.original)
	}
	return v
}
