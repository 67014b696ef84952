// Package tokenize splits a protected query string into raw tokens.
//
// The input is expected to have gone through escape.Protect, so whitespace,
// colons and parentheses that belong to quoted strings or ranges are already
// hidden behind sentinels.
package tokenize

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/gnoswap-labs/lucq/internal/escape"
)

var (
	parenSpacer = strings.NewReplacer("(", " ( ", ")", " ) ")

	// colonSpace matches a colon not preceded by a backslash together with
	// the whitespace around it.
	colonSpace = regexp2.MustCompile(`\s*(?<!\\):\s*`, regexp2.None)

	// fieldGroup matches from the colon of "field:(" up to the first
	// closing parenthesis not preceded by a backslash. Nested groups are
	// not balanced.
	fieldGroup = regexp2.MustCompile(`(?<!\\):\(.*?(?<!\\)\)`, regexp2.None)

	whitespaceRun = regexp2.MustCompile(`\s+`, regexp2.None)
)

// Split returns the whitespace-separated raw tokens of a protected query.
// Parentheses become tokens of their own and a field-qualified group such
// as "tags:(water OR fire)" stays in one token.
func Split(q string) []string {
	q = SpaceParens(q)
	q = NormalizeColons(q)
	q = CollapseGroups(q)
	return strings.Fields(q)
}

// SpaceParens surrounds every '(' and ')' with a single space.
func SpaceParens(q string) string {
	return parenSpacer.Replace(q)
}

// NormalizeColons removes whitespace around every colon that is not
// escaped, so "field : value" reads as "field:value".
func NormalizeColons(q string) string {
	return replace(colonSpace, q, func(string) string { return ":" })
}

// CollapseGroups hides the whitespace and the inner colons of every
// "field:(…)" group behind sentinels. The leading colon stays, so the
// token still splits into field and group later on. Each whitespace run
// becomes a single space sentinel.
func CollapseGroups(q string) string {
	return replace(fieldGroup, q, func(group string) string {
		inner := replace(whitespaceRun, group[1:], func(string) string {
			return escape.Space.Sentinel()
		})
		return group[:1] + escape.Colon.Conceal(inner)
	})
}

func replace(re *regexp2.Regexp, s string, fn func(string) string) string {
	out, err := re.ReplaceFunc(s, func(m regexp2.Match) string {
		return fn(m.String())
	}, -1, -1)
	if err != nil {
		return s
	}
	return out
}
