package escape

import (
	"github.com/dlclark/regexp2"
)

// Marker identifies one kind of character that is hidden behind a sentinel
// while a query is being split.
type Marker int8

const (
	Metaescape Marker = iota // escaped backslash (\\)
	Quote                    // escaped quotation mark (\")
	Space                    // whitespace inside a range or group
	Colon                    // ':' inside a range or group
	OpenParen                // '(' inside a range
	CloseParen               // ')' inside a range

	numMarkers
)

// substitution pairs the pattern a marker hides with the sentinel that
// replaces it and the text the sentinel is restored to.
type substitution struct {
	pattern  *regexp2.Regexp
	sentinel string
	original string
}

// substitutions is indexed by Marker. Restore walks it in index order, so
// the order of the constants above is also the unescape order.
var substitutions = [numMarkers]substitution{
	Metaescape: {mustCompile(`\\\\`), "_&_METAESC_&_", `\\`},
	Quote:      {mustCompile(`\\"`), "_&_QUOT_&_", `\"`},
	Space:      {mustCompile(`\s`), "_&_SPACE_&_", " "},
	Colon:      {mustCompile(`:`), "_&_COLON_&_", ":"},
	OpenParen:  {mustCompile(`\(`), "_&_PA_&_", "("},
	CloseParen: {mustCompile(`\)`), "_&_RENS_&_", ")"},
}

func (m Marker) String() string {
	switch m {
	case Metaescape:
		return "metaescape"
	case Quote:
		return "quote"
	case Space:
		return "space"
	case Colon:
		return "colon"
	case OpenParen:
		return "open-paren"
	case CloseParen:
		return "close-paren"
	default:
		return "unknown"
	}
}

// Sentinel returns the placeholder text that stands in for m.
func (m Marker) Sentinel() string { return substitutions[m].sentinel }

// Original returns the text a sentinel of kind m is restored to.
func (m Marker) Original() string { return substitutions[m].original }

// Conceal replaces every occurrence of m's pattern in s with its sentinel.
func (m Marker) Conceal(s string) string {
	return replaceAll(substitutions[m].pattern, s, substitutions[m].sentinel)
}

func mustCompile(expr string) *regexp2.Regexp {
	return regexp2.MustCompile(expr, regexp2.None)
}

// replaceAll substitutes a constant for every match of re in s.
func replaceAll(re *regexp2.Regexp, s, with string) string {
	return replaceFunc(re, s, func(string) string { return with })
}

// replaceFunc rewrites every non-overlapping match of re in s with the
// result of fn applied to the matched text.
func replaceFunc(re *regexp2.Regexp, s string, fn func(string) string) string {
	out, err := re.ReplaceFunc(s, func(m regexp2.Match) string {
		return fn(m.String())
	}, -1, -1)
	if err != nil {
		// regexp2 only fails on a match timeout and none is configured.
		return s
	}
	return out
}
