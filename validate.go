package lucq

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/gnoswap-labs/lucq/internal/escape"
	"github.com/gnoswap-labs/lucq/internal/tokenize"
)

var (
	ErrUnbalancedParens  = errors.New("unbalanced parentheses")
	ErrUnterminatedQuote = errors.New("unterminated quoted string")
	ErrUnterminatedRange = errors.New("unterminated range")
	ErrEmptyField        = errors.New("empty field name")
)

// Validate reports the problems Deparse silently works around: unbalanced
// parentheses, quotes and range delimiters without a partner, and colons
// with no field name in front of them. All problems found are combined into
// the returned error; use errors.Is to test for a specific one.
//
// Validate does not change how a query is deparsed.
func Validate(q string) error {
	var err error

	err = multierr.Append(err, checkDelimiters(escape.StripRanges(q)))

	for _, raw := range tokenize.Split(escape.Protect(q)) {
		if !IsOperator(raw) && fieldSeparator(raw) == 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrEmptyField, escape.Restore(raw)))
		}
	}
	return err
}

// checkDelimiters scans a query with all ranges removed. Any range or quote
// delimiter still present has no partner.
func checkDelimiters(s string) error {
	var (
		err    error
		depth  int
		closes int
	)
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		switch c := s[i]; c {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				closes++
				continue
			}
			depth--
		case '"':
			err = multierr.Append(err, ErrUnterminatedQuote)
		case '{', '}', '[', ']', '/':
			err = multierr.Append(err, fmt.Errorf("%w: stray %q", ErrUnterminatedRange, c))
		}
	}
	if depth > 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d unclosed '('", ErrUnbalancedParens, depth))
	}
	if closes > 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d unmatched ')'", ErrUnbalancedParens, closes))
	}
	return err
}
