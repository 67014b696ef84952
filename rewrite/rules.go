// Package rewrite edits deparsed queries with rules loaded from YAML: term
// replacements such as synonym expansion, and filters that are ANDed onto
// the whole query.
//
//	rules:
//	  - name: author synonyms
//	    field: author
//	    match: Meier
//	    replacement: "(Meier OR Mueller)"
//	filters:
//	  - name: open access only
//	    field: access
//	    term: open
package rewrite

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/lucq"
)

// AnyField as a Rule field matches terms of every field and global terms.
const AnyField = "*"

var (
	ErrEmptyMatch      = errors.New("rule has no match")
	ErrEmptyFilterTerm = errors.New("filter has no term")
)

// Rule replaces the value of matching terms.
//
// Field selects the terms the rule looks at: a field name, AnyField, or
// empty for global terms only. Match must equal the term value. Replacement
// is written as-is; it is query text and is not escaped.
type Rule struct {
	Name        string `yaml:"name"`
	Field       string `yaml:"field"`
	Match       string `yaml:"match"`
	Replacement string `yaml:"replacement"`
}

// Filter restricts a query to documents that also match Field:Term.
type Filter struct {
	Name  string `yaml:"name"`
	Field string `yaml:"field"`
	Term  string `yaml:"term"`
}

type RuleSet struct {
	Rules   []Rule   `yaml:"rules"`
	Filters []Filter `yaml:"filters"`
}

// Matches reports whether r applies to t.
func (r Rule) Matches(t lucq.Token) bool {
	if !t.IsTerm() || t.Value != r.Match {
		return false
	}
	return r.Field == AnyField || r.Field == t.Field
}

// LoadRules reads and validates a RuleSet from the YAML file at path.
func LoadRules(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rs, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// ParseRules decodes and validates a RuleSet from YAML.
func ParseRules(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, err
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Validate reports every rule without a match and every filter without a
// term.
func (rs *RuleSet) Validate() error {
	var err error
	for i, r := range rs.Rules {
		if r.Match == "" {
			err = multierr.Append(err, fmt.Errorf("rules[%d] %q: %w", i, r.Name, ErrEmptyMatch))
		}
	}
	for i, f := range rs.Filters {
		if f.Term == "" {
			err = multierr.Append(err, fmt.Errorf("filters[%d] %q: %w", i, f.Name, ErrEmptyFilterTerm))
		}
	}
	return err
}
