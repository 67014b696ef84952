package rewrite

import (
	"go.uber.org/zap"

	"github.com/gnoswap-labs/lucq"
)

// Apply returns a rewritten copy of tokens; tokens itself is not modified.
//
// Every term is replaced by the first rule that matches it. Replacements
// are not matched again, so a rule may expand a term into text containing
// the term. Filters are then applied in order, each one wrapping the query
// built so far as "( … ) AND field : term". A filter applied to an empty
// query becomes the whole query.
func (rs *RuleSet) Apply(tokens lucq.Tokens, logger *zap.Logger) lucq.Tokens {
	if logger == nil {
		logger = zap.NewNop()
	}

	out := tokens.Clone()
	for i := range out {
		for _, rule := range rs.Rules {
			if !rule.Matches(out[i]) {
				continue
			}
			logger.Debug("applied rule",
				zap.String("rule", rule.Name),
				zap.String("field", out[i].Field),
				zap.String("from", out[i].Value),
				zap.String("to", rule.Replacement))
			out[i].Value = rule.Replacement
			break
		}
	}

	for _, f := range rs.Filters {
		out = wrap(out, lucq.NewTerm(f.Field, f.Term))
		logger.Debug("applied filter", zap.String("filter", f.Name), zap.Int("tokens", len(out)))
	}
	return out
}

func wrap(tokens lucq.Tokens, filter lucq.Token) lucq.Tokens {
	if len(tokens) == 0 {
		return lucq.Tokens{filter}
	}
	out := make(lucq.Tokens, 0, len(tokens)+4)
	out = append(out, lucq.NewLiteral("("))
	out = append(out, tokens...)
	out = append(out, lucq.NewLiteral(")"), lucq.NewLiteral("AND"), filter)
	return out
}
