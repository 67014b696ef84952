package lucq

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/lucq/internal/escape"
	"github.com/gnoswap-labs/lucq/internal/tokenize"
)

var nopLogger = zap.NewNop()

// Deparse splits q into literal and term tokens. It never fails; malformed
// input yields a best-effort tokenization.
func Deparse(q string) Tokens {
	return deparse(q, nopLogger)
}

func deparse(q string, logger *zap.Logger) Tokens {
	protected := escape.Protect(q)
	logger.Debug("protected query", zap.String("query", q), zap.String("protected", protected))

	raw := tokenize.Split(protected)
	logger.Debug("split query", zap.Strings("raw", raw))

	tokens := classify(raw)
	unescape(tokens)
	logger.Debug("deparsed query", zap.Int("tokens", len(tokens)))
	return tokens
}

// unescape restores the sentinels in the fields and values of term tokens.
// Literal tokens never contain sentinels and are left alone.
func unescape(tokens Tokens) {
	for i := range tokens {
		if !tokens[i].IsTerm() {
			continue
		}
		tokens[i].Field = escape.Restore(tokens[i].Field)
		tokens[i].Value = escape.Restore(tokens[i].Value)
	}
}

// Assemble renders tokens as a query string. Literals are written
// verbatim, qualified terms as "field : term" and global terms as the term
// alone, all separated by single spaces. Values are not escaped.
func Assemble(tokens Tokens) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.HasField() {
			parts = append(parts, t.Field+" : "+t.Value)
			continue
		}
		parts = append(parts, t.Value)
	}
	return strings.Join(parts, " ")
}
