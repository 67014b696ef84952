package lucq

// operators are the raw tokens that stay literal. Matching is exact and
// case sensitive.
var operators = map[string]struct{}{
	"AND": {},
	"OR":  {},
	"NOT": {},
	"!":   {},
	"&&":  {},
	"||":  {},
	"(":   {},
	")":   {},
}

// IsOperator reports whether s is an operator or parenthesis token.
func IsOperator(s string) bool {
	_, ok := operators[s]
	return ok
}

// classify turns raw tokens into literal and term tokens, keeping order.
func classify(raw []string) Tokens {
	tokens := make(Tokens, 0, len(raw))
	for _, r := range raw {
		if IsOperator(r) {
			tokens = append(tokens, NewLiteral(r))
			continue
		}
		tokens = append(tokens, splitTerm(r))
	}
	return tokens
}

// splitTerm splits a term token on its first unescaped colon. Any later
// colon stays in the term. A token that starts with the colon has no field
// name, so it is kept whole as a global term.
func splitTerm(raw string) Token {
	i := fieldSeparator(raw)
	if i <= 0 {
		return NewGlobalTerm(raw)
	}
	return NewTerm(raw[:i], raw[i+1:])
}

// fieldSeparator returns the index of the first colon in s that is not
// preceded by a backslash, or -1.
func fieldSeparator(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}
	return -1
}
