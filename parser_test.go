package lucq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const exampleQuery = `author: Meier tags:(water OR fire) "open access"`

func TestNewParserDefaults(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)
	assert.NotNil(t, p.logger)
	assert.False(t, p.strict)
	assert.Nil(t, p.cache)

	tokens, err := p.Deparse(exampleQuery)
	require.NoError(t, err)
	assert.Equal(t, Deparse(exampleQuery), tokens)
	assert.Equal(t, Assemble(tokens), p.Assemble(tokens))
}

func TestParserNilLogger(t *testing.T) {
	p, err := NewParser(WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, p.logger)

	_, err = p.Deparse("a b")
	assert.NoError(t, err)
}

func TestParserStrict(t *testing.T) {
	p, err := NewParser(WithStrict(true))
	require.NoError(t, err)

	tokens, err := p.Deparse("(a OR b")
	assert.ErrorIs(t, err, ErrUnbalancedParens)
	assert.Equal(t, Deparse("(a OR b"), tokens)

	tokens, err = p.Deparse(exampleQuery)
	assert.NoError(t, err)
	assert.Len(t, tokens, 3)
}

func TestParserLenientIgnoresProblems(t *testing.T) {
	p, err := NewParser(WithStrict(false))
	require.NoError(t, err)

	tokens, err := p.Deparse(`"open access`)
	assert.NoError(t, err)
	assert.Len(t, tokens, 2)
}

func TestParserCache(t *testing.T) {
	p, err := NewParser(WithCache(2))
	require.NoError(t, err)
	require.NotNil(t, p.cache)

	first, err := p.Deparse(exampleQuery)
	require.NoError(t, err)
	assert.Equal(t, 1, p.cache.Len())

	// the caller owns the returned tokens
	first[0].Value = "changed"

	second, err := p.Deparse(exampleQuery)
	require.NoError(t, err)
	assert.Equal(t, "Meier", second[0].Value)
	assert.Equal(t, 1, p.cache.Len())

	second[1].Field = "other"
	third, err := p.Deparse(exampleQuery)
	require.NoError(t, err)
	assert.Equal(t, "tags", third[1].Field)

	for _, q := range []string{"a", "b", "c"} {
		_, err := p.Deparse(q)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, p.cache.Len())
	assert.False(t, p.cache.Contains(exampleQuery))
}

func TestParserCacheDisabled(t *testing.T) {
	for _, size := range []int{0, -1} {
		p, err := NewParser(WithCache(size))
		require.NoError(t, err)
		assert.Nil(t, p.cache)
	}
}

func TestParserStrictWithCache(t *testing.T) {
	p, err := NewParser(WithStrict(true), WithCache(4))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := p.Deparse(`"open`)
		assert.ErrorIs(t, err, ErrUnterminatedQuote)
	}
}

func TestParserLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p, err := NewParser(WithLogger(zap.New(core)), WithStrict(true), WithCache(1))
	require.NoError(t, err)

	_, err = p.Deparse(`tags:(water OR fire) "open`)
	require.Error(t, err)

	assert.Equal(t, 1, logs.FilterMessage("query failed validation").Len())
	assert.Equal(t, 1, logs.FilterMessage("protected query").Len())
	assert.Equal(t, 1, logs.FilterMessage("split query").Len())

	deparsed := logs.FilterMessage("deparsed query").All()
	require.Len(t, deparsed, 1)
	assert.Equal(t, int64(2), deparsed[0].ContextMap()["tokens"])

	_, _ = p.Deparse(`tags:(water OR fire) "open`)
	assert.Equal(t, 1, logs.FilterMessage("token cache hit").Len())
	assert.Equal(t, 1, logs.FilterMessage("protected query").Len())

	p.Assemble(Tokens{NewGlobalTerm("x")})
	assert.Equal(t, 1, logs.FilterMessage("assembled query").Len())
}

func TestParserConcurrent(t *testing.T) {
	p, err := NewParser(WithCache(8))
	require.NoError(t, err)
	want := Deparse(exampleQuery)

	queries := []string{exampleQuery, "a OR b", "c:d", exampleQuery}
	for _, q := range queries {
		q := q
		t.Run(q, func(t *testing.T) {
			t.Parallel()
			for i := 0; i < 20; i++ {
				tokens, err := p.Deparse(q)
				require.NoError(t, err)
				if q == exampleQuery {
					assert.Equal(t, want, tokens)
				}
				if len(tokens) > 0 {
					tokens[0].Value = "scribble"
				}
			}
		})
	}
}
