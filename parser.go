package lucq

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Parser deparses queries with optional logging, validation and caching.
// A Parser is safe for concurrent use.
type Parser struct {
	logger    *zap.Logger
	strict    bool
	cacheSize int
	cache     *lru.Cache[string, Tokens]
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger stage outputs are written to at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithStrict makes Deparse validate every query and return the validation
// error next to the tokens.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// WithCache keeps the tokens of the size most recently deparsed queries.
// A size of zero or less disables the cache.
func WithCache(size int) Option {
	return func(p *Parser) {
		p.cacheSize = size
	}
}

func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = nopLogger
	}
	if p.cacheSize > 0 {
		cache, err := lru.New[string, Tokens](p.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create token cache: %w", err)
		}
		p.cache = cache
	}
	return p, nil
}

// Deparse splits q into tokens like the package level Deparse. The tokens
// are always returned. In strict mode the error reports what Validate found;
// otherwise it is nil.
//
// Cached tokens are copied on the way in and out, so the caller owns the
// returned slice.
func (p *Parser) Deparse(q string) (Tokens, error) {
	var err error
	if p.strict {
		if err = Validate(q); err != nil {
			p.logger.Warn("query failed validation", zap.String("query", q), zap.Error(err))
		}
	}

	if p.cache != nil {
		if tokens, ok := p.cache.Get(q); ok {
			p.logger.Debug("token cache hit", zap.String("query", q))
			return tokens.Clone(), err
		}
	}

	tokens := deparse(q, p.logger)
	if p.cache != nil {
		p.cache.Add(q, tokens.Clone())
	}
	return tokens, err
}

// Assemble renders tokens as a query string. See the package level
// Assemble.
func (p *Parser) Assemble(tokens Tokens) string {
	q := Assemble(tokens)
	p.logger.Debug("assembled query", zap.Int("tokens", len(tokens)), zap.String("query", q))
	return q
}
