package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Philanthropists/parseint/pkg/intparse"
)

type inMemoryCache interface {
	SetDefault(k string, v any)
	Get(k string) (any, bool)
	ItemCount() int
}

// Parser memoizes intparse.ParseInt outcomes by input. The zero value is
// ready to use.
type Parser struct {
	ExpirationTime  time.Duration
	CleanupInterval time.Duration

	once  sync.Once
	cache inMemoryCache
}

func (p *Parser) init() {
	p.once.Do(func() {
		const (
			defaultExpirationTime  = 5 * time.Minute
			defaultCleanupInterval = 1 * time.Minute
		)

		expTime := defaultExpirationTime
		if p.ExpirationTime != 0 {
			expTime = p.ExpirationTime
		}

		cleanupInt := defaultCleanupInterval
		if p.CleanupInterval != 0 {
			cleanupInt = p.CleanupInterval
		}

		p.cache = cache.New(expTime, cleanupInt)
	})
}

func (p *Parser) ParseInt(input string) intparse.Outcome {
	p.init()
	if v, found := p.cache.Get(input); found {
		return v.(intparse.Outcome)
	}

	o := intparse.ParseInt(input)
	p.cache.SetDefault(input, o)

	return o
}

// Len returns the number of cached outcomes, including expired ones not yet
// cleaned up.
func (p *Parser) Len() int {
	p.init()
	return p.cache.ItemCount()
}
