package coordinate

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"harmonia/internal/tokens"
	"harmonia/internal/vocabulary"
)

const defaultCacheSize = 4096

// Embedder turns token bags into coordinates using an immutable vocabulary
// table, memoizing results in a content-addressed LRU cache. The cache key is
// the bag's canonical encoding and carries no file identity, so one embedder
// may be shared across concurrent analyses; entries are never invalidated
// because the table never changes after construction.
type Embedder struct {
	table *vocabulary.Table
	cache *lru.Cache[string, Coordinate]
}

// NewEmbedder creates an embedder over table.
func NewEmbedder(table *vocabulary.Table) *Embedder {
	// lru.New only errors on a non-positive size.
	cache, err := lru.New[string, Coordinate](defaultCacheSize)
	if err != nil {
		panic(err)
	}
	return &Embedder{table: table, cache: cache}
}

// Embed maps a token bag to a coordinate: per-category totals weighted by
// token count, normalized to sum 1. Tokens absent from the vocabulary are
// silently ignored (a documented precision limit, not an error). If nothing
// matches, the Zero sentinel is returned.
func (e *Embedder) Embed(bag tokens.Bag) Coordinate {
	key := bag.Key()
	if key != "" {
		if cached, ok := e.cache.Get(key); ok {
			return cached
		}
	}

	coord := embed(bag, e.table)

	if key != "" {
		e.cache.Add(key, coord)
	}
	return coord
}

// CacheLen returns the number of memoized bags, for diagnostics.
func (e *Embedder) CacheLen() int {
	return e.cache.Len()
}

func embed(bag tokens.Bag, table *vocabulary.Table) Coordinate {
	var totals Coordinate
	grand := 0.0

	for token, count := range bag {
		if count <= 0 {
			continue
		}
		category, ok := table.Lookup(token)
		if !ok {
			continue
		}
		totals[category] += float64(count)
		grand += float64(count)
	}

	if grand == 0 {
		return Zero
	}

	for i := range totals {
		totals[i] /= grand
	}
	return totals
}
