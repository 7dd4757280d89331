package marketdata

import "context"

// CacheReader reads the externally cached quote for a pair. Satisfied by
// the Redis quote cache.
type CacheReader interface {
	Lookup(ctx context.Context, exchange, symbol string) (Quote, bool)
}

// CachedTable serves quotes from the in-memory table, falling back to a
// shared quote cache on a miss. The fallback matters right after a
// restart, when the table is empty until the feed repopulates it.
type CachedTable struct {
	*Table
	cache CacheReader
}

// NewCachedTable wraps table with a cache fallback.
func NewCachedTable(table *Table, cache CacheReader) *CachedTable {
	return &CachedTable{Table: table, cache: cache}
}

// Quote returns the table's quote, or the cached one when the table has
// no fresh entry for the pair.
func (c *CachedTable) Quote(ctx context.Context, exchange, symbol string) (Quote, bool) {
	if q, ok := c.Table.Quote(ctx, exchange, symbol); ok {
		return q, true
	}
	return c.cache.Lookup(ctx, exchange, symbol)
}
