// Package cache provides an optional Redis-backed read-through cache for
// paginated reads.
//
// A page is identified by its dataset name plus offset and limit, so
// replaying the same pagination plan hits Redis instead of the backend.
// Cache failures never fail a read: the wrapper logs the error and falls
// back to the underlying PageReader.
//
// Example usage:
//
//	store := cache.NewStore(redisClient)
//	cached := cache.ReadThrough(store, "orders", 5*time.Minute, readPage)
//	fetcher := pagination.NewFetcher(cached, pagination.DefaultConfig())
//
// The cache stores pages as JSON with a per-entry TTL enforced by Redis.
package cache
