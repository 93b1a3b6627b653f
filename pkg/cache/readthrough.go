package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Sternrassler/go-batchkit/pkg/pagination"
)

// ReadThrough wraps read so that pages of the named dataset are served from
// the store when present and cached after a backend read otherwise.
//
// Cache errors never surface to the caller: a failed Get falls back to the
// backend read, a failed Set leaves the page uncached. Only backend read
// errors propagate.
func ReadThrough[T any](store *Store, dataset string, ttl time.Duration, read pagination.PageReader[T]) pagination.PageReader[T] {
	if store == nil {
		panic("cache store cannot be nil")
	}
	if read == nil {
		panic("page reader cannot be nil")
	}

	return func(ctx context.Context, offset, limit int) ([]T, error) {
		key := Key{Dataset: dataset, Offset: offset, Limit: limit}

		entry, err := store.Get(ctx, key)
		if err == nil {
			var records []T
			if err := json.Unmarshal(entry.Data, &records); err == nil {
				log.Debug().
					Str("key", key.String()).
					Int("records", entry.Records).
					Msg("Page cache hit")
				return records, nil
			}
			// Corrupted entry, drop it and re-read.
			_ = store.Delete(ctx, key)
		} else if !errors.Is(err, ErrCacheMiss) {
			log.Warn().
				Err(err).
				Str("key", key.String()).
				Msg("Page cache get failed, falling back to direct read")
		}

		records, err := read(ctx, offset, limit)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(records)
		if err != nil {
			log.Warn().
				Err(err).
				Str("key", key.String()).
				Msg("Page not cacheable, skipping store")
			return records, nil
		}

		if err := store.Set(ctx, key, &Entry{
			Data:     data,
			Records:  len(records),
			CachedAt: time.Now(),
		}, ttl); err != nil {
			log.Warn().
				Err(err).
				Str("key", key.String()).
				Msg("Page cache set failed")
		}

		return records, nil
	}
}
