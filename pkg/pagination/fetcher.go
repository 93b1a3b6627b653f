package pagination

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// PageReader reads a single page of records starting at offset. The reader
// must return at most limit records; it is the only place I/O happens, so
// timeouts, retries and cancellation belong inside it.
type PageReader[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// ProgressFunc receives progress updates during a fetch. page is the 1-based
// number of the page that just completed, totalPages the size of the plan,
// and recordsProcessed the cumulative record count across all completed
// pages. Invocation order within a wave follows completion order, not page
// order; the cumulative count includes every completed page exactly once.
type ProgressFunc func(page, totalPages, recordsProcessed int)

// Config holds fetcher configuration.
type Config struct {
	// MaxConcurrency is the maximum number of page reads in flight at once.
	// Reads run in waves: a wave of MaxConcurrency pages fully settles
	// before the next wave starts.
	MaxConcurrency int
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: 10,
	}
}

// Fetcher replays a paginated dataset through a PageReader.
type Fetcher[T any] struct {
	read   PageReader[T]
	config Config
}

// NewFetcher creates a new fetcher. A zero MaxConcurrency falls back to the
// default; a negative one is rejected by the fetch methods.
func NewFetcher[T any](read PageReader[T], config Config) *Fetcher[T] {
	if read == nil {
		panic("page reader cannot be nil")
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = DefaultConfig().MaxConcurrency
	}

	return &Fetcher[T]{
		read:   read,
		config: config,
	}
}

// FetchAll reads every page of a dataset of totalCount records, pageSize at
// a time, and returns all records flattened in page order.
//
// Pages are fetched in waves of MaxConcurrency. The first reader error fails
// the whole call with that error and no partial result; in-flight sibling
// reads run to completion but their results are discarded. A totalCount of 0
// returns an empty result without invoking the reader.
func (f *Fetcher[T]) FetchAll(ctx context.Context, totalCount, pageSize int) ([]T, error) {
	return f.fetchAll(ctx, totalCount, pageSize, nil)
}

// FetchAllWithProgress behaves exactly like FetchAll and additionally invokes
// onProgress after each page read completes. A nil onProgress is equivalent
// to FetchAll.
func (f *Fetcher[T]) FetchAllWithProgress(ctx context.Context, totalCount, pageSize int, onProgress ProgressFunc) ([]T, error) {
	return f.fetchAll(ctx, totalCount, pageSize, onProgress)
}

func (f *Fetcher[T]) fetchAll(ctx context.Context, totalCount, pageSize int, onProgress ProgressFunc) ([]T, error) {
	if f.config.MaxConcurrency < 1 {
		return nil, ErrInvalidConcurrency
	}

	pages, err := Plan(totalCount, pageSize)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return []T{}, nil
	}

	start := time.Now()
	log.Debug().
		Int("total_count", totalCount).
		Int("total_pages", len(pages)).
		Int("max_concurrency", f.config.MaxConcurrency).
		Msg("Starting parallel page fetch")

	pageResults := make([][]T, len(pages))

	var mu sync.Mutex
	recordsProcessed := 0
	fetchedPages := 0

	for waveStart := 0; waveStart < len(pages); waveStart += f.config.MaxConcurrency {
		waveEnd := waveStart + f.config.MaxConcurrency
		if waveEnd > len(pages) {
			waveEnd = len(pages)
		}

		var g errgroup.Group
		for i := waveStart; i < waveEnd; i++ {
			i := i
			g.Go(func() error {
				page := pages[i]

				readStart := time.Now()
				records, err := f.read(ctx, page.Offset, page.Limit)
				if err != nil {
					fetchFailures.Inc()
					return fmt.Errorf("fetch page %d (offset %d, limit %d): %w",
						page.Number, page.Offset, page.Limit, err)
				}

				pagesFetched.Inc()
				pageFetchDuration.Observe(time.Since(readStart).Seconds())
				pageResults[i] = records

				mu.Lock()
				recordsProcessed += len(records)
				fetchedPages++
				done, total := fetchedPages, recordsProcessed
				if onProgress != nil {
					onProgress(page.Number, len(pages), recordsProcessed)
				}
				mu.Unlock()

				// Progress logging every 50 pages
				if done%50 == 0 {
					log.Info().
						Int("fetched", done).
						Int("total", len(pages)).
						Int("records", total).
						Msg("Fetch progress")
				}

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	records := make([]T, 0, recordsProcessed)
	for _, page := range pageResults {
		records = append(records, page...)
	}

	log.Debug().
		Int("pages", len(pages)).
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Fetch complete")

	return records, nil
}
