package batch

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Common errors returned by the scheduler.
var (
	// ErrInvalidChunkSize is returned when chunkSize < 1.
	ErrInvalidChunkSize = errors.New("chunk size must be >= 1")

	// ErrInvalidConcurrency is returned when maxConcurrency < 1.
	ErrInvalidConcurrency = errors.New("max concurrency must be >= 1")
)

// ProcessFunc processes a single chunk and returns one result.
type ProcessFunc[T, R any] func(ctx context.Context, chunk []T) (R, error)

// Number constrains the value types ProcessChunksSum can aggregate.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// ProcessChunks partitions items into chunks of chunkSize and runs process
// over them in waves of at most maxConcurrency concurrent operations. A wave
// fully settles before the next wave starts.
//
// Results are returned in chunk order regardless of completion order. On the
// first process error the whole call fails with that error: results from
// prior waves are discarded and in-flight siblings of the failed operation
// run to completion but their results are ignored. No cancellation or retry
// is performed; callers needing either build it into process.
//
// chunkSize and maxConcurrency must both be >= 1; otherwise the call fails
// before process is invoked.
func ProcessChunks[T, R any](ctx context.Context, items []T, chunkSize, maxConcurrency int, process ProcessFunc[T, R]) ([]R, error) {
	if chunkSize < 1 {
		return nil, ErrInvalidChunkSize
	}
	if maxConcurrency < 1 {
		return nil, ErrInvalidConcurrency
	}

	chunks := Chunk(items, chunkSize)
	if len(chunks) == 0 {
		return nil, nil
	}

	start := time.Now()
	results := make([]R, len(chunks))

	for waveStart := 0; waveStart < len(chunks); waveStart += maxConcurrency {
		waveEnd := waveStart + maxConcurrency
		if waveEnd > len(chunks) {
			waveEnd = len(chunks)
		}

		waveStartTime := time.Now()
		var g errgroup.Group
		for i := waveStart; i < waveEnd; i++ {
			i := i
			g.Go(func() error {
				r, err := process(ctx, chunks[i])
				if err != nil {
					return err
				}
				results[i] = r
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			chunkFailures.Inc()
			log.Debug().
				Err(err).
				Int("wave_start", waveStart).
				Int("total_chunks", len(chunks)).
				Msg("Chunk wave failed")
			return nil, err
		}

		wavesTotal.Inc()
		chunksProcessed.Add(float64(waveEnd - waveStart))
		waveDuration.Observe(time.Since(waveStartTime).Seconds())
	}

	log.Debug().
		Int("chunks", len(chunks)).
		Int("max_concurrency", maxConcurrency).
		Dur("duration", time.Since(start)).
		Msg("Chunk processing complete")

	return results, nil
}

// ProcessChunksSum runs the same wave scheduling as ProcessChunks but sums
// the per-chunk numeric results into a single total. Summation order is
// irrelevant (addition is commutative). An empty input yields the zero value.
func ProcessChunksSum[T any, N Number](ctx context.Context, items []T, chunkSize, maxConcurrency int, process ProcessFunc[T, N]) (N, error) {
	var total N

	partials, err := ProcessChunks(ctx, items, chunkSize, maxConcurrency, process)
	if err != nil {
		return total, err
	}

	for _, p := range partials {
		total += p
	}

	return total, nil
}
