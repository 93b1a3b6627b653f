// Package batch provides wave-based bounded-concurrency processing of chunked data.
//
// Work is partitioned into fixed-size chunks and executed in waves: each wave
// starts at most MaxConcurrency operations together and fully settles before
// the next wave begins. This keeps result ordering trivial (results are placed
// by chunk index, never by completion time) and gives fail-fast semantics
// without a persistent worker pool or semaphore.
//
// Example usage:
//
//	results, err := batch.ProcessChunks(ctx, ids, 100, 10,
//		func(ctx context.Context, chunk []int64) ([]Row, error) {
//			return repo.LoadRows(ctx, chunk)
//		})
//
// The scheduler:
//   - Partitions items into deterministic chunks (last chunk may be shorter)
//   - Runs each wave via a join-all primitive, first error wins
//   - Discards all results on failure (no partial output)
//   - Never retries, times out, or cancels in-flight siblings
package batch
