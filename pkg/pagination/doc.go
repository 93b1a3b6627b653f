// Package pagination provides parallel replay of offset/limit paginated reads.
//
// A paginated dataset is described by a total record count and a page size.
// The fetcher plans the full set of pages up front (the last page is clipped,
// never over-read), fetches them in waves of at most MaxConcurrency
// concurrent reads, and flattens the results in page order.
//
// Example usage:
//
//	fetcher := pagination.NewFetcher(readPage, pagination.DefaultConfig())
//	records, err := fetcher.FetchAll(ctx, totalCount, 100)
//
// The fetcher:
//   - Computes ceil(totalCount/pageSize) pages with exact offset/limit bounds
//   - Runs each wave via a join-all primitive, first error wins
//   - Flattens page results in page order, never completion order
//   - Optionally reports per-page progress (page number, total pages,
//     cumulative records)
//
// The package also defines the validated Request descriptor and the
// Response envelope used by callers exposing paginated list APIs.
package pagination
