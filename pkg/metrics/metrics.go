// Package metrics provides the centralized Prometheus registry reference for
// go-batchkit. All metrics are defined in their respective packages (batch,
// pagination, cache) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by go-batchkit.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Scheduler Metrics (pkg/batch):
//   - batchkit_chunks_processed_total (Counter): Chunks processed successfully
//   - batchkit_waves_total (Counter): Completed scheduler waves
//   - batchkit_wave_duration_seconds (Histogram): Wall-clock wave duration
//   - batchkit_chunk_failures_total (Counter): Waves aborted by a process error
//
// Pagination Metrics (pkg/pagination):
//   - batchkit_pages_fetched_total (Counter): Pages fetched successfully
//   - batchkit_page_fetch_duration_seconds (Histogram): Single page read duration
//   - batchkit_fetch_failures_total (Counter): Page reads that returned an error
//
// Cache Metrics (pkg/cache):
//   - batchkit_cache_hits_total{layer="redis"} (Counter): Page cache hits by layer
//   - batchkit_cache_misses_total (Counter): Page cache misses
//   - batchkit_cache_size_bytes{layer="redis"} (Gauge): Bytes written to the cache
//   - batchkit_cache_errors_total{operation} (Counter): Cache operation errors
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(batchkit_cache_hits_total[5m])) /
//   (sum(rate(batchkit_cache_hits_total[5m])) + sum(rate(batchkit_cache_misses_total[5m])))
//
//   # P95 Page Fetch Latency
//   histogram_quantile(0.95, rate(batchkit_page_fetch_duration_seconds_bucket[5m]))
//
//   # Failure Rate
//   rate(batchkit_fetch_failures_total[5m])
