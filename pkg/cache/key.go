package cache

import (
	"fmt"
	"strings"
)

// Key identifies a cached page of a named dataset.
type Key struct {
	// Dataset is the caller-chosen name of the paginated data source.
	Dataset string

	// Offset is the index of the first record on the page.
	Offset int

	// Limit is the page length.
	Limit int
}

// String generates a deterministic cache key string.
// Format: batchkit:<dataset>:off=<offset>:lim=<limit>
//
// Example:
//
//	batchkit:orders:off=300:lim=100
func (k Key) String() string {
	dataset := strings.Trim(k.Dataset, ":")
	return fmt.Sprintf("batchkit:%s:off=%d:lim=%d", dataset, k.Offset, k.Limit)
}
