package cache

import (
	"encoding/json"
	"time"
)

// Entry represents one cached page.
type Entry struct {
	// Data is the JSON-encoded page content.
	Data json.RawMessage `json:"data"`

	// Records is the number of records on the page.
	Records int `json:"records"`

	// CachedAt is when the page was stored.
	CachedAt time.Time `json:"cached_at"`
}
