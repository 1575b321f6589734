package models

import "encoding/json"

// CacheEntry is the on-disk form of a TTL cache record.
// ExpiresAt is in Unix seconds; an entry is logically absent once
// now >= ExpiresAt.
type CacheEntry struct {
	ExpiresAt int64           `json:"expires_at"`
	Data      json.RawMessage `json:"data"`
}
