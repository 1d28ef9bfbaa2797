package repository

import "time"

// CacheRepository stores computed results keyed by content hash.
// A ttl of 0 means the entry never expires.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
