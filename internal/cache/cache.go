package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching analysis results
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from document text. Identical text yields an
// identical key, so repeated analyses of the same document hit the cache.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "docent:v1:" + hex.EncodeToString(hash[:])
}
