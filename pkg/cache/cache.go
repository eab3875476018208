// Package cache provides byte caching for rendered grid PDFs.
//
// The HTTP server caches render results keyed by a hash of the
// canonical option encoding, so repeated requests for the same grid
// do not re-render. Backends:
//   - memory: in-process map, the default for a single instance
//   - redis: shared cache for multi-instance deployments
//   - file: directory-backed cache surviving restarts
//   - null: disables caching
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
