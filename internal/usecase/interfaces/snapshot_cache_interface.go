package interfaces

import (
	"context"
	"time"
)

// ISnapshotCache is an externally-owned short-TTL cache for serialized
// aggregate results. The analytics engine itself is cache-agnostic; the
// usecase layer decides what to cache and for how long. Implementations must
// treat a miss as (nil, false, nil), reserving errors for transport failures.
type ISnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
