package kvstore

import "context"

// Store is the key-value contract backing durable snapshots.
// Get reports found=false for a missing key; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
