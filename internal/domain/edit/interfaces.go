package edit

import "context"

// Repository is a per-browser key/value store.
type Repository interface {
	Get(ctx context.Context, browserID, key string) (string, error)
	Put(ctx context.Context, browserID, key, value string) error
	// MergeField sets field to value inside the JSON object stored under key
	// as a single write. A missing or non-object value starts from {}.
	MergeField(ctx context.Context, browserID, key, field, value string) error
}
