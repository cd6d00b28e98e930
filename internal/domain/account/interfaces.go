package account

import "context"

// Provider supplies the dataset. Implementations must return the same
// read-only data on every call.
type Provider interface {
	Dataset(ctx context.Context) (Dataset, error)
}
