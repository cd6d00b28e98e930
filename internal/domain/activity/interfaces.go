package activity

import "context"

// Repository provides persistence operations for activity items.
type Repository interface {
	Create(ctx context.Context, browserID string, item *Item) error
	Get(ctx context.Context, browserID, id string) (*Item, error)
	Complete(ctx context.Context, browserID string, item *Item) error
	List(ctx context.Context, browserID string, opts ListActivityOptions) ([]Item, error)
}
