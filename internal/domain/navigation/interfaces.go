package navigation

import "context"

// Repository persists navigation sessions.
type Repository interface {
	Get(ctx context.Context, browserID string) (*Session, error)
	// Update hands fn the stored session (nil when none exists) and saves the
	// session fn returns within one transaction. When fn returns a nil session
	// nothing is written and the stored session is returned.
	Update(ctx context.Context, browserID string, fn func(current *Session) (*Session, error)) (*Session, error)
}
