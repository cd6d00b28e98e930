package mocks

import (
	"context"

	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/navigation"
	"github.com/stretchr/testify/mock"
)

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Create(ctx context.Context, browserID string, item *activity.Item) error {
	args := m.Called(ctx, browserID, item)
	return args.Error(0)
}

func (m *ActivityRepository) Get(ctx context.Context, browserID, id string) (*activity.Item, error) {
	args := m.Called(ctx, browserID, id)
	if item, ok := args.Get(0).(*activity.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) Complete(ctx context.Context, browserID string, item *activity.Item) error {
	args := m.Called(ctx, browserID, item)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, browserID string, opts activity.ListActivityOptions) ([]activity.Item, error) {
	args := m.Called(ctx, browserID, opts)
	if list, ok := args.Get(0).([]activity.Item); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// NavigationRepository is a mock for navigation.Repository.
type NavigationRepository struct {
	mock.Mock
}

func (m *NavigationRepository) Get(ctx context.Context, browserID string) (*navigation.Session, error) {
	args := m.Called(ctx, browserID)
	if sess, ok := args.Get(0).(*navigation.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update runs fn against the session configured with Return, or nil.
func (m *NavigationRepository) Update(ctx context.Context, browserID string, fn func(*navigation.Session) (*navigation.Session, error)) (*navigation.Session, error) {
	args := m.Called(ctx, browserID)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	current, _ := args.Get(0).(*navigation.Session)
	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return current, nil
	}
	return next, nil
}

// KVRepository is a mock for edit.Repository.
type KVRepository struct {
	mock.Mock
}

func (m *KVRepository) Get(ctx context.Context, browserID, key string) (string, error) {
	args := m.Called(ctx, browserID, key)
	return args.String(0), args.Error(1)
}

func (m *KVRepository) Put(ctx context.Context, browserID, key, value string) error {
	args := m.Called(ctx, browserID, key, value)
	return args.Error(0)
}

func (m *KVRepository) MergeField(ctx context.Context, browserID, key, field, value string) error {
	args := m.Called(ctx, browserID, key, field, value)
	return args.Error(0)
}
