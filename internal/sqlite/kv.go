package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/wirecrm/internal/domain/edit"
	"github.com/rpggio/wirecrm/internal/repository"
)

var _ edit.Repository = (*KVRepository)(nil)

// KVRepository stores string values per browser and key
type KVRepository struct {
	db *DB
}

// NewKVRepository creates a new KVRepository
func NewKVRepository(db *DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get returns the value stored under key
func (r *KVRepository) Get(ctx context.Context, browserID, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE browser_id = ? AND key = ?`,
		browserID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get value: %w", err)
	}
	return value, nil
}

// Put replaces the value stored under key
func (r *KVRepository) Put(ctx context.Context, browserID, key, value string) error {
	if browserID == "" || key == "" {
		return repository.ErrInvalidInput
	}
	query := `
		INSERT INTO kv_store (browser_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(browser_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, browserID, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to put value: %w", err)
	}
	return nil
}

// MergeField sets one field of the JSON object stored under key. The read and
// write happen in one statement, so concurrent merges of different fields
// never drop each other.
func (r *KVRepository) MergeField(ctx context.Context, browserID, key, field, value string) error {
	if browserID == "" || key == "" || field == "" {
		return repository.ErrInvalidInput
	}
	query := `
		INSERT INTO kv_store (browser_id, key, value, updated_at)
		VALUES (?, ?, json_object(?, ?), ?)
		ON CONFLICT(browser_id, key) DO UPDATE SET
			value = json_patch(
				CASE
					WHEN json_valid(kv_store.value) = 0 THEN '{}'
					WHEN json_type(kv_store.value) = 'object' THEN kv_store.value
					ELSE '{}'
				END,
				excluded.value),
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, browserID, key, field, value, time.Now()); err != nil {
		return fmt.Errorf("failed to merge value: %w", err)
	}
	return nil
}
