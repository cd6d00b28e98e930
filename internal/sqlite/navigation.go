package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rpggio/wirecrm/internal/domain/navigation"
	"github.com/rpggio/wirecrm/internal/repository"
)

var _ navigation.Repository = (*NavigationRepository)(nil)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// NavigationRepository implements navigation.Repository for SQLite
type NavigationRepository struct {
	db *DB
}

// NewNavigationRepository creates a new NavigationRepository
func NewNavigationRepository(db *DB) *NavigationRepository {
	return &NavigationRepository{db: db}
}

// Get retrieves the navigation session of a browser
func (r *NavigationRepository) Get(ctx context.Context, browserID string) (*navigation.Session, error) {
	return getSession(ctx, r.db, browserID)
}

// Save upserts the navigation session
func (r *NavigationRepository) Save(ctx context.Context, sess *navigation.Session) error {
	return saveSession(ctx, r.db, sess)
}

// Update reads, changes and writes a session inside one transaction
func (r *NavigationRepository) Update(ctx context.Context, browserID string, fn func(*navigation.Session) (*navigation.Session, error)) (*navigation.Session, error) {
	if browserID == "" {
		return nil, repository.ErrInvalidInput
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := getSession(ctx, tx, browserID)
	if errors.Is(err, repository.ErrNotFound) {
		current = nil
	} else if err != nil {
		return nil, err
	}

	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return current, nil
	}
	if next.BrowserID != browserID {
		return nil, repository.ErrInvalidInput
	}
	if err := saveSession(ctx, tx, next); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return next, nil
}

func getSession(ctx context.Context, q querier, browserID string) (*navigation.Session, error) {
	query := `
		SELECT browser_id, current_screen, history, account_id, updated_at
		FROM nav_sessions
		WHERE browser_id = ?
	`

	var sess navigation.Session
	var history string
	err := q.QueryRowContext(ctx, query, browserID).Scan(
		&sess.BrowserID,
		&sess.Current,
		&history,
		&sess.AccountID,
		&sess.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get navigation session: %w", err)
	}

	if err := json.Unmarshal([]byte(history), &sess.History); err != nil {
		return nil, fmt.Errorf("failed to decode navigation history: %w", err)
	}
	if sess.History == nil {
		sess.History = []string{}
	}
	return &sess, nil
}

func saveSession(ctx context.Context, q querier, sess *navigation.Session) error {
	if sess == nil || sess.BrowserID == "" {
		return repository.ErrInvalidInput
	}
	history := sess.History
	if history == nil {
		history = []string{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode navigation history: %w", err)
	}

	query := `
		INSERT INTO nav_sessions (browser_id, current_screen, history, account_id, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(browser_id) DO UPDATE SET
			current_screen = excluded.current_screen,
			history = excluded.history,
			account_id = excluded.account_id,
			updated_at = excluded.updated_at
	`

	_, err = q.ExecContext(ctx, query,
		sess.BrowserID,
		sess.Current,
		string(data),
		sess.AccountID,
		sess.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save navigation session: %w", err)
	}
	return nil
}
