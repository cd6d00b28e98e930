package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/repository"
)

var _ activity.Repository = (*ActivityRepository)(nil)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = `
	id, browser_id, type, list, reason, title, when_choice, due_choice,
	meeting_date, status, outcome, created_at, completed_at`

// Create inserts a new item. Items are ordered by insertion, newest first.
func (r *ActivityRepository) Create(ctx context.Context, browserID string, item *activity.Item) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO activities (
			id, browser_id, type, list, reason, title, when_choice, due_choice,
			meeting_date, status, outcome, seq, created_at, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM activities), ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		browserID,
		item.Type,
		item.List,
		item.Reason,
		item.Title,
		item.When,
		item.Due,
		item.MeetingDate,
		item.Status,
		item.Outcome,
		item.CreatedAt,
		item.CompletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		if isCheckViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to create activity: %w", err)
	}

	item.BrowserID = browserID
	return nil
}

// Get retrieves one item owned by browserID
func (r *ActivityRepository) Get(ctx context.Context, browserID, id string) (*activity.Item, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ? AND browser_id = ?`

	item, err := scanActivity(r.db.QueryRowContext(ctx, query, id, browserID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return item, nil
}

// Complete stores the status, outcome and completion time of an item
func (r *ActivityRepository) Complete(ctx context.Context, browserID string, item *activity.Item) error {
	query := `
		UPDATE activities
		SET status = ?, outcome = ?, completed_at = ?
		WHERE id = ? AND browser_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Status,
		item.Outcome,
		item.CompletedAt,
		item.ID,
		browserID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete activity: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to complete activity: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List returns items matching the given filters, newest first
func (r *ActivityRepository) List(ctx context.Context, browserID string, opts activity.ListActivityOptions) ([]activity.Item, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE browser_id = ?`

	args := []any{browserID}
	conditions := []string{}

	if opts.List != nil {
		conditions = append(conditions, "list = ?")
		args = append(args, *opts.List)
	}
	if opts.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *opts.Status)
	}
	if opts.Type != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, *opts.Type)
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY seq DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		if opts.Limit <= 0 {
			query += " LIMIT -1"
		}
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	items := []activity.Item{}
	for rows.Next() {
		item, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*activity.Item, error) {
	var item activity.Item
	var completedAt sql.NullTime
	if err := row.Scan(
		&item.ID,
		&item.BrowserID,
		&item.Type,
		&item.List,
		&item.Reason,
		&item.Title,
		&item.When,
		&item.Due,
		&item.MeetingDate,
		&item.Status,
		&item.Outcome,
		&item.CreatedAt,
		&completedAt,
	); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		item.CompletedAt = &completedAt.Time
	}
	return &item, nil
}
