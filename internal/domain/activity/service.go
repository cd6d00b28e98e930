package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/wirecrm/internal/repository"
)

// Service handles activity modal operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines activity creation inputs.
type CreateRequest struct {
	Type        ActivityType
	Reason      string
	Title       string
	When        string
	Due         string
	MeetingDate string
}

// Create saves a new open item. Missing reason, title and scheduling choices
// take the modal defaults.
func (s *Service) Create(ctx context.Context, browserID string, req CreateRequest) (*Item, error) {
	if strings.TrimSpace(browserID) == "" {
		return nil, ErrInvalidInput
	}
	typ := ParseType(string(req.Type))

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = Reasons[0]
	}
	if !slices.Contains(Reasons, reason) {
		return nil, fmt.Errorf("%w: unknown reason %q", ErrInvalidInput, reason)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = DraftTitle(typ, reason)
	}

	item := &Item{
		ID:        uuid.NewString(),
		BrowserID: browserID,
		Type:      typ,
		List:      ListFor(typ),
		Reason:    reason,
		Title:     title,
		Status:    StatusOpen,
		CreatedAt: time.Now(),
	}
	switch typ {
	case TypeCall:
		item.When = choiceOrDefault(req.When, CallWhenChoices)
	case TypeTask:
		item.Due = choiceOrDefault(req.Due, TaskDueChoices)
	case TypeMeeting:
		item.MeetingDate = strings.TrimSpace(req.MeetingDate)
	}

	if err := s.repo.Create(ctx, browserID, item); err != nil {
		return nil, fmt.Errorf("creating activity: %w", err)
	}
	s.logger.Debug("activity created", "browser_id", browserID, "id", item.ID, "type", item.Type)
	return item, nil
}

// MarkDone records an outcome and removes the item from the open lists. An
// empty outcome selects the first outcome offered for the item's type.
func (s *Service) MarkDone(ctx context.Context, browserID, id, outcome string) (*Item, error) {
	item, err := s.repo.Get(ctx, browserID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("getting activity: %w", err)
	}
	if item.Status == StatusDone {
		return nil, ErrAlreadyDone
	}

	choices := OutcomesFor(item.Type)
	outcome = strings.TrimSpace(outcome)
	if outcome == "" {
		outcome = choices[0]
	}
	if !slices.Contains(choices, outcome) {
		return nil, fmt.Errorf("%w: %q for %s", ErrInvalidOutcome, outcome, item.Type)
	}

	now := time.Now()
	item.Status = StatusDone
	item.Outcome = outcome
	item.CompletedAt = &now
	if err := s.repo.Complete(ctx, browserID, item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("completing activity: %w", err)
	}
	s.logger.Debug("activity done", "browser_id", browserID, "id", item.ID, "outcome", outcome)
	return item, nil
}

// Get fetches one item.
func (s *Service) Get(ctx context.Context, browserID, id string) (*Item, error) {
	item, err := s.repo.Get(ctx, browserID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("getting activity: %w", err)
	}
	return item, nil
}

// ListOpen returns the open items of one dashboard list, newest first.
func (s *Service) ListOpen(ctx context.Context, browserID string, list List) ([]Item, error) {
	status := StatusOpen
	return s.List(ctx, browserID, ListActivityOptions{List: &list, Status: &status})
}

// List returns items matching opts, newest first.
func (s *Service) List(ctx context.Context, browserID string, opts ListActivityOptions) ([]Item, error) {
	items, err := s.repo.List(ctx, browserID, opts)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	return items, nil
}

func choiceOrDefault(value string, choices []string) string {
	value = strings.TrimSpace(value)
	if slices.Contains(choices, value) {
		return value
	}
	return choices[0]
}
