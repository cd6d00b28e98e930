package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/rpggio/wirecrm/internal/repository"
)

// Service maintains the per-browser screen history.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new navigation service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// State returns the browser's session, starting on the dashboard when none exists.
func (s *Service) State(ctx context.Context, browserID string) (*Session, error) {
	if strings.TrimSpace(browserID) == "" {
		return nil, ErrInvalidInput
	}
	sess, err := s.repo.Get(ctx, browserID)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("getting navigation session: %w", err)
	}
	return newSession(browserID), nil
}

// Navigate shows screenID. With push set, the current screen is pushed onto
// the back stack unless it is the target.
func (s *Service) Navigate(ctx context.Context, browserID, screenID string, push bool) (*Session, error) {
	if _, ok := Lookup(screenID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrScreenNotFound, screenID)
	}
	return s.update(ctx, browserID, func(sess *Session) bool {
		move(sess, screenID, push)
		return true
	})
}

func move(sess *Session, screenID string, push bool) {
	if push && sess.Current != "" && sess.Current != screenID {
		sess.History = append(sess.History, sess.Current)
		if len(sess.History) > maxHistory {
			sess.History = slices.Clone(sess.History[len(sess.History)-maxHistory:])
		}
	}
	sess.Current = screenID
}

// Back returns to the previous screen. With an empty history it is a no-op.
func (s *Service) Back(ctx context.Context, browserID string) (*Session, error) {
	return s.update(ctx, browserID, func(sess *Session) bool {
		if !sess.CanGoBack() {
			return false
		}
		last := len(sess.History) - 1
		sess.Current = sess.History[last]
		sess.History = sess.History[:last]
		return true
	})
}

// OpenAccount selects accountID as the account detail subject and navigates there.
func (s *Service) OpenAccount(ctx context.Context, browserID, accountID string) (*Session, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, ErrInvalidInput
	}
	return s.update(ctx, browserID, func(sess *Session) bool {
		move(sess, AccountDetailScreen, true)
		sess.AccountID = accountID
		return true
	})
}

// update applies change to the stored session in a single repository
// transaction. change reports whether it modified the session.
func (s *Service) update(ctx context.Context, browserID string, change func(*Session) bool) (*Session, error) {
	if strings.TrimSpace(browserID) == "" {
		return nil, ErrInvalidInput
	}
	changed := false
	sess, err := s.repo.Update(ctx, browserID, func(current *Session) (*Session, error) {
		if current == nil {
			current = newSession(browserID)
		}
		if !change(current) {
			return nil, nil
		}
		changed = true
		current.UpdatedAt = time.Now()
		return current, nil
	})
	if err != nil {
		return nil, fmt.Errorf("saving navigation session: %w", err)
	}
	if sess == nil {
		sess = newSession(browserID)
	}
	if changed {
		s.logger.Debug("navigated", "browser_id", browserID, "screen", sess.Current, "depth", len(sess.History))
	}
	return sess, nil
}

func newSession(browserID string) *Session {
	return &Session{BrowserID: browserID, Current: DefaultScreen, History: []string{}}
}

// SelfCheck returns the required screens missing from registered.
func SelfCheck(registered []string) []string {
	var missing []string
	for _, id := range RequiredScreens {
		if !slices.Contains(registered, id) {
			missing = append(missing, id)
		}
	}
	return missing
}
