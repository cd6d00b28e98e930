// Package edit persists inline text edits and display preferences per browser.
package edit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/wirecrm/internal/repository"
)

// Service loads and saves inline edits.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new edit service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Load returns the element ID → text map for a browser. Missing or corrupt
// stored data yields an empty map.
func (s *Service) Load(ctx context.Context, browserID string) (map[string]string, error) {
	if strings.TrimSpace(browserID) == "" {
		return nil, ErrInvalidInput
	}
	raw, err := s.repo.Get(ctx, browserID, EditsKey)
	if errors.Is(err, repository.ErrNotFound) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading edits: %w", err)
	}
	edits := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &edits); err != nil {
		s.logger.Warn("discarding unreadable edits", "browser_id", browserID, "error", err)
		return map[string]string{}, nil
	}
	if edits == nil {
		edits = map[string]string{}
	}
	return edits, nil
}

// Save merges one edit into the stored map. Concurrent saves for different
// elements all survive.
func (s *Service) Save(ctx context.Context, browserID, elementID, text string) error {
	elementID = strings.TrimSpace(elementID)
	if elementID == "" || strings.TrimSpace(browserID) == "" {
		return ErrInvalidInput
	}
	if err := s.repo.MergeField(ctx, browserID, EditsKey, elementID, text); err != nil {
		return fmt.Errorf("saving edits: %w", err)
	}
	return nil
}

// Theme returns the saved theme, or "" when none is set or the value is unknown.
func (s *Service) Theme(ctx context.Context, browserID string) (string, error) {
	raw, err := s.repo.Get(ctx, browserID, ThemeKey)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading theme: %w", err)
	}
	if raw == ThemeDark || raw == ThemeLight {
		return raw, nil
	}
	return "", nil
}

// SetTheme saves the theme preference.
func (s *Service) SetTheme(ctx context.Context, browserID, theme string) error {
	if strings.TrimSpace(browserID) == "" {
		return ErrInvalidInput
	}
	if theme != ThemeDark && theme != ThemeLight {
		return ErrInvalidTheme
	}
	if err := s.repo.Put(ctx, browserID, ThemeKey, theme); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}
