package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Service exposes read-only access to the account dataset.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService creates a new account service.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Dataset returns the full dataset.
func (s *Service) Dataset(ctx context.Context) (Dataset, error) {
	data, err := s.provider.Dataset(ctx)
	if err != nil {
		return Dataset{}, fmt.Errorf("loading dataset: %w", err)
	}
	return data, nil
}

// List returns account summaries in dataset order.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	data, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(data.Accounts))
	for _, a := range data.Accounts {
		out = append(out, Summary{
			ID:               a.ID,
			Name:             a.Name,
			Industry:         a.Industry,
			Agent:            a.Agent,
			Score:            a.Score,
			OpportunityCount: len(a.Opportunities),
		})
	}
	return out, nil
}

// Get returns the account with the given ID.
func (s *Service) Get(ctx context.Context, id string) (*Account, error) {
	data, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	for i := range data.Accounts {
		if data.Accounts[i].ID == id {
			acct := data.Accounts[i]
			return &acct, nil
		}
	}
	return nil, ErrAccountNotFound
}

// Validate checks identifier uniqueness: account IDs across the dataset and
// opportunity IDs within their account.
func Validate(data Dataset) error {
	seen := make(map[string]struct{}, len(data.Accounts))
	for _, a := range data.Accounts {
		if strings.TrimSpace(a.ID) == "" {
			return fmt.Errorf("%w: account %q has no id", ErrInvalidDataset, a.Name)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: duplicate account id %q", ErrInvalidDataset, a.ID)
		}
		seen[a.ID] = struct{}{}

		opps := make(map[string]struct{}, len(a.Opportunities))
		for _, o := range a.Opportunities {
			if strings.TrimSpace(o.ID) == "" {
				return fmt.Errorf("%w: opportunity %q in %s has no id", ErrInvalidDataset, o.Name, a.ID)
			}
			if _, dup := opps[o.ID]; dup {
				return fmt.Errorf("%w: duplicate opportunity id %q in %s", ErrInvalidDataset, o.ID, a.ID)
			}
			opps[o.ID] = struct{}{}
		}
	}
	return nil
}
