// Package demo provides the static dataset backing the wireframe.
package demo

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/rpggio/wirecrm/internal/domain/account"
	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var embedded []byte

// Provider serves a dataset parsed once at construction.
type Provider struct {
	data account.Dataset
}

// New returns a provider backed by the embedded demo dataset.
func New() (*Provider, error) {
	return Parse(embedded)
}

// Load returns a provider for the YAML file at path. An empty path selects
// the embedded dataset.
func Load(path string) (*Provider, error) {
	if path == "" {
		return New()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dataset.
func Parse(raw []byte) (*Provider, error) {
	var data account.Dataset
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := account.Validate(data); err != nil {
		return nil, err
	}
	if data.Accounts == nil {
		data.Accounts = []account.Account{}
	}
	return &Provider{data: data}, nil
}

// Dataset implements account.Provider.
func (p *Provider) Dataset(context.Context) (account.Dataset, error) {
	return p.data, nil
}
