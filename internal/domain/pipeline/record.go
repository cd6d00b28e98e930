// Package pipeline turns the account dataset into the opportunity table:
// projection, tab/query filtering, grouping and value ordering.
package pipeline

import (
	"strings"

	"github.com/rpggio/wirecrm/internal/domain/account"
)

// Defaults applied to sparse records.
const (
	// ClosingSoonDays is the inclusive upper bound for the closing tab.
	ClosingSoonDays = 30
	// StaleDays is the inclusive lower bound for the stale tab.
	StaleDays = 14
	// WarnDays is the inclusive lower bound for the warn staleness severity.
	WarnDays = 7

	missingClosingDays = 999
	unstagedLabel      = "Unstaged"
)

// Record is an opportunity denormalized with its parent account's fields.
type Record struct {
	ID           string
	Name         string
	Stage        string
	Value        *float64
	Risk         account.Risk
	ClosingDays  *int
	LastActivity string

	AccountID   string
	AccountName string
	Industry    string
	Agent       string
	AccountAR   *int
	LastTouch   *account.LastTouch
	StaleDays   *int
}

// Project flattens accounts into records, preserving account order and then
// opportunity order. The dataset is not modified.
func Project(data account.Dataset) []Record {
	out := make([]Record, 0)
	for _, a := range data.Accounts {
		for _, o := range a.Opportunities {
			out = append(out, Record{
				ID:           o.ID,
				Name:         o.Name,
				Stage:        o.Stage,
				Value:        o.Value,
				Risk:         o.Risk,
				ClosingDays:  o.ClosingDays,
				LastActivity: o.LastActivity,
				AccountID:    a.ID,
				AccountName:  a.Name,
				Industry:     a.Industry,
				Agent:        a.Agent,
				AccountAR:    a.ARCount,
				LastTouch:    a.LastTouch,
				StaleDays:    a.StaleDays,
			})
		}
	}
	return out
}

// Amount returns the monetary value, 0 when missing.
func (r Record) Amount() float64 {
	if r.Value == nil {
		return 0
	}
	return *r.Value
}

// Closing returns days until close, 999 when missing.
func (r Record) Closing() int {
	if r.ClosingDays == nil {
		return missingClosingDays
	}
	return *r.ClosingDays
}

// Staleness returns days since the last meaningful touch, 0 when missing.
func (r Record) Staleness() int {
	if r.StaleDays == nil {
		return 0
	}
	return *r.StaleDays
}

// RiskLevel returns the lower-cased risk.
func (r Record) RiskLevel() account.Risk {
	return account.Risk(strings.ToLower(string(r.Risk)))
}

// AR returns the account's outstanding action item count, 0 when missing.
func (r Record) AR() int {
	if r.AccountAR == nil {
		return 0
	}
	return *r.AccountAR
}

// GroupLabel is the stage group key; empty stages group under "Unstaged".
func (r Record) GroupLabel() string {
	if r.Stage == "" {
		return unstagedLabel
	}
	return r.Stage
}
