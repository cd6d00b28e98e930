package pipeline

import (
	"strings"

	"github.com/rpggio/wirecrm/internal/domain/account"
)

// Tab selects a predefined slice of the pipeline.
type Tab string

const (
	TabAll     Tab = "all"
	TabClosing Tab = "closing"
	TabRisk    Tab = "risk"
	TabStale   Tab = "stale"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabAll, TabClosing, TabRisk, TabStale}

// ParseTab maps a raw tab value to a Tab. Unknown values select TabAll.
func ParseTab(raw string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(raw))) {
	case TabClosing:
		return TabClosing
	case TabRisk:
		return TabRisk
	case TabStale:
		return TabStale
	default:
		return TabAll
	}
}

// Label is the human-readable tab caption.
func (t Tab) Label() string {
	switch t {
	case TabClosing:
		return "Closing Soon"
	case TabRisk:
		return "At Risk"
	case TabStale:
		return "Stale"
	default:
		return "All"
	}
}

// MatchesTab reports whether r belongs to tab.
func MatchesTab(r Record, tab Tab) bool {
	switch tab {
	case TabClosing:
		return r.Closing() <= ClosingSoonDays
	case TabRisk:
		return r.RiskLevel() == account.RiskHot
	case TabStale:
		return r.Staleness() >= StaleDays
	default:
		return true
	}
}

// NormalizeQuery trims and lower-cases a free-text query.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// MatchesQuery reports whether the opportunity name, account name or stage
// contains the query. An empty query matches everything.
func MatchesQuery(r Record, q string) bool {
	query := NormalizeQuery(q)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(r.AccountName), query) ||
		strings.Contains(strings.ToLower(r.Stage), query)
}

// Filter applies the tab predicate and then the query predicate. The input
// slice is not modified.
func Filter(records []Record, tab Tab, query string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if MatchesTab(r, tab) && MatchesQuery(r, query) {
			out = append(out, r)
		}
	}
	return out
}
