package pipeline

import (
	"cmp"
	"slices"

	"github.com/rpggio/wirecrm/internal/domain/account"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StageOrder is the canonical stage priority. Other labels sort after these,
// alphabetically. "Unstaged" has no reserved slot and sorts among them, so a
// "Negotiation" group comes before it.
var StageOrder = []string{"Discovery", "Quote", "PO", "Closed"}

// Group is one stage bucket of a grouped plan.
type Group struct {
	Label   string
	Records []Record
}

// Count is the number of records in the group.
func (g Group) Count() int {
	return len(g.Records)
}

// Plan is the ordered data the renderer consumes. When Grouped is set,
// Groups holds the rows; otherwise Records does.
type Plan struct {
	State   ViewState
	Grouped bool
	Records []Record
	Groups  []Group
	Total   int
}

// Build projects the dataset and computes the plan for state.
func Build(data account.Dataset, state ViewState) Plan {
	return Compute(Project(data), state)
}

// Compute filters, sorts and optionally groups records. It is pure: the same
// inputs always produce an equal plan, and records is not modified.
func Compute(records []Record, state ViewState) Plan {
	filtered := Filter(records, state.Tab, state.Query)
	plan := Plan{State: state, Grouped: state.GroupByStage, Total: len(filtered)}

	if !state.GroupByStage {
		sortByValue(filtered)
		plan.Records = filtered
		return plan
	}

	index := map[string]int{}
	groups := []Group{}
	for _, r := range filtered {
		label := r.GroupLabel()
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	for i := range groups {
		sortByValue(groups[i].Records)
	}

	col := collate.New(language.English)
	slices.SortStableFunc(groups, func(a, b Group) int {
		return compareStages(col, a.Label, b.Label)
	})
	plan.Groups = groups
	return plan
}

func sortByValue(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.Amount(), a.Amount())
	})
}

func compareStages(col *collate.Collator, a, b string) int {
	ai := slices.Index(StageOrder, a)
	bi := slices.Index(StageOrder, b)
	switch {
	case ai == -1 && bi == -1:
		return col.CompareString(a, b)
	case ai == -1:
		return 1
	case bi == -1:
		return -1
	default:
		return cmp.Compare(ai, bi)
	}
}
