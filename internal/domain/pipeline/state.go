package pipeline

// ViewState is the pipeline screen's control state. It is owned by the
// controller that renders the screen and passed explicitly to Compute.
type ViewState struct {
	Tab          Tab    `json:"tab"`
	Query        string `json:"query"`
	GroupByStage bool   `json:"group_by_stage"`
}

// DefaultState is the state a fresh pipeline screen starts in.
func DefaultState() ViewState {
	return ViewState{Tab: TabAll, GroupByStage: true}
}

// GroupToggleLabel is the caption of the grouping toggle for this state.
func (s ViewState) GroupToggleLabel() string {
	if s.GroupByStage {
		return "Group: Stage"
	}
	return "Group: Off"
}

// Event is a UI control event. Implementations: TabSelected, QueryChanged,
// GroupingToggled.
type Event interface {
	apply(ViewState) ViewState
}

// TabSelected is emitted when a tab button is activated.
type TabSelected struct {
	Tab Tab
}

func (e TabSelected) apply(s ViewState) ViewState {
	s.Tab = ParseTab(string(e.Tab))
	return s
}

// QueryChanged is emitted on every edit of the search box.
type QueryChanged struct {
	Query string
}

func (e QueryChanged) apply(s ViewState) ViewState {
	s.Query = e.Query
	return s
}

// GroupingToggled flips group-by-stage.
type GroupingToggled struct{}

func (GroupingToggled) apply(s ViewState) ViewState {
	s.GroupByStage = !s.GroupByStage
	return s
}

// Reduce returns the state after ev. A nil event leaves the state unchanged.
func Reduce(s ViewState, ev Event) ViewState {
	if ev == nil {
		return s
	}
	return ev.apply(s)
}
