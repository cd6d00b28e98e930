package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	s := DefaultState()
	require.Equal(t, ViewState{Tab: TabAll, GroupByStage: true}, s)
	require.Equal(t, "Group: Stage", s.GroupToggleLabel())

	s = Reduce(s, TabSelected{Tab: "risk"})
	require.Equal(t, TabRisk, s.Tab)

	s = Reduce(s, TabSelected{Tab: "unknown"})
	require.Equal(t, TabAll, s.Tab)

	s = Reduce(s, QueryChanged{Query: "Wake"})
	require.Equal(t, "Wake", s.Query)

	s = Reduce(s, GroupingToggled{})
	require.False(t, s.GroupByStage)
	require.Equal(t, "Group: Off", s.GroupToggleLabel())

	require.Equal(t, s, Reduce(s, nil))
}
