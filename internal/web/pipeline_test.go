package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/edit"
	"github.com/rpggio/wirecrm/internal/domain/navigation"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
	"github.com/stretchr/testify/require"
)

func TestDecodeState(t *testing.T) {
	require.Equal(t, pipeline.DefaultState(), decodeState(url.Values{}))

	state := decodeState(url.Values{
		fieldStateTab:   {"stale"},
		fieldStateQuery: {"nas"},
		fieldStateGroup: {"false"},
	})
	require.Equal(t, pipeline.ViewState{Tab: pipeline.TabStale, Query: "nas"}, state)

	state = decodeState(url.Values{fieldStateTab: {"bogus"}, fieldStateGroup: {"true"}})
	require.Equal(t, pipeline.TabAll, state.Tab)
	require.True(t, state.GroupByStage)
}

func TestDecodeEvent(t *testing.T) {
	require.Equal(t, pipeline.TabSelected{Tab: pipeline.TabRisk},
		decodeEvent(url.Values{fieldEvent: {"tab"}, "tab": {"risk"}}))
	require.Equal(t, pipeline.QueryChanged{Query: "Quote"},
		decodeEvent(url.Values{fieldEvent: {"query"}, "query": {"Quote"}}))
	require.Equal(t, pipeline.GroupingToggled{}, decodeEvent(url.Values{fieldEvent: {"group"}}))
	require.Nil(t, decodeEvent(url.Values{fieldEvent: {"resize"}}))
}

func TestEvents_WriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	NewEvents().Flush(rec, http.StatusNoContent)
	require.Empty(t, rec.Header().Get(HeaderTrigger))

	ev := NewEvents()
	ev.Notify("first")
	ev.Notify("second")
	ev.Add(EventCloseModal, true)
	require.Equal(t, 2, ev.Len())

	rec = httptest.NewRecorder()
	ev.Flush(rec, http.StatusOK)
	require.JSONEq(t, `{"showToast":"second","closeModal":true}`, rec.Header().Get(HeaderTrigger))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{activity.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", edit.ErrInvalidInput), http.StatusBadRequest},
		{activity.ErrActivityNotFound, http.StatusNotFound},
		{navigation.ErrScreenNotFound, http.StatusNotFound},
		{activity.ErrInvalidOutcome, http.StatusUnprocessableEntity},
		{edit.ErrInvalidTheme, http.StatusUnprocessableEntity},
		{activity.ErrAlreadyDone, http.StatusConflict},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestIsHTMXRequest(t *testing.T) {
	require.False(t, IsHTMXRequest(nil))
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.False(t, IsHTMXRequest(req))
	req.Header.Set(HeaderRequest, "true")
	require.True(t, IsHTMXRequest(req))
}
