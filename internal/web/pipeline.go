package web

import (
	"net/http"
	"net/url"

	"github.com/rpggio/wirecrm/internal/domain/pipeline"
	"github.com/rpggio/wirecrm/internal/web/views"
)

// Form fields carrying the pipeline view state between requests.
const (
	fieldStateTab   = "state_tab"
	fieldStateQuery = "state_query"
	fieldStateGroup = "state_group"
	fieldEvent      = "event"
)

// handlePipelineEvent reduces one control event into the carried view state
// and re-renders the pipeline mount.
func (s *Server) handlePipelineEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	state := pipeline.Reduce(decodeState(r.Form), decodeEvent(r.Form))

	records, err := s.records(r.Context())
	if err != nil {
		s.fail(w, r, s.events(), err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.Render(r.Context(), w, s.view(records, state)); err != nil {
		s.logger.Error("render pipeline", "error", err)
	}
}

// decodeState reads the carried view state. A request without state starts
// from the default.
func decodeState(form url.Values) pipeline.ViewState {
	if !form.Has(fieldStateTab) {
		return pipeline.DefaultState()
	}
	return pipeline.ViewState{
		Tab:          pipeline.ParseTab(form.Get(fieldStateTab)),
		Query:        form.Get(fieldStateQuery),
		GroupByStage: form.Get(fieldStateGroup) == "true",
	}
}

// decodeEvent maps the triggering control to an event. Unknown controls
// yield nil, which leaves the state unchanged.
func decodeEvent(form url.Values) pipeline.Event {
	switch form.Get(fieldEvent) {
	case "tab":
		return pipeline.TabSelected{Tab: pipeline.ParseTab(form.Get("tab"))}
	case "query":
		return pipeline.QueryChanged{Query: form.Get("query")}
	case "group":
		return pipeline.GroupingToggled{}
	default:
		return nil
	}
}

func (s *Server) handleToast(w http.ResponseWriter, r *http.Request) {
	ev := s.events()
	message := r.FormValue("message")
	if message == "" {
		message = "Action"
	}
	ev.Notify(message)
	ev.Flush(w, http.StatusNoContent)
}
