package web

import (
	"net/http"
	"slices"

	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/web/views"
)

// handleActivityForm renders the create modal. Changing the reason re-renders
// it, resetting the title to the draft for the new reason.
func (s *Server) handleActivityForm(w http.ResponseWriter, r *http.Request) {
	typ := activity.ParseType(r.FormValue("type"))
	reason := r.FormValue("reason")
	if !slices.Contains(activity.Reasons, reason) {
		reason = activity.Reasons[0]
	}
	form := views.ActivityForm{
		Type:        typ,
		Reason:      reason,
		Title:       activity.DraftTitle(typ, reason),
		When:        pick(r.FormValue("when"), activity.CallWhenChoices),
		Due:         pick(r.FormValue("due"), activity.TaskDueChoices),
		MeetingDate: r.FormValue("meeting_date"),
	}
	RenderPage(w, r, s.events(), views.ActivityModal(form), nil)
}

func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	ev := s.events()
	_, err := s.svc.Activities.Create(r.Context(), browserID(r), activity.CreateRequest{
		Type:        activity.ParseType(r.FormValue("type")),
		Reason:      r.FormValue("reason"),
		Title:       r.FormValue("title"),
		When:        r.FormValue("when"),
		Due:         r.FormValue("due"),
		MeetingDate: r.FormValue("meeting_date"),
	})
	if err != nil {
		s.fail(w, r, ev, err)
		return
	}
	ev.Notify("Saved (prototype)")
	s.renderLists(w, r, ev)
}

func (s *Server) handleOutcomeForm(w http.ResponseWriter, r *http.Request) {
	item, err := s.svc.Activities.Get(r.Context(), browserID(r), pathParam(r, "id"))
	if err != nil {
		s.fail(w, r, s.events(), err)
		return
	}
	RenderPage(w, r, s.events(), views.OutcomeModal(*item), nil)
}

func (s *Server) handleMarkDone(w http.ResponseWriter, r *http.Request) {
	ev := s.events()
	_, err := s.svc.Activities.MarkDone(r.Context(), browserID(r), pathParam(r, "id"), r.FormValue("outcome"))
	if err != nil {
		s.fail(w, r, ev, err)
		return
	}
	ev.Notify("Marked done (prototype)")
	s.renderLists(w, r, ev)
}

// renderLists closes the modal and swaps both dashboard lists out of band.
func (s *Server) renderLists(w http.ResponseWriter, r *http.Request, ev *Events) {
	if !IsHTMXRequest(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	ctx := r.Context()
	meetings, err := s.svc.Activities.ListOpen(ctx, browserID(r), activity.ListMeetings)
	if err != nil {
		s.fail(w, r, ev, err)
		return
	}
	tasks, err := s.svc.Activities.ListOpen(ctx, browserID(r), activity.ListTasks)
	if err != nil {
		s.fail(w, r, ev, err)
		return
	}
	ev.Add(EventCloseModal, true)
	RenderPage(w, r, ev, views.Join(
		views.ActivityList(activity.ListMeetings, meetings, true),
		views.ActivityList(activity.ListTasks, tasks, true),
	), nil)
}

func pick(value string, choices []string) string {
	if slices.Contains(choices, value) {
		return value
	}
	return choices[0]
}
