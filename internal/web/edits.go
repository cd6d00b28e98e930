package web

import "net/http"

// handleSaveEdit persists one inline edit. The client debounces input and
// also saves on blur.
func (s *Server) handleSaveEdit(w http.ResponseWriter, r *http.Request) {
	ev := s.events()
	if err := s.svc.Edits.Save(r.Context(), browserID(r), r.FormValue("id"), r.FormValue("text")); err != nil {
		s.fail(w, r, ev, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	ev := s.events()
	theme := r.FormValue("theme")
	if err := s.svc.Edits.SetTheme(r.Context(), browserID(r), theme); err != nil {
		s.fail(w, r, ev, err)
		return
	}
	ev.Add(EventSetTheme, theme)
	s.renderScreen(w, r, ev)
}
