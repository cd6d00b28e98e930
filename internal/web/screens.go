package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/navigation"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
	"github.com/rpggio/wirecrm/internal/web/views"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderScreen(w, r, s.events())
}

// handleScreen navigates and renders a full page, for links opened without HTMX.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	ev := s.events()
	if _, err := s.svc.Navigation.Navigate(r.Context(), browserID(r), pathParam(r, "id"), true); err != nil {
		if errors.Is(err, navigation.ErrScreenNotFound) {
			http.NotFound(w, r)
			return
		}
		s.fail(w, r, ev, err)
		return
	}
	s.renderScreen(w, r, ev)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	ev := s.events()
	id := pathParam(r, "id")
	if _, err := s.svc.Navigation.Navigate(r.Context(), browserID(r), id, true); err != nil {
		if errors.Is(err, navigation.ErrScreenNotFound) {
			ev.Notify("No screen found: " + id)
			w.Header().Set(HeaderReswap, "none")
			ev.Flush(w, http.StatusOK)
			return
		}
		s.fail(w, r, ev, err)
		return
	}
	s.renderScreen(w, r, ev)
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	ev := s.events()
	if _, err := s.svc.Navigation.Back(r.Context(), browserID(r)); err != nil {
		s.fail(w, r, ev, err)
		return
	}
	s.renderScreen(w, r, ev)
}

func (s *Server) handleOpenAccount(w http.ResponseWriter, r *http.Request) {
	ev := s.events()
	acct, err := s.svc.Accounts.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		s.fail(w, r, ev, err)
		return
	}
	if _, err := s.svc.Navigation.OpenAccount(r.Context(), browserID(r), acct.ID); err != nil {
		s.fail(w, r, ev, err)
		return
	}
	ev.Notify("Opened: " + acct.Name)
	s.renderScreen(w, r, ev)
}

// renderScreen renders the browser's current screen: a partial swap for HTMX
// requests, the full document for GETs, and a redirect home for other
// non-HTMX requests.
func (s *Server) renderScreen(w http.ResponseWriter, r *http.Request, ev *Events) {
	if !IsHTMXRequest(r) && r.Method != http.MethodGet {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	page, err := s.page(r.Context(), browserID(r))
	if err != nil {
		s.fail(w, r, ev, err)
		return
	}
	RenderPage(w, r, ev, views.ScreenSwap(page), views.Layout(page))
}

// page gathers everything the current screen of browserID displays.
func (s *Server) page(ctx context.Context, browserID string) (views.Page, error) {
	sess, err := s.svc.Navigation.State(ctx, browserID)
	if err != nil {
		return views.Page{}, err
	}
	screen, ok := navigation.Lookup(sess.Current)
	if !ok {
		screen, _ = navigation.Lookup(navigation.DefaultScreen)
	}

	edits, err := s.svc.Edits.Load(ctx, browserID)
	if err != nil {
		return views.Page{}, err
	}
	theme, err := s.svc.Edits.Theme(ctx, browserID)
	if err != nil {
		return views.Page{}, err
	}
	meetings, err := s.svc.Activities.ListOpen(ctx, browserID, activity.ListMeetings)
	if err != nil {
		return views.Page{}, err
	}
	tasks, err := s.svc.Activities.ListOpen(ctx, browserID, activity.ListTasks)
	if err != nil {
		return views.Page{}, err
	}
	summaries, err := s.svc.Accounts.List(ctx)
	if err != nil {
		return views.Page{}, err
	}
	records, err := s.records(ctx)
	if err != nil {
		return views.Page{}, err
	}

	p := views.Page{
		Screen:    screen,
		CanGoBack: sess.CanGoBack(),
		Theme:     theme,
		Edits:     edits,
		Meetings:  meetings,
		Tasks:     tasks,
		Accounts:  summaries,
		Pipeline:  s.view(records, pipeline.DefaultState()),
		Report:    s.view(records, pipeline.ViewState{Tab: pipeline.TabAll, GroupByStage: true}),
	}

	if sess.AccountID != "" {
		acct, err := s.svc.Accounts.Get(ctx, sess.AccountID)
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			s.logger.Warn("account detail subject missing", "browser_id", browserID, "account_id", sess.AccountID)
		case err != nil:
			return views.Page{}, err
		default:
			p.Account = acct
			var deals []pipeline.Record
			for _, rec := range records {
				if rec.AccountID == acct.ID {
					deals = append(deals, rec)
				}
			}
			p.AccountDeals = s.view(deals, pipeline.ViewState{Tab: pipeline.TabAll})
		}
	}
	return p, nil
}

func (s *Server) records(ctx context.Context) ([]pipeline.Record, error) {
	data, err := s.svc.Accounts.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pipeline: %w", err)
	}
	return pipeline.Project(data), nil
}

func (s *Server) view(records []pipeline.Record, state pipeline.ViewState) views.PipelineView {
	return views.PipelineView{Plan: pipeline.Compute(records, state), Format: s.format}
}
