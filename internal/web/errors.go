package web

import (
	"errors"
	"net/http"

	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/edit"
	"github.com/rpggio/wirecrm/internal/domain/navigation"
)

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, activity.ErrInvalidInput),
		errors.Is(err, navigation.ErrInvalidInput),
		errors.Is(err, edit.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, activity.ErrActivityNotFound),
		errors.Is(err, account.ErrAccountNotFound),
		errors.Is(err, navigation.ErrScreenNotFound):
		return http.StatusNotFound
	case errors.Is(err, activity.ErrInvalidOutcome),
		errors.Is(err, edit.ErrInvalidTheme):
		return http.StatusUnprocessableEntity
	case errors.Is(err, activity.ErrAlreadyDone):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail reports err to the browser as a toast with a matching status. The
// current view is left in place.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, ev *Events, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		ev.Notify("Something went wrong")
	} else {
		ev.Notify(err.Error())
	}
	w.Header().Set(HeaderReswap, "none")
	ev.Flush(w, status)
}
