package web

import (
	"encoding/json"
	"net/http"

	"github.com/rpggio/wirecrm/internal/toast"
)

// Client-side events raised through the HX-Trigger header.
const (
	EventToast      = "showToast"
	EventSetTheme   = "setTheme"
	EventCloseModal = "closeModal"
)

// Events collects the client-side events raised while handling one request.
type Events struct {
	values map[string]any
	mirror toast.Sink
}

var _ toast.Sink = (*Events)(nil)

// NewEvents creates an empty event set.
func NewEvents() *Events {
	return newEvents(toast.Discard)
}

// newEvents creates an event set whose toasts are also sent to mirror.
func newEvents(mirror toast.Sink) *Events {
	if mirror == nil {
		mirror = toast.Discard
	}
	return &Events{values: map[string]any{}, mirror: mirror}
}

// Add raises name with value. A later value for the same name replaces it.
func (e *Events) Add(name string, value any) {
	e.values[name] = value
}

// Notify raises a toast.
func (e *Events) Notify(message string) {
	e.Add(EventToast, message)
	e.mirror.Notify(message)
}

// Len reports how many events are pending.
func (e *Events) Len() int {
	if e == nil {
		return 0
	}
	return len(e.values)
}

// WriteHeader sets HX-Trigger on h when events are pending.
func (e *Events) WriteHeader(h http.Header) {
	if e.Len() == 0 {
		return
	}
	data, err := json.Marshal(e.values)
	if err != nil {
		return
	}
	h.Set(HeaderTrigger, string(data))
}

// Flush writes the pending events and a bodiless status.
func (e *Events) Flush(w http.ResponseWriter, status int) {
	e.WriteHeader(w.Header())
	w.WriteHeader(status)
}
