package web

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// HTMX request and response headers.
const (
	HeaderRequest = "HX-Request"
	HeaderTrigger = "HX-Trigger"
	HeaderReswap  = "HX-Reswap"
)

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(HeaderRequest), "true")
}

// responseBuffer captures component rendering so headers can still be set
// after the body is produced.
type responseBuffer struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: make(http.Header), statusCode: http.StatusOK}
}

func (w *responseBuffer) Header() http.Header {
	return w.header
}

func (w *responseBuffer) WriteHeader(status int) {
	w.statusCode = status
}

func (w *responseBuffer) Write(body []byte) (int, error) {
	return w.body.Write(body)
}

// RenderPage renders fragment for HTMX requests and full otherwise. If
// fragment is nil, full is used for both. Pending response events are
// written as an HX-Trigger header.
func RenderPage(w http.ResponseWriter, r *http.Request, ev *Events, fragment, full templ.Component) {
	target := full
	if IsHTMXRequest(r) && fragment != nil {
		target = fragment
	}
	if target == nil {
		target = fragment
	}

	capture := newResponseBuffer()
	if target != nil {
		templ.Handler(target).ServeHTTP(capture, r)
	}

	for key, values := range capture.header {
		for _, v := range values {
			w.Header().Set(key, v)
		}
	}
	ev.WriteHeader(w.Header())
	w.WriteHeader(capture.statusCode)
	_, _ = w.Write(capture.body.Bytes())
}
