package web

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// BrowserCookie names the cookie that identifies a browser.
const BrowserCookie = "wf_browser"

const browserCookieMaxAge = 365 * 24 * time.Hour

type browserKey struct{}

// BrowserFromContext returns the browser ID from context, if present.
func BrowserFromContext(ctx context.Context) (string, bool) {
	browserID, ok := ctx.Value(browserKey{}).(string)
	return browserID, ok
}

// WithBrowser returns a context carrying browserID.
func WithBrowser(ctx context.Context, browserID string) context.Context {
	return context.WithValue(ctx, browserKey{}, browserID)
}

// BrowserMiddleware identifies the browser by cookie, issuing a new ID on the
// first visit. All per-browser state is keyed by this ID.
func BrowserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		browserID := ""
		if c, err := r.Cookie(BrowserCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				browserID = c.Value
			}
		}
		if browserID == "" {
			browserID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     BrowserCookie,
				Value:    browserID,
				Path:     "/",
				MaxAge:   int(browserCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(WithBrowser(r.Context(), browserID)))
	})
}
