package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestPathParam_DecodesEscapedSegments(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Post("/accounts/{id}/open", func(w http.ResponseWriter, r *http.Request) {
		got = pathParam(r, "id")
	})

	cases := map[string]string{
		"/accounts/acc-1/open":         "acc-1",
		"/accounts/a%2Fb%20c%3F/open":  "a/b c?",
		"/accounts/50%25%20off/open":   "50% off",
		"/accounts/plain%20space/open": "plain space",
	}
	for path, want := range cases {
		got = ""
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Equal(t, want, got, path)
	}
}
