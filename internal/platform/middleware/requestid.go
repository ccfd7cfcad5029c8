package middleware

import (
	"net/http"

	"github.com/Bahjat/fashionhub-e2e/internal/platform/runid"
)

// HeaderRequestID is echoed back so callers can correlate a link check with
// the server logs.
const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with a run ID. An incoming X-Request-ID header
// is reused; otherwise a new UUID is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = runid.New()
		}
		w.Header().Set(HeaderRequestID, id)

		next.ServeHTTP(w, r.WithContext(runid.NewContext(r.Context(), id)))
	})
}
