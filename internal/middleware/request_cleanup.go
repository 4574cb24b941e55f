package middleware

import (
	"io"
	"net/http"
)

// cap on how much of an unread body gets drained before closing, so a
// huge upload cannot keep the connection busy
const maxDrainBytes = 1 << 20

// DrainAndCloseRequest drains and closes the request body after the
// handler is done, so the underlying connection can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes))
				_ = r.Body.Close()
			}
		})
	}
}
