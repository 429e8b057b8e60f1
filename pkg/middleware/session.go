package middleware

import (
	"context"
	"net/http"

	"bookreviews/pkg/session"
)

// Session guards the /auth subrouter. It resolves the caller's session
// from the session cookie and binds the session username to the request
// context. The access token issued at login is not re-verified here;
// only the session-bound username gates access.
func Session(store session.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				http.Error(w, `{"message":"User not logged in"}`, http.StatusUnauthorized)
				return
			}

			sess, err := store.Get(cookie.Value)
			if err != nil || sess.Username == "" {
				http.Error(w, `{"message":"User not logged in"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), session.UsernameContextKey, sess.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
