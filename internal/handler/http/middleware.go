package handler

import (
	"context"
	"net/http"
)

// callerHeader names the header carrying the caller's email. This is
// a capability check against the user directory, not authentication:
// session handling lives outside this service.
const callerHeader = "X-User-Email"

type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin rejects requests whose caller email is missing or does
// not hold the admin role.
func RequireAdmin(checker AdminChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := r.Header.Get(callerHeader)
			if email == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			isAdmin, err := checker.IsAdmin(r.Context(), email)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if !isAdmin {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
