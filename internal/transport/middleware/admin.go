package middleware

import (
	"net/http"

	"github.com/heartmarshall/syllabus-backend/pkg/ctxutil"
)

// RequireAdmin rejects requests that Auth did not resolve to an admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.AdminFromCtx(r.Context()); !ok {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
